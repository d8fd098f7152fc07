// Package cpu emulates the MOS 6502 family at instruction and cycle
// granularity: the full documented opcode set, the common undocumented
// opcodes, decimal mode, and the page-cross and branch cycle penalties.
// The core owns only the processor state; memory and memory-mapped
// peripherals are supplied by the host through the ReadWriter contract.
package cpu

import (
	"fmt"
	"log"

	"github.com/hexture/m6502/memory"
)

// ReadWriter is the bus as observed by the CPU. Addresses are uint16 and
// therefore always wrapped to the 16-bit address space; the core never
// distinguishes read-only from read-write regions.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Vectors
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// The stack occupies the fixed page $0100-$01FF. Push and pop wrap within
// that page without crossing into adjacent memory.
const stackBase = uint16(0x0100)

// Status byte bit positions, N V 1 B D I Z C from bit 7 down to bit 0.
const (
	maskC = uint8(1 << iota) // Carry
	maskZ                    // Zero
	maskI                    // Interrupt disable
	maskD                    // Decimal mode
	maskB                    // Break
	maskU                    // Unused, reads as 1
	maskV                    // Overflow
	maskN                    // Negative
)

// Registers is the programmer-visible register file.
type Registers struct {
	A  uint8  // accumulator
	X  uint8  // X index
	Y  uint8  // Y index
	S  uint8  // stack pointer
	PC uint16 // program counter
}

// Flags holds the seven condition flags individually. They compose into
// the packed status byte with bit 5 always reading as 1.
type Flags struct {
	C bool // Carry
	Z bool // Zero
	I bool // Interrupt disable
	D bool // Decimal mode
	B bool // Break
	V bool // Overflow
	N bool // Negative
}

// Pack returns the status byte as N V 1 B D I Z C. Bit 5 is always set.
func (f Flags) Pack() uint8 {
	p := maskU
	if f.C {
		p |= maskC
	}
	if f.Z {
		p |= maskZ
	}
	if f.I {
		p |= maskI
	}
	if f.D {
		p |= maskD
	}
	if f.B {
		p |= maskB
	}
	if f.V {
		p |= maskV
	}
	if f.N {
		p |= maskN
	}
	return p
}

// Unpack restores all seven flags from a status byte, bit 5 discarded.
func (f *Flags) Unpack(p uint8) {
	f.C = p&maskC != 0
	f.Z = p&maskZ != 0
	f.I = p&maskI != 0
	f.D = p&maskD != 0
	f.B = p&maskB != 0
	f.V = p&maskV != 0
	f.N = p&maskN != 0
}

func (f Flags) String() string {
	s := []rune("nv·bdizc")
	for i, set := range []bool{f.N, f.V, false, f.B, f.D, f.I, f.Z, f.C} {
		if set {
			s[i] = s[i] - 'a' + 'A'
		}
	}
	return string(s)
}

// CPU is a single 6502 execution engine. It is not safe for concurrent
// use; a host wanting multiple emulated processors runs independent
// instances. The only external mutation path besides Step and Reset is
// TriggerNMI, which is a single-bit latch.
type CPU struct {
	Reg   Registers
	Flags Flags

	// Observability fields, updated by Step. Not control state.
	Opcode      uint8  // opcode of the last executed instruction
	Cycles      int    // cost of the last Step call
	TotalCycles uint64 // monotonic cycle counter since reset

	mem        ReadWriter
	model      Model
	mode       addrMode // mode of the instruction being executed
	nmiPending bool
	halted     bool
	monitor    Monitor
}

// New creates a CPU for the given model. A nil mem gives the core its own
// 64 KB of RAM. The processor starts with registers and flags zeroed,
// S = 0xFF and PC = 0; call Reset to load PC from the reset vector.
func New(model Model, mem ReadWriter) *CPU {
	if mem == nil {
		mem = memory.NewRAM(0x10000)
	}
	return &CPU{
		Reg:   Registers{S: 0xff},
		mem:   mem,
		model: model,
	}
}

// ConnectBus replaces the memory the CPU observes.
func (c *CPU) ConnectBus(mem ReadWriter) {
	c.mem = mem
}

// Model returns the model the CPU was built for.
func (c *CPU) Model() Model {
	return c.model
}

// Attach installs a monitor, or removes one when m is nil.
func (c *CPU) Attach(m Monitor) {
	c.monitor = m
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) push8(data uint8) {
	c.write8(stackBase|uint16(c.Reg.S), data)
	c.Reg.S--
}

func (c *CPU) push16(data uint16) {
	c.push8(uint8(data >> 8))
	c.push8(uint8(data))
}

func (c *CPU) pop8() uint8 {
	c.Reg.S++
	return c.read8(stackBase | uint16(c.Reg.S))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop8())
	hi := uint16(c.pop8())
	return lo | hi<<8
}

// setZN sets Z and N from an 8-bit result.
func (c *CPU) setZN(value uint8) {
	c.Flags.Z = value == 0
	c.Flags.N = value&0x80 != 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// Reset performs the power-on/reset sequence: registers zeroed, S back to
// 0xFF, flags cleared with I forced set, PC loaded from the reset vector.
// Charges the fixed 7-cycle reset cost.
func (c *CPU) Reset() {
	c.Reg = Registers{S: 0xff}
	c.Flags = Flags{I: true}
	c.Reg.PC = c.read16(ResetVector)
	c.Opcode = 0
	c.Cycles = 7
	c.TotalCycles = 7
	c.nmiPending = false
	c.halted = false
}

// TriggerNMI latches a non-maskable interrupt request. The latch is edge
// triggered: multiple triggers before servicing collapse to one pending
// request. It is serviced at the start of the next Step, regardless of
// the I flag. Parts without an NMI pin ignore the trigger.
func (c *CPU) TriggerNMI() {
	if !c.model.HasNMI {
		return
	}
	c.nmiPending = true
}

// Halted reports whether the CPU executed a jam opcode. Only Reset clears
// the condition.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step services a pending NMI or executes one instruction, returning the
// number of cycles taken. A jammed CPU takes no cycles: PC stays on the
// jam opcode and Step returns 0 until Reset.
func (c *CPU) Step() int {
	if c.halted {
		return 0
	}

	if c.nmiPending {
		c.nmiPending = false
		c.nmi()
		c.TotalCycles += uint64(c.Cycles)
		return c.Cycles
	}

	c.Cycles = 0
	c.Opcode = c.read8(c.Reg.PC)
	op := optable[c.Opcode]

	if c.monitor != nil && !c.beforeExecute(op) {
		return 0
	}

	c.Reg.PC++
	c.mode = op.Mode
	addr, crossed := c.resolve(op.Mode)
	operations[op.Mnemonic](c, addr)
	c.Cycles += op.Cycles
	if crossed && op.PageCross {
		c.Cycles++
	}
	c.TotalCycles += uint64(c.Cycles)
	return c.Cycles
}

// RunCycles repeatedly steps until at least target cycles have elapsed
// since the call began, returning the actual elapsed count. The return
// value may overshoot the target by up to one instruction's cost. Returns
// early if the CPU jams.
func (c *CPU) RunCycles(target int) int {
	elapsed := 0
	for elapsed < target {
		n := c.Step()
		if n == 0 {
			break
		}
		elapsed += n
	}
	return elapsed
}

// nmi runs the NMI entry sequence: PC and status pushed with B forced to
// 0, I set, PC loaded from the NMI vector. Unconditionally 7 cycles.
func (c *CPU) nmi() {
	c.push16(c.Reg.PC)
	c.push8(c.Flags.Pack() &^ maskB)
	c.Flags.I = true
	c.Reg.PC = c.read16(NMIVector)
	c.Cycles = 7
}

// reportJam notifies the monitor of a jam opcode, falling back to the log
// when none is attached. Host tooling may legitimately want to detect a
// stuck processor and issue a watchdog reset, so this is never fatal.
func (c *CPU) reportJam() {
	if c.monitor != nil {
		c.monitor.Jam(c, c.Opcode, c.Reg.PC)
		return
	}
	log.Printf("cpu: jam opcode %02X at %04X, halting", c.Opcode, c.Reg.PC)
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X S:%02X P:%02X(%s)",
		c.Reg.PC, c.Reg.A, c.Reg.X, c.Reg.Y, c.Reg.S, c.Flags.Pack(), c.Flags)
}
