package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexture/m6502/memory"
)

const testOrg = uint16(0x0600)

// newTestCPU wires a reset CPU to 64 KB of RAM with program loaded at
// testOrg and the reset vector pointing there.
func newTestCPU(t *testing.T, model Model, program ...uint8) (*CPU, *memory.RAM) {
	t.Helper()

	ram := memory.NewRAM(0x10000)
	ram.Load(testOrg, program)
	ram.Write8(ResetVector, uint8(testOrg&0xff))
	ram.Write8(ResetVector+1, uint8(testOrg>>8))

	c := New(model, ram)
	c.Reset()
	require.Equal(t, testOrg, c.Reg.PC, "PC after reset")
	return c, ram
}

func Test_Reset(t *testing.T) {
	c, _ := newTestCPU(t, MOS6502)

	assert.Equal(t, uint8(0xff), c.Reg.S, "S register")
	assert.Equal(t, uint8(0), c.Reg.A, "A register")
	assert.True(t, c.Flags.I, "I flag")
	assert.False(t, c.Flags.D, "D flag")
	assert.Equal(t, 7, c.Cycles, "reset cycles")
	assert.Equal(t, uint64(7), c.TotalCycles, "total cycles")
	assert.False(t, c.Halted())
}

func Test_Reset_ClearsHalt(t *testing.T) {
	c, _ := newTestCPU(t, MOS6502, 0x02) // jam

	c.Step()
	require.True(t, c.Halted())

	c.Reset()
	assert.False(t, c.Halted())
	assert.Equal(t, testOrg, c.Reg.PC, "PC after reset")
}

func Test_Flags_PackUnpack(t *testing.T) {
	// Every flag combination survives a pack/unpack round trip, with bit
	// 5 always reading as 1.
	for p := 0; p < 0x100; p++ {
		var f Flags
		f.Unpack(uint8(p))
		assert.Equal(t, uint8(p)|maskU, f.Pack(), "status byte %02X", p)
	}
}

func Test_Step_Basic(t *testing.T) {
	c, _ := newTestCPU(t, MOS6502, 0xa9, 0x42) // LDA #$42

	cycles := c.Step()

	assert.Equal(t, uint8(0x42), c.Reg.A, "A register")
	assert.Equal(t, 2, cycles, "cycles")
	assert.Equal(t, testOrg+2, c.Reg.PC, "PC")
	assert.Equal(t, uint64(9), c.TotalCycles, "total cycles")
	assert.False(t, c.Flags.Z, "Z flag")
	assert.False(t, c.Flags.N, "N flag")
}

func Test_Step_Program(t *testing.T) {
	// LDA #$03 / ADC #$05 / STA $0200 / BRK
	c, ram := newTestCPU(t, MOS6502,
		0xa9, 0x03,
		0x69, 0x05,
		0x8d, 0x00, 0x02,
		0x00,
	)

	for i := 0; i < 4; i++ {
		c.Step()
	}

	assert.Equal(t, uint8(0x08), ram.Read8(0x0200), "stored result")
}

func Test_Step_Jam(t *testing.T) {
	c, _ := newTestCPU(t, MOS6502, 0x02)

	cycles := c.Step()

	assert.True(t, c.Halted(), "halted")
	assert.Equal(t, testOrg, c.Reg.PC, "PC rewound to the jam opcode")
	assert.Equal(t, 0, cycles, "jam cycles")

	// Further steps are free and change nothing.
	total := c.TotalCycles
	assert.Equal(t, 0, c.Step())
	assert.Equal(t, total, c.TotalCycles, "total cycles")
}

func Test_RunCycles(t *testing.T) {
	t.Run("overshoot by one instruction at most", func(t *testing.T) {
		// NOPs at 2 cycles each: a target of 5 lands on 6.
		c, _ := newTestCPU(t, MOS6502, 0xea, 0xea, 0xea, 0xea)

		elapsed := c.RunCycles(5)

		assert.Equal(t, 6, elapsed, "elapsed cycles")
		assert.Equal(t, testOrg+3, c.Reg.PC, "PC")
	})

	t.Run("stops on jam", func(t *testing.T) {
		c, _ := newTestCPU(t, MOS6502, 0xea, 0x02)

		elapsed := c.RunCycles(100)

		assert.Equal(t, 2, elapsed, "elapsed cycles")
		assert.True(t, c.Halted())
	})
}

func Test_NMI(t *testing.T) {
	setVector := func(ram *memory.RAM, addr uint16) {
		ram.Write8(NMIVector, uint8(addr))
		ram.Write8(NMIVector+1, uint8(addr>>8))
	}

	t.Run("service sequence", func(t *testing.T) {
		c, ram := newTestCPU(t, MOS6502, 0xea)
		setVector(ram, 0x4000)
		c.Flags.I = false

		c.TriggerNMI()
		cycles := c.Step()

		assert.Equal(t, 7, cycles, "interrupt entry cycles")
		assert.Equal(t, uint16(0x4000), c.Reg.PC, "PC from NMI vector")
		assert.True(t, c.Flags.I, "I flag set on entry")

		// Return address then status, pushed high to low.
		assert.Equal(t, uint8(testOrg>>8), ram.Read8(0x01ff), "pushed PCH")
		assert.Equal(t, uint8(testOrg&0xff), ram.Read8(0x01fe), "pushed PCL")
		pushed := ram.Read8(0x01fd)
		assert.Zero(t, pushed&maskB, "B clear in pushed status")
		assert.NotZero(t, pushed&maskU, "bit 5 set in pushed status")
	})

	t.Run("ignores I flag", func(t *testing.T) {
		c, ram := newTestCPU(t, MOS6502, 0xea)
		setVector(ram, 0x4000)
		require.True(t, c.Flags.I)

		c.TriggerNMI()
		c.Step()

		assert.Equal(t, uint16(0x4000), c.Reg.PC, "PC from NMI vector")
	})

	t.Run("latch collapses multiple triggers", func(t *testing.T) {
		c, ram := newTestCPU(t, MOS6502, 0xea, 0xea)
		setVector(ram, 0x4000)
		ram.Write8(0x4000, 0xea)

		c.TriggerNMI()
		c.TriggerNMI()
		c.TriggerNMI()

		assert.Equal(t, 7, c.Step(), "first step services the interrupt")
		assert.Equal(t, 2, c.Step(), "second step runs the handler")
		assert.Equal(t, uint16(0x4001), c.Reg.PC, "PC in the handler")
	})

	t.Run("model without NMI pin", func(t *testing.T) {
		noNMI := Model{Name: "test", HasBCD: true}
		c, _ := newTestCPU(t, noNMI, 0xea)

		c.TriggerNMI()
		cycles := c.Step()

		assert.Equal(t, 2, cycles, "plain instruction, no interrupt")
		assert.Equal(t, testOrg+1, c.Reg.PC, "PC")
	})
}

func Test_BRK_RTI(t *testing.T) {
	// BRK at testOrg, handler at 0x4000 is a single RTI. After the pair
	// the CPU resumes two bytes past the BRK with flags restored.
	c, ram := newTestCPU(t, MOS6502, 0x00, 0xff)
	ram.Write8(IRQVector, 0x00)
	ram.Write8(IRQVector+1, 0x40)
	ram.Write8(0x4000, 0x40) // RTI
	c.Flags.I = false
	c.Flags.C = true

	cycles := c.Step()
	assert.Equal(t, 7, cycles, "BRK cycles")
	assert.Equal(t, uint16(0x4000), c.Reg.PC, "PC from IRQ vector")
	assert.True(t, c.Flags.I, "I set by BRK")
	assert.NotZero(t, ram.Read8(0x01fd)&maskB, "B set in pushed status")

	cycles = c.Step()
	assert.Equal(t, 6, cycles, "RTI cycles")
	assert.Equal(t, testOrg+2, c.Reg.PC, "return address skips the signature byte")
	assert.False(t, c.Flags.I, "I restored")
	assert.True(t, c.Flags.C, "C restored")
}

func Test_JMP_IndirectBug(t *testing.T) {
	program := []uint8{0x6c, 0xff, 0x02} // JMP ($02FF)

	t.Run("NMOS wraps within the page", func(t *testing.T) {
		c, ram := newTestCPU(t, MOS6502, program...)
		ram.Write8(0x02ff, 0x34)
		ram.Write8(0x0300, 0x12) // would be the high byte on a fixed part
		ram.Write8(0x0200, 0x56) // start of the pointer's own page

		c.Step()

		assert.Equal(t, uint16(0x5634), c.Reg.PC, "PC")
	})

	t.Run("fixed part carries into the next page", func(t *testing.T) {
		fixed := MOS6502
		fixed.HasJMPBug = false
		c, ram := newTestCPU(t, fixed, program...)
		ram.Write8(0x02ff, 0x34)
		ram.Write8(0x0300, 0x12)
		ram.Write8(0x0200, 0x56)

		c.Step()

		assert.Equal(t, uint16(0x1234), c.Reg.PC, "PC")
	})
}

func Test_StackWrap(t *testing.T) {
	// With S at 0x00 a push wraps to 0x01FF instead of leaving the page.
	c, ram := newTestCPU(t, MOS6502, 0x48) // PHA
	c.Reg.S = 0x00
	c.Reg.A = 0x7b

	c.Step()

	assert.Equal(t, uint8(0x7b), ram.Read8(0x0100), "pushed at $0100")
	assert.Equal(t, uint8(0xff), c.Reg.S, "S wrapped")
}

type recordingMonitor struct {
	instructions []Instruction
	jams         int
	jamOpcode    uint8
	jamAddr      uint16
	suppress     bool
}

func (m *recordingMonitor) BeforeExecute(c *CPU, in Instruction) bool {
	m.instructions = append(m.instructions, in)
	return !m.suppress
}

func (m *recordingMonitor) Jam(c *CPU, opcode uint8, addr uint16) {
	m.jams++
	m.jamOpcode = opcode
	m.jamAddr = addr
}

func Test_Monitor(t *testing.T) {
	t.Run("observes fetch state", func(t *testing.T) {
		c, _ := newTestCPU(t, MOS6502, 0xa9, 0x42)
		mon := &recordingMonitor{}
		c.Attach(mon)

		c.Step()

		require.Len(t, mon.instructions, 1)
		in := mon.instructions[0]
		assert.Equal(t, testOrg, in.Addr, "fetch address")
		assert.Equal(t, uint8(0xa9), in.Opcode, "opcode")
		assert.Equal(t, LDA, in.Mnemonic, "mnemonic")
		assert.Equal(t, []uint8{0xa9, 0x42}, in.Raw, "raw bytes")
		assert.Equal(t, uint64(7), in.Cycles, "cycles before execution")
	})

	t.Run("suppresses execution", func(t *testing.T) {
		c, _ := newTestCPU(t, MOS6502, 0xa9, 0x42)
		mon := &recordingMonitor{suppress: true}
		c.Attach(mon)

		cycles := c.Step()

		assert.Equal(t, 0, cycles, "cycles")
		assert.Equal(t, testOrg, c.Reg.PC, "PC unchanged")
		assert.Equal(t, uint8(0), c.Reg.A, "A unchanged")
	})

	t.Run("reports jam once", func(t *testing.T) {
		c, _ := newTestCPU(t, MOS6502, 0xb2)
		mon := &recordingMonitor{}
		c.Attach(mon)

		c.Step()
		c.Step()

		assert.Equal(t, 1, mon.jams, "jam reports")
		assert.Equal(t, uint8(0xb2), mon.jamOpcode, "jam opcode")
		assert.Equal(t, testOrg, mon.jamAddr, "jam address")
	})
}

func Test_String(t *testing.T) {
	c, _ := newTestCPU(t, MOS6502)
	assert.Contains(t, c.String(), "PC:0600")
}
