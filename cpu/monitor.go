package cpu

// Instruction is the decoded form of the instruction about to execute,
// handed to an attached monitor.
type Instruction struct {
	Addr     uint16 // address the opcode was fetched from
	Opcode   uint8
	Mnemonic Mnemonic
	Raw      []uint8 // opcode plus operand bytes

	// Processor state at fetch time.
	Registers Registers
	Flags     Flags
	Cycles    uint64 // TotalCycles before execution
}

// Monitor observes execution. Hosts attach one for tracing, debugging or
// watchdog policy; the core calls it synchronously from Step.
type Monitor interface {
	// BeforeExecute is called after the opcode fetch and before the
	// operand resolve. Returning false suppresses execution: PC is left
	// on the instruction and Step returns 0.
	BeforeExecute(c *CPU, in Instruction) bool

	// Jam is called once when a jam opcode executes. PC has already been
	// rewound to the opcode's own address.
	Jam(c *CPU, opcode uint8, addr uint16)
}

func (c *CPU) beforeExecute(op operation) bool {
	raw := make([]uint8, op.Size)
	for i := range raw {
		raw[i] = c.read8(c.Reg.PC + uint16(i))
	}
	return c.monitor.BeforeExecute(c, Instruction{
		Addr:      c.Reg.PC,
		Opcode:    c.Opcode,
		Mnemonic:  op.Mnemonic,
		Raw:       raw,
		Registers: c.Reg,
		Flags:     c.Flags,
		Cycles:    c.TotalCycles,
	})
}
