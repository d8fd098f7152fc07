package cpu

// Model describes a member of the MOS 6502 family. The execution engine is
// shared; models differ only in which quirks and inputs the silicon wires
// up.
type Model struct {
	Name string

	// HasBCD enables decimal mode for ADC/SBC. The Ricoh parts in the NES
	// have the circuitry disconnected, so D is carried in the status byte
	// but never honored.
	HasBCD bool

	// HasNMI reports whether the part has an NMI pin.
	HasNMI bool

	// HasJMPBug emulates the indirect-JMP page-wrap defect: JMP ($xxFF)
	// fetches the target's high byte from the start of the same page
	// instead of the next one.
	HasJMPBug bool
}

// Models
var (
	// MOS6502 is the original NMOS part with decimal mode and the
	// indirect-JMP defect. This is the default model.
	MOS6502 = Model{
		Name:      "MOS Technology 6502",
		HasBCD:    true,
		HasNMI:    true,
		HasJMPBug: true,
	}

	// Ricoh2A03 is the NES CPU: no decimal mode, bug intact.
	Ricoh2A03 = Model{
		Name:      "Ricoh 2A03",
		HasNMI:    true,
		HasJMPBug: true,
	}
)
