package cpu

type addrMode uint8

const (
	// Immediate
	// Operand is the constant following the opcode.
	// Example: LDA #$10
	addrModeIMM addrMode = iota + 1

	// Zero Page
	// Operand lives in the first 256 bytes of memory.
	// Example: LDA $10
	addrModeZP

	// Zero Page, X
	// Zero-page address plus X, wrapping within the page.
	// Example: LDA $10,X
	addrModeZPX

	// Zero Page, Y
	// Zero-page address plus Y, wrapping within the page.
	// Example: LDX $10,Y
	addrModeZPY

	// Absolute
	// Full little-endian 16-bit address.
	// Example: LDA $1234
	addrModeABS

	// Absolute, X
	// 16-bit address plus X; may cross a page boundary.
	// Example: LDA $1234,X
	addrModeABSX

	// Absolute, Y
	// 16-bit address plus Y; may cross a page boundary.
	// Example: LDA $1234,Y
	addrModeABSY

	// Indirect
	// Target fetched through a 16-bit pointer. Used only by JMP.
	// Example: JMP ($1234)
	addrModeIND

	// Indexed Indirect (X)
	// Pointer read from zero page at operand+X.
	// Example: LDA ($10,X)
	addrModeINDX

	// Indirect Indexed (Y)
	// Pointer read from zero page at operand, then Y added.
	// Example: LDA ($10),Y
	addrModeINDY

	// Relative
	// Signed 8-bit offset from the next instruction. Branches only.
	// Example: BNE $10
	addrModeREL

	// Accumulator
	// Operand is the accumulator.
	// Example: LSR A
	addrModeACC

	// Implied
	// Operand is implicit.
	// Example: CLC
	addrModeIMP
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// resolve computes the effective address for the current instruction,
// advancing PC past the operand bytes. The second result reports whether
// an indexed mode crossed a page boundary; whether that costs a cycle is
// decided by the dispatch table, not here. Operations that need the
// operand value fetch it themselves, so store instructions never issue a
// spurious read.
func (c *CPU) resolve(mode addrMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case addrModeIMM:
		addr = c.Reg.PC
		c.Reg.PC++
		return addr, false

	case addrModeZP:
		addr = uint16(c.read8(c.Reg.PC))
		c.Reg.PC++
		return addr, false

	case addrModeZPX:
		addr = uint16(c.read8(c.Reg.PC) + c.Reg.X)
		c.Reg.PC++
		return addr, false

	case addrModeZPY:
		addr = uint16(c.read8(c.Reg.PC) + c.Reg.Y)
		c.Reg.PC++
		return addr, false

	case addrModeABS:
		addr = c.read16(c.Reg.PC)
		c.Reg.PC += 2
		return addr, false

	case addrModeABSX:
		base := c.read16(c.Reg.PC)
		c.Reg.PC += 2
		addr = base + uint16(c.Reg.X)
		return addr, isDiffPage(base, addr)

	case addrModeABSY:
		base := c.read16(c.Reg.PC)
		c.Reg.PC += 2
		addr = base + uint16(c.Reg.Y)
		return addr, isDiffPage(base, addr)

	case addrModeIND:
		ptr := c.read16(c.Reg.PC)
		c.Reg.PC += 2
		hi := ptr + 1
		if c.model.HasJMPBug && ptr&0x00ff == 0x00ff {
			// The NMOS part never carries into the pointer's high byte,
			// so JMP ($xxFF) wraps within the page.
			hi = ptr & 0xff00
		}
		addr = uint16(c.read8(ptr)) | uint16(c.read8(hi))<<8
		return addr, false

	case addrModeINDX:
		zp := c.read8(c.Reg.PC) + c.Reg.X
		c.Reg.PC++
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(zp + 1)))
		return lo | hi<<8, false

	case addrModeINDY:
		zp := c.read8(c.Reg.PC)
		c.Reg.PC++
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(zp + 1)))
		base := lo | hi<<8
		addr = base + uint16(c.Reg.Y)
		return addr, isDiffPage(base, addr)

	case addrModeREL:
		off := uint16(c.read8(c.Reg.PC))
		c.Reg.PC++
		if off&0x80 != 0 {
			off |= 0xff00 // sign extend
		}
		return c.Reg.PC + off, false

	case addrModeACC, addrModeIMP:
		return 0, false
	}

	return 0, false
}
