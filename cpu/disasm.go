package cpu

import "fmt"

// Disassemble decodes the instruction at addr and returns its assembly
// text together with the number of bytes it occupies. Relative branch
// operands are printed as the resolved target address.
func Disassemble(mem ReadWriter, addr uint16) (string, int) {
	opcode := mem.Read8(addr)
	op := optable[opcode]

	var text string
	switch op.Mode {
	case addrModeIMM:
		text = fmt.Sprintf("%s #$%02X", op.Mnemonic, mem.Read8(addr+1))
	case addrModeZP:
		text = fmt.Sprintf("%s $%02X", op.Mnemonic, mem.Read8(addr+1))
	case addrModeZPX:
		text = fmt.Sprintf("%s $%02X,X", op.Mnemonic, mem.Read8(addr+1))
	case addrModeZPY:
		text = fmt.Sprintf("%s $%02X,Y", op.Mnemonic, mem.Read8(addr+1))
	case addrModeABS:
		text = fmt.Sprintf("%s $%04X", op.Mnemonic, read16(mem, addr+1))
	case addrModeABSX:
		text = fmt.Sprintf("%s $%04X,X", op.Mnemonic, read16(mem, addr+1))
	case addrModeABSY:
		text = fmt.Sprintf("%s $%04X,Y", op.Mnemonic, read16(mem, addr+1))
	case addrModeIND:
		text = fmt.Sprintf("%s ($%04X)", op.Mnemonic, read16(mem, addr+1))
	case addrModeINDX:
		text = fmt.Sprintf("%s ($%02X,X)", op.Mnemonic, mem.Read8(addr+1))
	case addrModeINDY:
		text = fmt.Sprintf("%s ($%02X),Y", op.Mnemonic, mem.Read8(addr+1))
	case addrModeREL:
		off := uint16(mem.Read8(addr + 1))
		if off&0x80 > 0 {
			off |= 0xff00 // add leading 1s to save the sign
		}
		text = fmt.Sprintf("%s $%04X", op.Mnemonic, addr+2+off)
	case addrModeACC:
		text = fmt.Sprintf("%s A", op.Mnemonic)
	default:
		text = op.Mnemonic.String()
	}
	return text, op.Size
}

// DisassembleAll walks the full 64 KiB address space and returns a map
// from address to assembly text for every decodable position.
func DisassembleAll(mem ReadWriter) map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)
	addr := uint32(0)
	for addr <= 0xffff {
		text, size := Disassemble(mem, uint16(addr))
		disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s", addr, text)
		addr += uint32(size)
	}
	return disasm
}

func read16(mem ReadWriter, addr uint16) uint16 {
	lo := uint16(mem.Read8(addr))
	hi := uint16(mem.Read8(addr + 1))
	return hi<<8 | lo
}
