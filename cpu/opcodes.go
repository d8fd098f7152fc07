package cpu

// Mnemonic identifies an operation, legal or not.
type Mnemonic uint8

// Mnemonics. HLT covers the twelve jam opcodes; everything after it is
// undocumented.
const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	HLT
	LAX
	SAX
	SLO
	RLA
	SRE
	RRA
	DCP
	ISC
	ANC
	ALR
	ARR
	XAA
	AXS
	AHX
	TAS
	SHX
	SHY
	LAS
	mnemonics // for counting
)

var mnemonicName = [mnemonics]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA", "HLT", "LAX", "SAX", "SLO",
	"RLA", "SRE", "RRA", "DCP", "ISC", "ANC", "ALR", "ARR", "XAA", "AXS",
	"AHX", "TAS", "SHX", "SHY", "LAS",
}

func (m Mnemonic) String() string {
	return mnemonicName[m]
}

// operations maps each mnemonic to its implementation. Operations are
// free functions taking the processor state and the resolved effective
// address explicitly; they fetch their operand from the bus themselves.
var operations = [mnemonics]func(*CPU, uint16){
	ADC: adc, AND: and, ASL: asl, BCC: bcc, BCS: bcs, BEQ: beq, BIT: bit,
	BMI: bmi, BNE: bne, BPL: bpl, BRK: brk, BVC: bvc, BVS: bvs, CLC: clc,
	CLD: cld, CLI: cli, CLV: clv, CMP: cmp, CPX: cpx, CPY: cpy, DEC: dec,
	DEX: dex, DEY: dey, EOR: eor, INC: inc, INX: inx, INY: iny, JMP: jmp,
	JSR: jsr, LDA: lda, LDX: ldx, LDY: ldy, LSR: lsr, NOP: nop, ORA: ora,
	PHA: pha, PHP: php, PLA: pla, PLP: plp, ROL: rol, ROR: ror, RTI: rti,
	RTS: rts, SBC: sbc, SEC: sec, SED: sed, SEI: sei, STA: sta, STX: stx,
	STY: sty, TAX: tax, TAY: tay, TSX: tsx, TXA: txa, TXS: txs, TYA: tya,
	HLT: hlt, LAX: lax, SAX: sax, SLO: slo, RLA: rla, SRE: sre, RRA: rra,
	DCP: dcp, ISC: isc, ANC: anc, ALR: alr, ARR: arr, XAA: xaa, AXS: axs,
	AHX: ahx, TAS: tas, SHX: shx, SHY: shy, LAS: las,
}

// operand returns the value a read-modify-write operation works on: the
// accumulator for accumulator mode, a bus read otherwise.
func (c *CPU) operand(addr uint16) uint8 {
	if c.mode == addrModeACC {
		return c.Reg.A
	}
	return c.read8(addr)
}

// writeBack stores a read-modify-write result where operand got it from.
func (c *CPU) writeBack(addr uint16, value uint8) {
	if c.mode == addrModeACC {
		c.Reg.A = value
		return
	}
	c.write8(addr, value)
}

// addWithCarry is the shared ADC core: A = A + v + C. In decimal mode the
// result is recomputed with packed-BCD nibble corrections; Z and N still
// come from the binary result (a quirk of the real chip, not a bug) while
// C comes from the corrected high nibble. V is always the binary signed
// overflow.
func (c *CPU) addWithCarry(v uint8) {
	var carry uint16
	if c.Flags.C {
		carry = 1
	}
	sum := uint16(c.Reg.A) + uint16(v) + carry
	bin := uint8(sum)
	c.Flags.V = ^(c.Reg.A^v)&(c.Reg.A^bin)&0x80 != 0
	c.setZN(bin)

	if c.Flags.D && c.model.HasBCD {
		lo := uint16(c.Reg.A&0x0f) + uint16(v&0x0f) + carry
		hi := uint16(c.Reg.A>>4) + uint16(v>>4)
		if lo > 0x09 {
			lo += 0x06
			hi++
		}
		if hi > 0x09 {
			hi += 0x06
		}
		c.Flags.C = hi > 0x0f
		c.Reg.A = uint8(hi)<<4 | uint8(lo)&0x0f
		return
	}

	c.Flags.C = sum > 0xff
	c.Reg.A = bin
}

// subWithBorrow is the shared SBC core: A = A - v - (1 - C). Binary mode
// is ADC of the one's complement; decimal mode applies BCD borrow
// corrections per nibble, again with Z and N from the binary result.
func (c *CPU) subWithBorrow(v uint8) {
	var borrow uint16
	if !c.Flags.C {
		borrow = 1
	}
	diff := uint16(c.Reg.A) - uint16(v) - borrow
	bin := uint8(diff)
	c.Flags.V = (c.Reg.A^v)&(c.Reg.A^bin)&0x80 != 0
	c.setZN(bin)
	c.Flags.C = diff < 0x100

	if c.Flags.D && c.model.HasBCD {
		lo := uint16(c.Reg.A&0x0f) - uint16(v&0x0f) - borrow
		hi := uint16(c.Reg.A>>4) - uint16(v>>4)
		if lo&0x10 != 0 {
			lo -= 0x06
			hi--
		}
		if hi&0x10 != 0 {
			hi -= 0x06
		}
		c.Reg.A = uint8(hi)<<4 | uint8(lo)&0x0f
		return
	}

	c.Reg.A = bin
}

// compare performs the unsigned 9-bit subtraction shared by CMP, CPX and
// CPY: C set iff no borrow occurred, Z and N from the low byte.
func (c *CPU) compare(reg, v uint8) {
	c.Flags.C = reg >= v
	c.setZN(reg - v)
}

// branch takes a conditional branch to target. Taking a branch costs one
// extra cycle, and one more when it lands on a different page.
func (c *CPU) branch(target uint16) {
	c.Cycles++
	if isDiffPage(c.Reg.PC, target) {
		c.Cycles++
	}
	c.Reg.PC = target
}

// Load/store

func lda(c *CPU, addr uint16) {
	c.Reg.A = c.read8(addr)
	c.setZN(c.Reg.A)
}

func ldx(c *CPU, addr uint16) {
	c.Reg.X = c.read8(addr)
	c.setZN(c.Reg.X)
}

func ldy(c *CPU, addr uint16) {
	c.Reg.Y = c.read8(addr)
	c.setZN(c.Reg.Y)
}

func sta(c *CPU, addr uint16) {
	c.write8(addr, c.Reg.A)
}

func stx(c *CPU, addr uint16) {
	c.write8(addr, c.Reg.X)
}

func sty(c *CPU, addr uint16) {
	c.write8(addr, c.Reg.Y)
}

// Transfers

func tax(c *CPU, _ uint16) {
	c.Reg.X = c.Reg.A
	c.setZN(c.Reg.X)
}

func tay(c *CPU, _ uint16) {
	c.Reg.Y = c.Reg.A
	c.setZN(c.Reg.Y)
}

func tsx(c *CPU, _ uint16) {
	c.Reg.X = c.Reg.S
	c.setZN(c.Reg.X)
}

func txa(c *CPU, _ uint16) {
	c.Reg.A = c.Reg.X
	c.setZN(c.Reg.A)
}

func txs(c *CPU, _ uint16) {
	c.Reg.S = c.Reg.X
}

func tya(c *CPU, _ uint16) {
	c.Reg.A = c.Reg.Y
	c.setZN(c.Reg.A)
}

// Stack

func pha(c *CPU, _ uint16) {
	c.push8(c.Reg.A)
}

func php(c *CPU, _ uint16) {
	// PHP always pushes with B set, like BRK.
	c.push8(c.Flags.Pack() | maskB)
}

func pla(c *CPU, _ uint16) {
	c.Reg.A = c.pop8()
	c.setZN(c.Reg.A)
}

func plp(c *CPU, _ uint16) {
	c.Flags.Unpack(c.pop8())
}

// Arithmetic

func adc(c *CPU, addr uint16) {
	c.addWithCarry(c.read8(addr))
}

func sbc(c *CPU, addr uint16) {
	c.subWithBorrow(c.read8(addr))
}

func cmp(c *CPU, addr uint16) {
	c.compare(c.Reg.A, c.read8(addr))
}

func cpx(c *CPU, addr uint16) {
	c.compare(c.Reg.X, c.read8(addr))
}

func cpy(c *CPU, addr uint16) {
	c.compare(c.Reg.Y, c.read8(addr))
}

// Increment/decrement

func dec(c *CPU, addr uint16) {
	v := c.read8(addr) - 1
	c.write8(addr, v)
	c.setZN(v)
}

func dex(c *CPU, _ uint16) {
	c.Reg.X--
	c.setZN(c.Reg.X)
}

func dey(c *CPU, _ uint16) {
	c.Reg.Y--
	c.setZN(c.Reg.Y)
}

func inc(c *CPU, addr uint16) {
	v := c.read8(addr) + 1
	c.write8(addr, v)
	c.setZN(v)
}

func inx(c *CPU, _ uint16) {
	c.Reg.X++
	c.setZN(c.Reg.X)
}

func iny(c *CPU, _ uint16) {
	c.Reg.Y++
	c.setZN(c.Reg.Y)
}

// Logic

func and(c *CPU, addr uint16) {
	c.Reg.A &= c.read8(addr)
	c.setZN(c.Reg.A)
}

func eor(c *CPU, addr uint16) {
	c.Reg.A ^= c.read8(addr)
	c.setZN(c.Reg.A)
}

func ora(c *CPU, addr uint16) {
	c.Reg.A |= c.read8(addr)
	c.setZN(c.Reg.A)
}

func bit(c *CPU, addr uint16) {
	v := c.read8(addr)
	// N and V come straight from the operand, not from the AND result.
	c.Flags.Z = c.Reg.A&v == 0
	c.Flags.N = v&0x80 != 0
	c.Flags.V = v&0x40 != 0
}

// Shifts and rotates

func asl(c *CPU, addr uint16) {
	v := c.operand(addr)
	c.Flags.C = v&0x80 != 0
	v <<= 1
	c.setZN(v)
	c.writeBack(addr, v)
}

func lsr(c *CPU, addr uint16) {
	v := c.operand(addr)
	c.Flags.C = v&0x01 != 0
	v >>= 1
	c.setZN(v)
	c.writeBack(addr, v)
}

func rol(c *CPU, addr uint16) {
	v := c.operand(addr)
	r := v << 1
	if c.Flags.C {
		r |= 0x01
	}
	c.Flags.C = v&0x80 != 0
	c.setZN(r)
	c.writeBack(addr, r)
}

func ror(c *CPU, addr uint16) {
	v := c.operand(addr)
	r := v >> 1
	if c.Flags.C {
		r |= 0x80
	}
	c.Flags.C = v&0x01 != 0
	c.setZN(r)
	c.writeBack(addr, r)
}

// Branches

func bcc(c *CPU, addr uint16) {
	if !c.Flags.C {
		c.branch(addr)
	}
}

func bcs(c *CPU, addr uint16) {
	if c.Flags.C {
		c.branch(addr)
	}
}

func bne(c *CPU, addr uint16) {
	if !c.Flags.Z {
		c.branch(addr)
	}
}

func beq(c *CPU, addr uint16) {
	if c.Flags.Z {
		c.branch(addr)
	}
}

func bpl(c *CPU, addr uint16) {
	if !c.Flags.N {
		c.branch(addr)
	}
}

func bmi(c *CPU, addr uint16) {
	if c.Flags.N {
		c.branch(addr)
	}
}

func bvc(c *CPU, addr uint16) {
	if !c.Flags.V {
		c.branch(addr)
	}
}

func bvs(c *CPU, addr uint16) {
	if c.Flags.V {
		c.branch(addr)
	}
}

// Jumps and interrupts

func jmp(c *CPU, addr uint16) {
	c.Reg.PC = addr
}

func jsr(c *CPU, addr uint16) {
	// PC already points past the operand; the pushed address is the last
	// byte of the JSR instruction, RTS adds one back.
	c.push16(c.Reg.PC - 1)
	c.Reg.PC = addr
}

func rts(c *CPU, _ uint16) {
	c.Reg.PC = c.pop16() + 1
}

func brk(c *CPU, _ uint16) {
	// BRK carries an implied signature byte; the pushed return address
	// skips it.
	c.Reg.PC++
	c.push16(c.Reg.PC)
	c.push8(c.Flags.Pack() | maskB)
	c.Flags.I = true
	c.Reg.PC = c.read16(IRQVector)
}

func rti(c *CPU, _ uint16) {
	c.Flags.Unpack(c.pop8())
	c.Reg.PC = c.pop16()
}

// Flag operations

func clc(c *CPU, _ uint16) { c.Flags.C = false }
func cld(c *CPU, _ uint16) { c.Flags.D = false }
func cli(c *CPU, _ uint16) { c.Flags.I = false }
func clv(c *CPU, _ uint16) { c.Flags.V = false }
func sec(c *CPU, _ uint16) { c.Flags.C = true }
func sed(c *CPU, _ uint16) { c.Flags.D = true }
func sei(c *CPU, _ uint16) { c.Flags.I = true }

// Misc.

func nop(*CPU, uint16) {}

// hlt models the jam opcodes: PC is rewound so the processor appears
// stuck fetching the same instruction, and the condition is reported.
func hlt(c *CPU, _ uint16) {
	c.Reg.PC--
	c.halted = true
	c.reportJam()
}

// Undocumented. All are compositions of the legal primitives above.

func lax(c *CPU, addr uint16) {
	v := c.read8(addr)
	c.Reg.A = v
	c.Reg.X = v
	c.setZN(v)
}

func sax(c *CPU, addr uint16) {
	c.write8(addr, c.Reg.A&c.Reg.X)
}

func slo(c *CPU, addr uint16) {
	v := c.read8(addr)
	c.Flags.C = v&0x80 != 0
	v <<= 1
	c.write8(addr, v)
	c.Reg.A |= v
	c.setZN(c.Reg.A)
}

func rla(c *CPU, addr uint16) {
	v := c.read8(addr)
	r := v << 1
	if c.Flags.C {
		r |= 0x01
	}
	c.Flags.C = v&0x80 != 0
	c.write8(addr, r)
	c.Reg.A &= r
	c.setZN(c.Reg.A)
}

func sre(c *CPU, addr uint16) {
	v := c.read8(addr)
	c.Flags.C = v&0x01 != 0
	v >>= 1
	c.write8(addr, v)
	c.Reg.A ^= v
	c.setZN(c.Reg.A)
}

func rra(c *CPU, addr uint16) {
	v := c.read8(addr)
	r := v >> 1
	if c.Flags.C {
		r |= 0x80
	}
	c.Flags.C = v&0x01 != 0
	c.write8(addr, r)
	c.addWithCarry(r)
}

func dcp(c *CPU, addr uint16) {
	v := c.read8(addr) - 1
	c.write8(addr, v)
	c.compare(c.Reg.A, v)
}

func isc(c *CPU, addr uint16) {
	v := c.read8(addr) + 1
	c.write8(addr, v)
	c.subWithBorrow(v)
}

func anc(c *CPU, addr uint16) {
	c.Reg.A &= c.read8(addr)
	c.setZN(c.Reg.A)
	c.Flags.C = c.Flags.N
}

func alr(c *CPU, addr uint16) {
	v := c.Reg.A & c.read8(addr)
	c.Flags.C = v&0x01 != 0
	c.Reg.A = v >> 1
	c.setZN(c.Reg.A)
}

func arr(c *CPU, addr uint16) {
	v := c.Reg.A & c.read8(addr)
	r := v >> 1
	if c.Flags.C {
		r |= 0x80
	}
	c.Reg.A = r
	c.setZN(r)
	c.Flags.C = r&0x40 != 0
	c.Flags.V = (r>>6)&1 != (r>>5)&1
}

func xaa(c *CPU, addr uint16) {
	c.Reg.A = c.Reg.X & c.read8(addr)
	c.setZN(c.Reg.A)
}

func axs(c *CPU, addr uint16) {
	v := c.read8(addr)
	ax := c.Reg.A & c.Reg.X
	c.Reg.X = ax - v
	c.Flags.C = ax >= v
	c.setZN(c.Reg.X)
}

func ahx(c *CPU, addr uint16) {
	c.write8(addr, c.Reg.A&c.Reg.X&(uint8(addr>>8)+1))
}

func tas(c *CPU, addr uint16) {
	c.Reg.S = c.Reg.A & c.Reg.X
	c.write8(addr, c.Reg.S&(uint8(addr>>8)+1))
}

func shx(c *CPU, addr uint16) {
	c.write8(addr, c.Reg.X&(uint8(addr>>8)+1))
}

func shy(c *CPU, addr uint16) {
	c.write8(addr, c.Reg.Y&(uint8(addr>>8)+1))
}

func las(c *CPU, addr uint16) {
	v := c.read8(addr) & c.Reg.S
	c.Reg.A = v
	c.Reg.X = v
	c.Reg.S = v
	c.setZN(v)
}
