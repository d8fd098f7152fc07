package cpu

// operation describes one opcode: what it does, how its operand is
// addressed, how many bytes it occupies, its base cycle cost and whether
// it is eligible for the one-cycle page-cross penalty. Only read
// instructions on indexed modes are eligible; index-addressed stores and
// the read-modify-write opcodes always pay their worst case in the base
// cost.
type operation struct {
	Mnemonic  Mnemonic
	Size      int
	Cycles    int
	PageCross bool
	Mode      addrMode
}

// optable maps all 256 opcode values. It is plain data, built at compile
// time, shared by every CPU instance.
var optable = [0x100]operation{
	{BRK, 1, 7, false, addrModeIMP},  // 0x00
	{ORA, 2, 6, false, addrModeINDX}, // 0x01
	{HLT, 1, 0, false, addrModeIMP},  // 0x02
	{SLO, 2, 8, false, addrModeINDX}, // 0x03
	{NOP, 2, 3, false, addrModeZP},   // 0x04
	{ORA, 2, 3, false, addrModeZP},   // 0x05
	{ASL, 2, 5, false, addrModeZP},   // 0x06
	{SLO, 2, 5, false, addrModeZP},   // 0x07
	{PHP, 1, 3, false, addrModeIMP},  // 0x08
	{ORA, 2, 2, false, addrModeIMM},  // 0x09
	{ASL, 1, 2, false, addrModeACC},  // 0x0a
	{ANC, 2, 2, false, addrModeIMM},  // 0x0b
	{NOP, 3, 4, false, addrModeABS},  // 0x0c
	{ORA, 3, 4, false, addrModeABS},  // 0x0d
	{ASL, 3, 6, false, addrModeABS},  // 0x0e
	{SLO, 3, 6, false, addrModeABS},  // 0x0f
	{BPL, 2, 2, false, addrModeREL},  // 0x10
	{ORA, 2, 5, true, addrModeINDY},  // 0x11
	{HLT, 1, 0, false, addrModeIMP},  // 0x12
	{SLO, 2, 8, false, addrModeINDY}, // 0x13
	{NOP, 2, 4, false, addrModeZPX},  // 0x14
	{ORA, 2, 4, false, addrModeZPX},  // 0x15
	{ASL, 2, 6, false, addrModeZPX},  // 0x16
	{SLO, 2, 6, false, addrModeZPX},  // 0x17
	{CLC, 1, 2, false, addrModeIMP},  // 0x18
	{ORA, 3, 4, true, addrModeABSY},  // 0x19
	{NOP, 1, 2, false, addrModeIMP},  // 0x1a
	{SLO, 3, 7, false, addrModeABSY}, // 0x1b
	{NOP, 3, 4, true, addrModeABSX},  // 0x1c
	{ORA, 3, 4, true, addrModeABSX},  // 0x1d
	{ASL, 3, 7, false, addrModeABSX}, // 0x1e
	{SLO, 3, 7, false, addrModeABSX}, // 0x1f
	{JSR, 3, 6, false, addrModeABS},  // 0x20
	{AND, 2, 6, false, addrModeINDX}, // 0x21
	{HLT, 1, 0, false, addrModeIMP},  // 0x22
	{RLA, 2, 8, false, addrModeINDX}, // 0x23
	{BIT, 2, 3, false, addrModeZP},   // 0x24
	{AND, 2, 3, false, addrModeZP},   // 0x25
	{ROL, 2, 5, false, addrModeZP},   // 0x26
	{RLA, 2, 5, false, addrModeZP},   // 0x27
	{PLP, 1, 4, false, addrModeIMP},  // 0x28
	{AND, 2, 2, false, addrModeIMM},  // 0x29
	{ROL, 1, 2, false, addrModeACC},  // 0x2a
	{ANC, 2, 2, false, addrModeIMM},  // 0x2b
	{BIT, 3, 4, false, addrModeABS},  // 0x2c
	{AND, 3, 4, false, addrModeABS},  // 0x2d
	{ROL, 3, 6, false, addrModeABS},  // 0x2e
	{RLA, 3, 6, false, addrModeABS},  // 0x2f
	{BMI, 2, 2, false, addrModeREL},  // 0x30
	{AND, 2, 5, true, addrModeINDY},  // 0x31
	{HLT, 1, 0, false, addrModeIMP},  // 0x32
	{RLA, 2, 8, false, addrModeINDY}, // 0x33
	{NOP, 2, 4, false, addrModeZPX},  // 0x34
	{AND, 2, 4, false, addrModeZPX},  // 0x35
	{ROL, 2, 6, false, addrModeZPX},  // 0x36
	{RLA, 2, 6, false, addrModeZPX},  // 0x37
	{SEC, 1, 2, false, addrModeIMP},  // 0x38
	{AND, 3, 4, true, addrModeABSY},  // 0x39
	{NOP, 1, 2, false, addrModeIMP},  // 0x3a
	{RLA, 3, 7, false, addrModeABSY}, // 0x3b
	{NOP, 3, 4, true, addrModeABSX},  // 0x3c
	{AND, 3, 4, true, addrModeABSX},  // 0x3d
	{ROL, 3, 7, false, addrModeABSX}, // 0x3e
	{RLA, 3, 7, false, addrModeABSX}, // 0x3f
	{RTI, 1, 6, false, addrModeIMP},  // 0x40
	{EOR, 2, 6, false, addrModeINDX}, // 0x41
	{HLT, 1, 0, false, addrModeIMP},  // 0x42
	{SRE, 2, 8, false, addrModeINDX}, // 0x43
	{NOP, 2, 3, false, addrModeZP},   // 0x44
	{EOR, 2, 3, false, addrModeZP},   // 0x45
	{LSR, 2, 5, false, addrModeZP},   // 0x46
	{SRE, 2, 5, false, addrModeZP},   // 0x47
	{PHA, 1, 3, false, addrModeIMP},  // 0x48
	{EOR, 2, 2, false, addrModeIMM},  // 0x49
	{LSR, 1, 2, false, addrModeACC},  // 0x4a
	{ALR, 2, 2, false, addrModeIMM},  // 0x4b
	{JMP, 3, 3, false, addrModeABS},  // 0x4c
	{EOR, 3, 4, false, addrModeABS},  // 0x4d
	{LSR, 3, 6, false, addrModeABS},  // 0x4e
	{SRE, 3, 6, false, addrModeABS},  // 0x4f
	{BVC, 2, 2, false, addrModeREL},  // 0x50
	{EOR, 2, 5, true, addrModeINDY},  // 0x51
	{HLT, 1, 0, false, addrModeIMP},  // 0x52
	{SRE, 2, 8, false, addrModeINDY}, // 0x53
	{NOP, 2, 4, false, addrModeZPX},  // 0x54
	{EOR, 2, 4, false, addrModeZPX},  // 0x55
	{LSR, 2, 6, false, addrModeZPX},  // 0x56
	{SRE, 2, 6, false, addrModeZPX},  // 0x57
	{CLI, 1, 2, false, addrModeIMP},  // 0x58
	{EOR, 3, 4, true, addrModeABSY},  // 0x59
	{NOP, 1, 2, false, addrModeIMP},  // 0x5a
	{SRE, 3, 7, false, addrModeABSY}, // 0x5b
	{NOP, 3, 4, true, addrModeABSX},  // 0x5c
	{EOR, 3, 4, true, addrModeABSX},  // 0x5d
	{LSR, 3, 7, false, addrModeABSX}, // 0x5e
	{SRE, 3, 7, false, addrModeABSX}, // 0x5f
	{RTS, 1, 6, false, addrModeIMP},  // 0x60
	{ADC, 2, 6, false, addrModeINDX}, // 0x61
	{HLT, 1, 0, false, addrModeIMP},  // 0x62
	{RRA, 2, 8, false, addrModeINDX}, // 0x63
	{NOP, 2, 3, false, addrModeZP},   // 0x64
	{ADC, 2, 3, false, addrModeZP},   // 0x65
	{ROR, 2, 5, false, addrModeZP},   // 0x66
	{RRA, 2, 5, false, addrModeZP},   // 0x67
	{PLA, 1, 4, false, addrModeIMP},  // 0x68
	{ADC, 2, 2, false, addrModeIMM},  // 0x69
	{ROR, 1, 2, false, addrModeACC},  // 0x6a
	{ARR, 2, 2, false, addrModeIMM},  // 0x6b
	{JMP, 3, 5, false, addrModeIND},  // 0x6c
	{ADC, 3, 4, false, addrModeABS},  // 0x6d
	{ROR, 3, 6, false, addrModeABS},  // 0x6e
	{RRA, 3, 6, false, addrModeABS},  // 0x6f
	{BVS, 2, 2, false, addrModeREL},  // 0x70
	{ADC, 2, 5, true, addrModeINDY},  // 0x71
	{HLT, 1, 0, false, addrModeIMP},  // 0x72
	{RRA, 2, 8, false, addrModeINDY}, // 0x73
	{NOP, 2, 4, false, addrModeZPX},  // 0x74
	{ADC, 2, 4, false, addrModeZPX},  // 0x75
	{ROR, 2, 6, false, addrModeZPX},  // 0x76
	{RRA, 2, 6, false, addrModeZPX},  // 0x77
	{SEI, 1, 2, false, addrModeIMP},  // 0x78
	{ADC, 3, 4, true, addrModeABSY},  // 0x79
	{NOP, 1, 2, false, addrModeIMP},  // 0x7a
	{RRA, 3, 7, false, addrModeABSY}, // 0x7b
	{NOP, 3, 4, true, addrModeABSX},  // 0x7c
	{ADC, 3, 4, true, addrModeABSX},  // 0x7d
	{ROR, 3, 7, false, addrModeABSX}, // 0x7e
	{RRA, 3, 7, false, addrModeABSX}, // 0x7f
	{NOP, 2, 2, false, addrModeIMM},  // 0x80
	{STA, 2, 6, false, addrModeINDX}, // 0x81
	{NOP, 2, 2, false, addrModeIMM},  // 0x82
	{SAX, 2, 6, false, addrModeINDX}, // 0x83
	{STY, 2, 3, false, addrModeZP},   // 0x84
	{STA, 2, 3, false, addrModeZP},   // 0x85
	{STX, 2, 3, false, addrModeZP},   // 0x86
	{SAX, 2, 3, false, addrModeZP},   // 0x87
	{DEY, 1, 2, false, addrModeIMP},  // 0x88
	{NOP, 2, 2, false, addrModeIMM},  // 0x89
	{TXA, 1, 2, false, addrModeIMP},  // 0x8a
	{XAA, 2, 2, false, addrModeIMM},  // 0x8b
	{STY, 3, 4, false, addrModeABS},  // 0x8c
	{STA, 3, 4, false, addrModeABS},  // 0x8d
	{STX, 3, 4, false, addrModeABS},  // 0x8e
	{SAX, 3, 4, false, addrModeABS},  // 0x8f
	{BCC, 2, 2, false, addrModeREL},  // 0x90
	{STA, 2, 6, false, addrModeINDY}, // 0x91
	{HLT, 1, 0, false, addrModeIMP},  // 0x92
	{AHX, 2, 6, false, addrModeINDY}, // 0x93
	{STY, 2, 4, false, addrModeZPX},  // 0x94
	{STA, 2, 4, false, addrModeZPX},  // 0x95
	{STX, 2, 4, false, addrModeZPY},  // 0x96
	{SAX, 2, 4, false, addrModeZPY},  // 0x97
	{TYA, 1, 2, false, addrModeIMP},  // 0x98
	{STA, 3, 5, false, addrModeABSY}, // 0x99
	{TXS, 1, 2, false, addrModeIMP},  // 0x9a
	{TAS, 3, 5, false, addrModeABSY}, // 0x9b
	{SHY, 3, 5, false, addrModeABSX}, // 0x9c
	{STA, 3, 5, false, addrModeABSX}, // 0x9d
	{SHX, 3, 5, false, addrModeABSY}, // 0x9e
	{AHX, 3, 5, false, addrModeABSY}, // 0x9f
	{LDY, 2, 2, false, addrModeIMM},  // 0xa0
	{LDA, 2, 6, false, addrModeINDX}, // 0xa1
	{LDX, 2, 2, false, addrModeIMM},  // 0xa2
	{LAX, 2, 6, false, addrModeINDX}, // 0xa3
	{LDY, 2, 3, false, addrModeZP},   // 0xa4
	{LDA, 2, 3, false, addrModeZP},   // 0xa5
	{LDX, 2, 3, false, addrModeZP},   // 0xa6
	{LAX, 2, 3, false, addrModeZP},   // 0xa7
	{TAY, 1, 2, false, addrModeIMP},  // 0xa8
	{LDA, 2, 2, false, addrModeIMM},  // 0xa9
	{TAX, 1, 2, false, addrModeIMP},  // 0xaa
	{LAX, 2, 2, false, addrModeIMM},  // 0xab
	{LDY, 3, 4, false, addrModeABS},  // 0xac
	{LDA, 3, 4, false, addrModeABS},  // 0xad
	{LDX, 3, 4, false, addrModeABS},  // 0xae
	{LAX, 3, 4, false, addrModeABS},  // 0xaf
	{BCS, 2, 2, false, addrModeREL},  // 0xb0
	{LDA, 2, 5, true, addrModeINDY},  // 0xb1
	{HLT, 1, 0, false, addrModeIMP},  // 0xb2
	{LAX, 2, 5, true, addrModeINDY},  // 0xb3
	{LDY, 2, 4, false, addrModeZPX},  // 0xb4
	{LDA, 2, 4, false, addrModeZPX},  // 0xb5
	{LDX, 2, 4, false, addrModeZPY},  // 0xb6
	{LAX, 2, 4, false, addrModeZPY},  // 0xb7
	{CLV, 1, 2, false, addrModeIMP},  // 0xb8
	{LDA, 3, 4, true, addrModeABSY},  // 0xb9
	{TSX, 1, 2, false, addrModeIMP},  // 0xba
	{LAS, 3, 4, true, addrModeABSY},  // 0xbb
	{LDY, 3, 4, true, addrModeABSX},  // 0xbc
	{LDA, 3, 4, true, addrModeABSX},  // 0xbd
	{LDX, 3, 4, true, addrModeABSY},  // 0xbe
	{LAX, 3, 4, true, addrModeABSY},  // 0xbf
	{CPY, 2, 2, false, addrModeIMM},  // 0xc0
	{CMP, 2, 6, false, addrModeINDX}, // 0xc1
	{NOP, 2, 2, false, addrModeIMM},  // 0xc2
	{DCP, 2, 8, false, addrModeINDX}, // 0xc3
	{CPY, 2, 3, false, addrModeZP},   // 0xc4
	{CMP, 2, 3, false, addrModeZP},   // 0xc5
	{DEC, 2, 5, false, addrModeZP},   // 0xc6
	{DCP, 2, 5, false, addrModeZP},   // 0xc7
	{INY, 1, 2, false, addrModeIMP},  // 0xc8
	{CMP, 2, 2, false, addrModeIMM},  // 0xc9
	{DEX, 1, 2, false, addrModeIMP},  // 0xca
	{AXS, 2, 2, false, addrModeIMM},  // 0xcb
	{CPY, 3, 4, false, addrModeABS},  // 0xcc
	{CMP, 3, 4, false, addrModeABS},  // 0xcd
	{DEC, 3, 6, false, addrModeABS},  // 0xce
	{DCP, 3, 6, false, addrModeABS},  // 0xcf
	{BNE, 2, 2, false, addrModeREL},  // 0xd0
	{CMP, 2, 5, true, addrModeINDY},  // 0xd1
	{HLT, 1, 0, false, addrModeIMP},  // 0xd2
	{DCP, 2, 8, false, addrModeINDY}, // 0xd3
	{NOP, 2, 4, false, addrModeZPX},  // 0xd4
	{CMP, 2, 4, false, addrModeZPX},  // 0xd5
	{DEC, 2, 6, false, addrModeZPX},  // 0xd6
	{DCP, 2, 6, false, addrModeZPX},  // 0xd7
	{CLD, 1, 2, false, addrModeIMP},  // 0xd8
	{CMP, 3, 4, true, addrModeABSY},  // 0xd9
	{NOP, 1, 2, false, addrModeIMP},  // 0xda
	{DCP, 3, 7, false, addrModeABSY}, // 0xdb
	{NOP, 3, 4, true, addrModeABSX},  // 0xdc
	{CMP, 3, 4, true, addrModeABSX},  // 0xdd
	{DEC, 3, 7, false, addrModeABSX}, // 0xde
	{DCP, 3, 7, false, addrModeABSX}, // 0xdf
	{CPX, 2, 2, false, addrModeIMM},  // 0xe0
	{SBC, 2, 6, false, addrModeINDX}, // 0xe1
	{NOP, 2, 2, false, addrModeIMM},  // 0xe2
	{ISC, 2, 8, false, addrModeINDX}, // 0xe3
	{CPX, 2, 3, false, addrModeZP},   // 0xe4
	{SBC, 2, 3, false, addrModeZP},   // 0xe5
	{INC, 2, 5, false, addrModeZP},   // 0xe6
	{ISC, 2, 5, false, addrModeZP},   // 0xe7
	{INX, 1, 2, false, addrModeIMP},  // 0xe8
	{SBC, 2, 2, false, addrModeIMM},  // 0xe9
	{NOP, 1, 2, false, addrModeIMP},  // 0xea
	{SBC, 2, 2, false, addrModeIMM},  // 0xeb
	{CPX, 3, 4, false, addrModeABS},  // 0xec
	{SBC, 3, 4, false, addrModeABS},  // 0xed
	{INC, 3, 6, false, addrModeABS},  // 0xee
	{ISC, 3, 6, false, addrModeABS},  // 0xef
	{BEQ, 2, 2, false, addrModeREL},  // 0xf0
	{SBC, 2, 5, true, addrModeINDY},  // 0xf1
	{HLT, 1, 0, false, addrModeIMP},  // 0xf2
	{ISC, 2, 8, false, addrModeINDY}, // 0xf3
	{NOP, 2, 4, false, addrModeZPX},  // 0xf4
	{SBC, 2, 4, false, addrModeZPX},  // 0xf5
	{INC, 2, 6, false, addrModeZPX},  // 0xf6
	{ISC, 2, 6, false, addrModeZPX},  // 0xf7
	{SED, 1, 2, false, addrModeIMP},  // 0xf8
	{SBC, 3, 4, true, addrModeABSY},  // 0xf9
	{NOP, 1, 2, false, addrModeIMP},  // 0xfa
	{ISC, 3, 7, false, addrModeABSY}, // 0xfb
	{NOP, 3, 4, true, addrModeABSX},  // 0xfc
	{SBC, 3, 4, true, addrModeABSX},  // 0xfd
	{INC, 3, 7, false, addrModeABSX}, // 0xfe
	{ISC, 3, 7, false, addrModeABSX}, // 0xff
}
