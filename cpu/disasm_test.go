package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexture/m6502/memory"
)

func Test_Disassemble(t *testing.T) {
	type testArgs struct {
		program      []uint8
		expectedText string
		expectedSize int
	}

	tests := []testArgs{
		{program: []uint8{0xa9, 0x42}, expectedText: "LDA #$42", expectedSize: 2},
		{program: []uint8{0xa5, 0x10}, expectedText: "LDA $10", expectedSize: 2},
		{program: []uint8{0xb5, 0x10}, expectedText: "LDA $10,X", expectedSize: 2},
		{program: []uint8{0xb6, 0x10}, expectedText: "LDX $10,Y", expectedSize: 2},
		{program: []uint8{0xad, 0x34, 0x12}, expectedText: "LDA $1234", expectedSize: 3},
		{program: []uint8{0xbd, 0x34, 0x12}, expectedText: "LDA $1234,X", expectedSize: 3},
		{program: []uint8{0x6c, 0x34, 0x12}, expectedText: "JMP ($1234)", expectedSize: 3},
		{program: []uint8{0xa1, 0x10}, expectedText: "LDA ($10,X)", expectedSize: 2},
		{program: []uint8{0xb1, 0x10}, expectedText: "LDA ($10),Y", expectedSize: 2},
		{program: []uint8{0x0a}, expectedText: "ASL A", expectedSize: 1},
		{program: []uint8{0xea}, expectedText: "NOP", expectedSize: 1},
		{program: []uint8{0x02}, expectedText: "HLT", expectedSize: 1},
		{program: []uint8{0xa7, 0x10}, expectedText: "LAX $10", expectedSize: 2},
	}

	for _, tt := range tests {
		t.Run(tt.expectedText, func(t *testing.T) {
			ram := memory.NewRAM(0x10000)
			ram.Load(0x0600, tt.program)

			text, size := Disassemble(ram, 0x0600)

			assert.Equal(t, tt.expectedText, text, "text")
			assert.Equal(t, tt.expectedSize, size, "size")
		})
	}
}

func Test_Disassemble_Relative(t *testing.T) {
	ram := memory.NewRAM(0x10000)

	// Branch target is printed resolved, not as a raw offset.
	ram.Load(0x0600, []uint8{0xd0, 0x10}) // BNE +16
	text, _ := Disassemble(ram, 0x0600)
	assert.Equal(t, "BNE $0612", text, "forward branch")

	ram.Load(0x0600, []uint8{0xd0, 0xfe}) // BNE -2
	text, _ = Disassemble(ram, 0x0600)
	assert.Equal(t, "BNE $0600", text, "backward branch")
}
