package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexture/m6502/memory"
)

func Test_Timing_PageCross(t *testing.T) {
	type testArgs struct {
		name     string
		program  []uint8
		x, y     uint8
		expected int
	}

	tests := []testArgs{
		{
			name:     "LDA abs,X same page",
			program:  []uint8{0xbd, 0x00, 0x02}, // LDA $0200,X
			x:        0x10,
			expected: 4,
		},
		{
			name:     "LDA abs,X crossing",
			program:  []uint8{0xbd, 0xf0, 0x02},
			x:        0x20,
			expected: 5,
		},
		{
			name:     "LDA abs,Y crossing",
			program:  []uint8{0xb9, 0xf0, 0x02},
			y:        0x20,
			expected: 5,
		},
		{
			name:     "STA abs,X crossing pays nothing extra",
			program:  []uint8{0x9d, 0xf0, 0x02}, // STA $02F0,X
			x:        0x20,
			expected: 5,
		},
		{
			name:     "ASL abs,X is fixed at 7",
			program:  []uint8{0x1e, 0xf0, 0x02},
			x:        0x20,
			expected: 7,
		},
		{
			name:     "LDA (zp),Y crossing",
			program:  []uint8{0xb1, 0x10}, // LDA ($10),Y
			y:        0x20,
			expected: 6,
		},
		{
			name:     "STA (zp),Y crossing pays nothing extra",
			program:  []uint8{0x91, 0x10},
			y:        0x20,
			expected: 6,
		},
		{
			name:     "LAX abs,Y crossing",
			program:  []uint8{0xbf, 0xf0, 0x02},
			y:        0x20,
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ram := newTestCPU(t, MOS6502, tt.program...)
			// Zero-page pointer for the indirect modes: $02F0.
			ram.Write8(0x0010, 0xf0)
			ram.Write8(0x0011, 0x02)
			c.Reg.X = tt.x
			c.Reg.Y = tt.y

			assert.Equal(t, tt.expected, c.Step(), "cycles")
		})
	}
}

func Test_Timing_Branches(t *testing.T) {
	type testArgs struct {
		name     string
		org      uint16
		program  []uint8
		zero     bool
		expected int
	}

	tests := []testArgs{
		{
			name:     "not taken",
			org:      testOrg,
			program:  []uint8{0xf0, 0x10}, // BEQ +16
			zero:     false,
			expected: 2,
		},
		{
			name:     "taken, same page",
			org:      testOrg,
			program:  []uint8{0xf0, 0x10},
			zero:     true,
			expected: 3,
		},
		{
			name: "taken, page crossed",
			// From $06F0 a +16 branch lands at $0702.
			org:      0x06f0,
			program:  []uint8{0xf0, 0x10},
			zero:     true,
			expected: 4,
		},
		{
			name: "taken backwards across a page",
			// From $0600 a -3 branch lands at $05FF.
			org:      testOrg,
			program:  []uint8{0xf0, 0xfd},
			zero:     true,
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ram := memory.NewRAM(0x10000)
			ram.Load(tt.org, tt.program)
			ram.Write8(ResetVector, uint8(tt.org))
			ram.Write8(ResetVector+1, uint8(tt.org>>8))

			c := New(MOS6502, ram)
			c.Reset()
			c.Flags.Z = tt.zero

			assert.Equal(t, tt.expected, c.Step(), "cycles")
		})
	}
}

func Test_Timing_BaseCycles(t *testing.T) {
	type testArgs struct {
		name     string
		program  []uint8
		expected int
	}

	tests := []testArgs{
		{name: "LDA imm", program: []uint8{0xa9, 0x01}, expected: 2},
		{name: "LDA zp", program: []uint8{0xa5, 0x10}, expected: 3},
		{name: "LDA zp,X", program: []uint8{0xb5, 0x10}, expected: 4},
		{name: "LDA abs", program: []uint8{0xad, 0x00, 0x02}, expected: 4},
		{name: "LDA (zp,X)", program: []uint8{0xa1, 0x10}, expected: 6},
		{name: "STA abs", program: []uint8{0x8d, 0x00, 0x02}, expected: 4},
		{name: "INC zp", program: []uint8{0xe6, 0x10}, expected: 5},
		{name: "INC abs", program: []uint8{0xee, 0x00, 0x02}, expected: 6},
		{name: "JMP abs", program: []uint8{0x4c, 0x00, 0x07}, expected: 3},
		{name: "JMP ind", program: []uint8{0x6c, 0x00, 0x07}, expected: 5},
		{name: "PHA", program: []uint8{0x48}, expected: 3},
		{name: "PLA", program: []uint8{0x68}, expected: 4},
		{name: "BRK", program: []uint8{0x00}, expected: 7},
		{name: "NOP", program: []uint8{0xea}, expected: 2},
		{name: "SLO (zp,X)", program: []uint8{0x03, 0x10}, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(t, MOS6502, tt.program...)
			assert.Equal(t, tt.expected, c.Step(), "cycles")
		})
	}
}

func Test_Timing_TotalCycles(t *testing.T) {
	// Reset charges 7, then 2+2 for the NOPs.
	c, _ := newTestCPU(t, MOS6502, 0xea, 0xea)
	c.Step()
	c.Step()
	assert.Equal(t, uint64(11), c.TotalCycles, "total cycles")
}
