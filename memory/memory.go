// Package memory provides byte-addressable backing stores for a 16-bit
// address bus: plain RAM, write-protected ROM, a bank mapper with a fill
// value for unmapped regions, and an address mask adapter.
package memory

import "os"

// ReadWriter is the bus contract the CPU core consumes. Implementations
// receive addresses already wrapped to 16 bits.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// RAM is random access memory.
type RAM struct {
	data []uint8
}

// NewRAM creates RAM of the given size in bytes.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]uint8, size)}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.data[addr]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.data[addr] = data
}

// Load copies b into RAM starting at addr and returns the number of bytes
// copied. Bytes past the end of the RAM are dropped.
func (r *RAM) Load(addr uint16, b []uint8) int {
	return copy(r.data[addr:], b)
}

// Fill overwrites all of RAM with the given value.
func (r *RAM) Fill(value uint8) {
	for i := range r.data {
		r.data[i] = value
	}
}

// Size returns the RAM size in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// ROM is read-only memory. Writes are silently dropped, matching a ROM
// chip that ignores the R/W line.
type ROM []uint8

// LoadROM reads a ROM image from a file.
func LoadROM(name string) (ROM, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ROM(b), nil
}

func (m ROM) Read8(addr uint16) uint8 {
	return m[addr]
}

func (ROM) Write8(uint16, uint8) {}

// Masked restricts and/or translates bus access to a smaller range by
// ANDing the address, e.g. Mask 0x3ff confines access to 1 KB.
type Masked struct {
	ReadWriter
	Mask uint16
}

func (m Masked) Read8(addr uint16) uint8 {
	return m.ReadWriter.Read8(addr & m.Mask)
}

func (m Masked) Write8(addr uint16, data uint8) {
	m.ReadWriter.Write8(addr&m.Mask, data)
}

// Interface checks
var (
	_ ReadWriter = (*RAM)(nil)
	_ ReadWriter = (ROM)(nil)
	_ ReadWriter = Masked{}
)
