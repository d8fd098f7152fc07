package memory

import (
	"fmt"
	"sort"
	"strings"
)

// Mapper routes bus access to address-ranged banks. Reads from unmapped
// addresses yield the fill value and writes there are dropped, matching
// the undecoded-bus behavior of real hardware: the chip protocol has no
// concept of an invalid access.
type Mapper struct {
	// Fill is the value returned for reads from unmapped areas.
	Fill uint8

	banks bankRanges
}

// NewMapper creates a mapper with 0xFF as the fill value.
func NewMapper() *Mapper {
	return &Mapper{Fill: 0xff}
}

func (m *Mapper) Read8(addr uint16) uint8 {
	if mem := m.banks.at(addr); mem != nil {
		return mem.Read8(addr)
	}
	return m.Fill
}

func (m *Mapper) Write8(addr uint16, data uint8) {
	if mem := m.banks.at(addr); mem != nil {
		mem.Write8(addr, data)
	}
}

// Map routes [start, stop] to mem. The bank is expected to do its own
// address translation for the mapped range (see Masked).
func (m *Mapper) Map(start, stop uint16, mem ReadWriter) {
	m.banks = append(m.banks, bankRange{
		ReadWriter: mem,
		start:      start,
		stop:       stop,
	})
	sort.Stable(m.banks)
}

// Load writes b into the mapped banks starting at addr. Bytes landing on
// unmapped addresses are dropped like any other write.
func (m *Mapper) Load(addr uint16, b []uint8) {
	for i, v := range b {
		m.Write8(addr+uint16(i), v)
	}
}

// Unmap removes the first bank backed by mem, reporting whether one was
// found.
func (m *Mapper) Unmap(mem ReadWriter) bool {
	for i, b := range m.banks {
		if b.ReadWriter == mem {
			m.banks = append(m.banks[:i], m.banks[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Mapper) String() string {
	s := make([]string, len(m.banks))
	for i, b := range m.banks {
		s[i] = fmt.Sprintf("$%04X-$%04X", b.start, b.stop)
	}
	return "Mapper{" + strings.Join(s, ", ") + "}"
}

type bankRange struct {
	ReadWriter
	start, stop uint16
}

type bankRanges []bankRange

func (r bankRanges) Len() int { return len(r) }

func (r bankRanges) Less(i, j int) bool {
	if r[j].start >= r[i].start && r[j].stop <= r[i].stop {
		// The smaller contained range takes precedence.
		return false
	}
	return r[i].start < r[j].start
}

func (r bankRanges) Swap(i, j int) { r[i], r[j] = r[j], r[i] }

func (r bankRanges) at(addr uint16) ReadWriter {
	l := len(r)
	if i := sort.Search(l, func(i int) bool {
		return addr <= r[i].stop
	}); i < l {
		if b := r[i]; addr >= b.start && addr <= b.stop {
			return b
		}
	}
	return nil
}

var _ ReadWriter = (*Mapper)(nil)
