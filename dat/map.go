package dat

import "unicode"

// numTop is the number of 256-entry pages needed to cover all of Unicode.
const numTop = (unicode.MaxRune + 1) >> 8

// PagedMap maps Unicode code points (0..0x10FFFF) to dense alphabet IDs.
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - Top: 4352 * 2 = 8.5 KB
//   - Each populated page: 256 * 4 = 1 KB
//
// Keyword alphabets usually touch only a handful of high-byte blocks.
type PagedMap struct {
	Top   [numTop]uint16 // page index (1-based); 0 means none
	Pages []uint32       // flat: NumPages*256
}

// Dense returns the dense alphabet ID for a code point.
// Returns 0 if absent or if r is not a valid code point.
func (m *PagedMap) Dense(r rune) uint32 {
	if r < 0 || r > unicode.MaxRune {
		return 0
	}
	pi := m.Top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMap) NumPages() int { return len(m.Pages) >> 8 }

// EnsurePage ensures that the page for high bits hi exists.
// Returns the 1-based page index.
func (m *PagedMap) EnsurePage(hi int) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 entries initialized to 0)
	m.Pages = append(m.Pages, make([]uint32, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set sets mapping r -> dense (dense may be 0 to clear).
// Invalid code points are ignored.
func (m *PagedMap) Set(r rune, dense uint32) {
	if r < 0 || r > unicode.MaxRune {
		return
	}
	hi := int(r >> 8)
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		pi = m.EnsurePage(hi)
	}
	base := int(pi-1) << 8
	m.Pages[base+int(r&0xFF)] = dense
}
