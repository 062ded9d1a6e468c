package dat

// DAT is a frozen double-array trie holding the goto function of a
// keyword automaton.
//   - States are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Mapping:
//   - Map is a paged mapping from Unicode code points to dense alphabet IDs.
//     0 means "not part of the keyword alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint32

	// Base and Check are the classic double-array.
	// Base entries of leaf states stay 0; as Check only ever names a parent
	// state, a leaf can never produce a valid transition.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Map translates runes to dense IDs [0..Sigma].
	Map PagedMap
}

// New creates an empty double array with a root state and no alphabet.
func New() *DAT {
	return &DAT{
		Root:  1,
		Base:  make([]int32, 2),
		Check: make([]int32, 2),
	}
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint32) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := int64(d.Base[state]) + int64(dense)
	if t <= 0 || t >= int64(len(d.Check)) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint32 { return d.Map.Dense(r) }

// Used reports whether slot i is occupied by a state.
func (d *DAT) Used(i int) bool {
	if i <= 0 || i >= len(d.Check) {
		return false
	}
	return i == int(d.Root) || d.Check[i] != 0
}

// Grow makes sure idx is a valid slot index.
func (d *DAT) Grow(idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}
