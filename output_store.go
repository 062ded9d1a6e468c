package acsearch

import "fmt"

const noKeyword = -1

// outputStore keeps the output sets of all states, directly indexed by state ID.
//
// The output set of a state s is own[s] (if present) followed by the output
// set of link[s], where link[s] is the nearest state on the failure chain of s
// terminating a keyword (0 if there is none). Following the chain from s
// therefore enumerates the propagated output set, longest keyword first,
// without storing inherited keywords more than once.
type outputStore struct {
	own  []int32   // keyword index terminating at a state, or noKeyword
	link []StateID // next state of the output chain; 0 = none
}

func newOutputStore(states int) *outputStore {
	s := &outputStore{
		own:  make([]int32, states),
		link: make([]StateID, states),
	}
	for i := range s.own {
		s.own[i] = noKeyword
	}
	return s
}

// Put records keyword kw as the own output of state.
func (s *outputStore) Put(state StateID, kw int32) error {
	if int(state) >= len(s.own) || state == 0 {
		return fmt.Errorf("output store: state out of range: %d", state)
	}
	s.own[state] = kw
	return nil
}

// Own returns the keyword terminating exactly at state.
func (s *outputStore) Own(state StateID) (int32, bool) {
	if int(state) >= len(s.own) {
		return noKeyword, false
	}
	kw := s.own[state]
	return kw, kw != noKeyword
}

// SetLink sets the output link of state. It must be called in breadth-first
// order, after the link of fail has been set.
func (s *outputStore) SetLink(state, fail StateID) {
	if _, ok := s.Own(fail); ok {
		s.link[state] = fail
		return
	}
	s.link[state] = s.link[fail]
}

// First returns the first state of the output chain of state, or 0 if the
// output set of state is empty.
func (s *outputStore) First(state StateID) StateID {
	if _, ok := s.Own(state); ok {
		return state
	}
	if int(state) >= len(s.link) {
		return 0
	}
	return s.link[state]
}

// Next returns the state following state in an output chain.
func (s *outputStore) Next(state StateID) StateID {
	return s.link[state]
}

// Collect appends the complete output set of state to dst.
func (s *outputStore) Collect(state StateID, dst []int32) []int32 {
	for o := s.First(state); o != 0; o = s.Next(o) {
		dst = append(dst, s.own[o])
	}
	return dst
}
