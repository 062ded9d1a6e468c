package acsearch

// Stats reports density metrics for the double-array of an Automaton.
type Stats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the fraction of double-array slots occupied by states.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats reports density metrics for the underlying double-array trie.
func (a *Automaton[V]) Stats() Stats {
	stats := Stats{Backend: "dat"}
	if a == nil || a.table == nil {
		return stats
	}
	stats.TotalSlots = a.table.NStates()
	stats.MaxStateID = int(a.table.Root)
	for i := range a.table.Check {
		if a.table.Used(i) {
			stats.UsedSlots++
			if i > stats.MaxStateID {
				stats.MaxStateID = i
			}
		}
	}
	return stats
}
