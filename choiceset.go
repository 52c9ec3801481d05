package persona

// Choice pairs a full dot path with the value recorded at it. It is both the
// ordered input unit for New and the element type of ChoiceSet.All.
type Choice struct {
	Path  string
	Value any
}

// ChoiceSet is an immutable record of the values chosen so far, keyed by full
// dot path. Recording a choice yields a new set; existing sets are never
// mutated, so any number of builders may share a tail. A nil *ChoiceSet is the
// empty set and every method is safe on it.
type ChoiceSet struct {
	parent *ChoiceSet
	path   string
	value  any
}

// with returns a set extending cs with one more recorded choice. The newest
// record for a path shadows older ones.
func (cs *ChoiceSet) with(path string, value any) *ChoiceSet {
	return &ChoiceSet{parent: cs, path: path, value: value}
}

// Get returns the value recorded at path. The second result is false when no
// choice has been recorded there.
func (cs *ChoiceSet) Get(path string) (any, bool) {
	for n := cs; n != nil; n = n.parent {
		if n.path == path {
			return n.value, true
		}
	}
	return nil, false
}

// Has reports whether a choice has been recorded at path.
func (cs *ChoiceSet) Has(path string) bool {
	_, ok := cs.Get(path)
	return ok
}

// Len returns the number of distinct paths with a recorded choice.
func (cs *ChoiceSet) Len() int {
	return len(cs.All())
}

// All returns the recorded choices as path/value pairs. Paths appear in the
// order they were first recorded, each carrying its newest value, so replaying
// the result through New reproduces the set. The slice is a copy.
func (cs *ChoiceSet) All() []Choice {
	if cs == nil {
		return nil
	}
	var chain []*ChoiceSet
	for n := cs; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	var out []Choice
	at := make(map[string]int, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		if j, seen := at[n.path]; seen {
			out[j].Value = n.value
			continue
		}
		at[n.path] = len(out)
		out = append(out, Choice{Path: n.path, Value: n.value})
	}
	return out
}
