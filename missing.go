package persona

// missingFields lists every reachable path without a recorded choice, in
// breadth-first order: all unanswered fields at one level before any at the
// next. The walk starts at the root and only descends through enumerated
// fields that have been answered, so a missing field hides its own subtree
// until it is chosen. Required flags play no part here; this reports what is
// unanswered, not what is mandatory.
func missingFields(root *Schema, choices *ChoiceSet) []string {
	var out []string
	work := []string{""}
	for len(work) > 0 {
		cursor := work[0]
		work = work[1:]
		node, ok := openNode(root, choices, cursor)
		if !ok {
			continue
		}
		for _, name := range node.FieldNames() {
			p := joinPath(cursor, name)
			if !choices.Has(p) {
				out = append(out, p)
				continue
			}
			if spec, _ := node.Field(name); !spec.Space.IsLiteral() {
				work = append(work, p)
			}
		}
	}
	return out
}

// openNode returns the collection of fields sitting directly under cursor:
// the root fields for the empty cursor, or the chosen option's subtree for an
// answered enumerated field.
func openNode(root *Schema, choices *ChoiceSet, cursor string) (*Schema, bool) {
	chosen, ok := choices.Get(cursor)
	if !ok {
		return nodeAt(root, choices, cursor)
	}
	spec, ok := resolveSpec(root, choices, cursor)
	if !ok {
		return nil, false
	}
	opt, ok := chosen.(string)
	if !ok {
		return nil, false
	}
	return spec.Space.Option(opt)
}
