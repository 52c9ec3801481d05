package persona

// enumerateFields lists every currently choosable path in schema declaration
// order, depth first. A literal field is always listed. An enumerated field is
// listed until a choice is recorded at it; from then on the walk descends into
// the chosen option's subtree instead, so the field itself stops being
// choosable and its follow-up fields appear at its position.
func enumerateFields(root *Schema, choices *ChoiceSet) []string {
	var out []string
	var walk func(node *Schema, prefix string)
	walk = func(node *Schema, prefix string) {
		for _, name := range node.FieldNames() {
			spec, _ := node.Field(name)
			p := joinPath(prefix, name)
			if spec.Space.IsLiteral() {
				out = append(out, p)
				continue
			}
			chosen, ok := choices.Get(p)
			if !ok {
				out = append(out, p)
				continue
			}
			opt, _ := chosen.(string)
			sub, ok := spec.Space.Option(opt)
			if !ok {
				// Unreachable through the builder, which only records
				// validated option names. Stay total regardless.
				out = append(out, p)
				continue
			}
			walk(sub, p)
		}
	}
	walk(root, "")
	return out
}
