package persona

// checkChoice decides whether value may be recorded at path given everything
// chosen so far. Checks run in a fixed order and stop at the first failure:
//
//  1. path must be among the currently choosable fields, else invalid_field;
//  2. the value must fit the field's option space, else invalid_choice with
//     a reason ("must be string", "must be number", "must be one of [...]");
//  3. the field's predicate, when present, must accept the value, else
//     invalid_choice without a reason.
//
// A nil return means the choice is acceptable.
func checkChoice(root *Schema, choices *ChoiceSet, path string, value any) error {
	if !choosable(root, choices, path) {
		return Issues{invalidFieldIssue(path)}
	}
	spec, ok := resolveSpec(root, choices, path)
	if !ok {
		// Choosable paths always resolve; keep the failure typed anyway.
		return Issues{invalidFieldIssue(path)}
	}
	if spec.Space.IsLiteral() {
		if KindOf(value) != spec.Space.Kind() {
			reason := "must be " + spec.Space.Kind().String()
			return Issues{invalidChoiceIssue(path, value, reason, map[string]any{
				"kind": spec.Space.Kind().String(),
			})}
		}
	} else {
		opt, isStr := value.(string)
		if !isStr || !spec.Space.hasOption(opt) {
			return Issues{invalidChoiceIssue(path, value, spec.Space.oneOfReason(), map[string]any{
				"options": spec.Space.OptionNames(),
			})}
		}
	}
	if spec.Check != nil && !spec.Check(value) {
		return Issues{invalidChoiceIssue(path, value, "", nil)}
	}
	return nil
}

func choosable(root *Schema, choices *ChoiceSet, path string) bool {
	if path == "" {
		return false
	}
	for _, p := range enumerateFields(root, choices) {
		if p == path {
			return true
		}
	}
	return false
}
