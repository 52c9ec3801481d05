package persona

import "strings"

// nodeAt walks a dot path from the schema root, passing through the recorded
// choice at every segment, and returns the subtree the path lands on. The
// empty path resolves to the root itself. Resolution fails, without error,
// when a segment names no field at its level, no choice has been recorded for
// it, the recorded value is not an option name, or the segment is a literal
// field (literals open no subtree).
func nodeAt(root *Schema, choices *ChoiceSet, path string) (*Schema, bool) {
	if path == "" {
		return root, true
	}
	node := root
	prefix := ""
	for _, seg := range splitPath(path) {
		spec, ok := node.Field(seg)
		if !ok {
			return nil, false
		}
		p := joinPath(prefix, seg)
		chosen, ok := choices.Get(p)
		if !ok {
			return nil, false
		}
		name, ok := chosen.(string)
		if !ok {
			return nil, false
		}
		sub, ok := spec.Space.Option(name)
		if !ok {
			return nil, false
		}
		node = sub
		prefix = p
	}
	return node, true
}

// resolveSpec returns the FieldSpec governing path: the last segment looked up
// in the subtree the leading segments resolve to. The empty path names the
// root, which is not a field, so it never resolves.
func resolveSpec(root *Schema, choices *ChoiceSet, path string) (FieldSpec, bool) {
	if path == "" {
		return FieldSpec{}, false
	}
	prefix, name := "", path
	if i := strings.LastIndex(path, pathSep); i >= 0 {
		prefix, name = path[:i], path[i+1:]
	}
	node, ok := nodeAt(root, choices, prefix)
	if !ok {
		return FieldSpec{}, false
	}
	return node.Field(name)
}
