package dsl

import (
	persona "github.com/Krustal/persona"
)

// Space is an option space under construction. Definition errors (for example
// duplicate option names) are carried inside and surface from Build, so call
// chains stay flat.
type Space struct {
	space persona.OptionSpace
	iss   persona.Issues
}

// String returns the free-form string space.
func String() Space { return Space{space: persona.Literal(persona.KindString)} }

// Number returns the free-form numeric space.
func Number() Space { return Space{space: persona.Literal(persona.KindNumber)} }

// OptionVariant defines a named option for an enumerated space.
type OptionVariant struct {
	name string
	node *persona.Schema
}

// Variant constructs an OptionVariant. A nil subtree means the option has no
// follow-up fields.
func Variant(name string, node *persona.Schema) OptionVariant {
	return OptionVariant{name: name, node: node}
}

// OneOf returns the enumerated space accepting exactly the given variants, in
// order.
func OneOf(vars ...OptionVariant) Space {
	vs := make([]persona.Variant, 0, len(vars))
	for _, v := range vars {
		vs = append(vs, persona.Variant{Name: v.name, Node: v.node})
	}
	space, err := persona.Enum(vs...)
	if err != nil {
		iss, _ := persona.AsIssues(err)
		return Space{iss: iss}
	}
	return Space{space: space}
}
