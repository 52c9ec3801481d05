package persona

import (
	"fmt"
	"strings"
)

// Kind identifies a family of free-form primitive values a literal field
// accepts. Kinds are compared by identity; two fields of the same Kind accept
// the same values.
type Kind uint8

const (
	// KindInvalid is the zero Kind. No value belongs to it.
	KindInvalid Kind = iota
	// KindString accepts any Go string.
	KindString
	// KindNumber accepts any Go numeric value (integer or floating point).
	KindNumber
)

// String returns the lowercase name used in reason texts ("string", "number").
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "invalid"
	}
}

// Predicate is an additional acceptance test attached to a field. It runs
// after the structural check and must be pure; returning false rejects the
// value without a reason text.
type Predicate func(value any) bool

// OptionSpace describes what may be assigned to a field: either free-form
// values of one literal Kind, or exactly one of an enumerated set of named
// options, where each option opens its own subtree of follow-up fields.
//
// The zero OptionSpace is invalid and accepts nothing.
type OptionSpace struct {
	kind     Kind
	names    []string
	variants map[string]*Schema
}

// Literal returns the option space accepting free-form values of kind k.
func Literal(k Kind) OptionSpace {
	return OptionSpace{kind: k}
}

// Enum returns the option space accepting exactly the named variants, in the
// given order. A nil variant subtree means the option has no follow-up fields.
// Empty and duplicate variant names are rejected.
func Enum(variants ...Variant) (OptionSpace, error) {
	var iss Issues
	names := make([]string, 0, len(variants))
	nodes := make(map[string]*Schema, len(variants))
	for _, v := range variants {
		if v.Name == "" {
			iss = AppendIssues(iss, Issue{Code: CodeSchemaInvalid, Message: "empty option name"})
			continue
		}
		if _, dup := nodes[v.Name]; dup {
			iss = AppendIssues(iss, Issue{Code: CodeSchemaInvalid, Message: fmt.Sprintf("duplicate option %q", v.Name)})
			continue
		}
		node := v.Node
		if node == nil {
			node = &Schema{}
		}
		names = append(names, v.Name)
		nodes[v.Name] = node
	}
	if len(iss) > 0 {
		return OptionSpace{}, iss
	}
	return OptionSpace{names: names, variants: nodes}, nil
}

// MustEnum is like Enum but panics on definition errors. Intended for
// package-level schema literals.
func MustEnum(variants ...Variant) OptionSpace {
	o, err := Enum(variants...)
	if err != nil {
		panic(err)
	}
	return o
}

// IsZero reports whether o is the invalid zero space.
func (o OptionSpace) IsZero() bool {
	return o.kind == KindInvalid && o.variants == nil
}

// IsLiteral reports whether o accepts free-form values of a single kind.
func (o OptionSpace) IsLiteral() bool { return o.kind != KindInvalid }

// Kind returns the literal kind, or KindInvalid for enumerated spaces.
func (o OptionSpace) Kind() Kind { return o.kind }

// OptionNames returns the variant names in declaration order. The result is a
// copy; callers may retain or mutate it. Literal spaces return nil.
func (o OptionSpace) OptionNames() []string {
	if len(o.names) == 0 {
		return nil
	}
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// Option returns the follow-up subtree for the named variant. The second
// result is false when the space is literal or the name is not a variant.
func (o OptionSpace) Option(name string) (*Schema, bool) {
	s, ok := o.variants[name]
	return s, ok
}

func (o OptionSpace) hasOption(name string) bool {
	_, ok := o.variants[name]
	return ok
}

// oneOfReason renders the enumerated rejection reason, e.g.
// "must be one of [warrior, mage]".
func (o OptionSpace) oneOfReason() string {
	return "must be one of [" + strings.Join(o.names, ", ") + "]"
}

// Variant names one enumerated option and the subtree of follow-up fields it
// opens. A nil Node means the option has no follow-up fields.
type Variant struct {
	Name string
	Node *Schema
}

// FieldSpec describes a single field: the space of acceptable values, whether
// the field is advertised as required, and an optional extra predicate.
type FieldSpec struct {
	Space    OptionSpace
	Required bool
	Check    Predicate
}

// Field pairs a name with its spec. It is the ordered input unit for
// NewSchema; declaration order is the order fields are later enumerated in.
type Field struct {
	Name string
	Spec FieldSpec
}

// Schema is an immutable tree of field definitions. The zero value (and nil)
// is the empty schema. Schemas are safe for concurrent use and are never
// mutated after construction.
type Schema struct {
	fields map[string]FieldSpec
	order  []string
}

// NewSchema builds a schema from fields in declaration order. Field names must
// be unique, non-empty, and must not contain the path separator ".". Each
// field needs a non-zero option space. All definition errors are reported
// together as Issues.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make(map[string]FieldSpec, len(fields)),
		order:  make([]string, 0, len(fields)),
	}
	var iss Issues
	for _, f := range fields {
		switch {
		case f.Name == "":
			iss = AppendIssues(iss, Issue{Code: CodeSchemaInvalid, Message: "empty field name"})
			continue
		case strings.Contains(f.Name, pathSep):
			iss = AppendIssues(iss, Issue{Path: f.Name, Code: CodeSchemaInvalid, Message: "field name must not contain '.'"})
			continue
		}
		if _, dup := s.fields[f.Name]; dup {
			iss = AppendIssues(iss, Issue{Path: f.Name, Code: CodeSchemaInvalid, Message: "duplicate field"})
			continue
		}
		if f.Spec.Space.IsZero() {
			iss = AppendIssues(iss, Issue{Path: f.Name, Code: CodeSchemaInvalid, Message: "field has no option space"})
			continue
		}
		s.fields[f.Name] = f.Spec
		s.order = append(s.order, f.Name)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on definition errors. Intended for
// package-level schema literals and tests.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Field returns the spec for a direct field of this node.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	if s == nil {
		return FieldSpec{}, false
	}
	spec, ok := s.fields[name]
	return spec, ok
}

// FieldNames returns the direct field names in declaration order. The result
// is a copy; callers may retain or mutate it.
func (s *Schema) FieldNames() []string {
	if s == nil || len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of direct fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
