package persona

// Builder is one immutable step of a guided configuration session: a schema
// plus the choices recorded so far. Choose returns a new Builder and leaves
// the receiver intact, so older builders stay valid branch points for
// exploring alternatives. Builders are safe for concurrent use.
type Builder struct {
	schema  *Schema
	choices *ChoiceSet
}

// New starts a session over schema, optionally replaying initial choices in
// the given order. Each pair is validated exactly as Choose would validate it,
// against the choices accepted before it, so ancestors must precede the fields
// they reveal. The first rejected pair aborts construction.
func New(schema *Schema, initial ...Choice) (*Builder, error) {
	if schema == nil {
		return nil, Issues{{Code: CodeSchemaInvalid, Message: "nil schema"}}
	}
	b := &Builder{schema: schema}
	for _, c := range initial {
		next, err := b.Choose(c.Path, c.Value)
		if err != nil {
			return nil, err
		}
		b = next
	}
	return b, nil
}

// Schema returns the schema this builder was started with.
func (b *Builder) Schema() *Schema { return b.schema }

// Choices returns the immutable set of choices recorded so far.
func (b *Builder) Choices() *ChoiceSet { return b.choices }

// Choose records value at path and returns the resulting builder. The
// receiver is unchanged. The error is Issues carrying a single invalid_field
// issue when path names nothing currently choosable, or a single
// invalid_choice issue when the value does not fit the field.
//
// A literal field may be chosen again to overwrite its value. An enumerated
// field may not: once chosen it is replaced by its subtree and stops being
// choosable. To revisit it, branch from a builder that predates the choice.
func (b *Builder) Choose(path string, value any) (*Builder, error) {
	if err := checkChoice(b.schema, b.choices, path, value); err != nil {
		return nil, err
	}
	return &Builder{schema: b.schema, choices: b.choices.with(path, value)}, nil
}

// Get returns the value recorded at path. The second result is false when
// nothing has been chosen there. Get never errors; an unknown path simply
// holds no value.
func (b *Builder) Get(path string) (any, bool) {
	return b.choices.Get(path)
}

// Options returns the option space governing path under the current choices.
// The second result is false when the path does not resolve, including when
// the fields on its way have not been chosen yet. Inspecting an option space
// is how a caller discovers what Choose would accept.
func (b *Builder) Options(path string) (OptionSpace, bool) {
	spec, ok := resolveSpec(b.schema, b.choices, path)
	if !ok {
		return OptionSpace{}, false
	}
	return spec.Space, true
}

// Requires returns the names of the root fields declared required, in
// declaration order. It reflects the schema only; recorded choices do not
// change it. Deeper levels are not consulted.
func (b *Builder) Requires() []string {
	var out []string
	for _, name := range b.schema.FieldNames() {
		if spec, _ := b.schema.Field(name); spec.Required {
			out = append(out, name)
		}
	}
	return out
}

// Fields returns every currently choosable path in schema declaration order,
// depth first. Choosing an option on an enumerated field replaces that field
// with the option's subtree in later calls.
func (b *Builder) Fields() []string {
	return enumerateFields(b.schema, b.choices)
}

// Missing returns every reachable path without a recorded choice, in
// breadth-first order. The required flag is not consulted; this reports what
// is unanswered, whether or not it is mandatory.
func (b *Builder) Missing() []string {
	return missingFields(b.schema, b.choices)
}
