package dsl

import (
	persona "github.com/Krustal/persona"
	"github.com/Krustal/persona/i18n"
)

type objectBuilder struct {
	fields   []persona.Field
	index    map[string]int
	required map[string]struct{}
	iss      persona.Issues
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new schema builder. Fields keep the order they are
// declared in.
func Object() *objectBuilder {
	return &objectBuilder{
		index:    map[string]int{},
		required: map[string]struct{}{},
	}
}

// Field registers a field with its option space.
func (b *objectBuilder) Field(name string, sp Space) *fieldStep {
	if len(sp.iss) > 0 {
		for _, it := range sp.iss {
			it.Path = name
			b.iss = persona.AppendIssues(b.iss, it)
		}
	}
	if i, dup := b.index[name]; dup {
		b.fields[i].Spec.Space = sp.space
		return &fieldStep{b: b, name: name}
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, persona.Field{Name: name, Spec: persona.FieldSpec{Space: sp.space}})
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

// Check attaches an extra acceptance predicate to the field.
func (f *fieldStep) Check(fn persona.Predicate) *objectBuilder {
	if i, ok := f.b.index[f.name]; ok {
		f.b.fields[i].Spec.Check = fn
	}
	return f.b
}

func (f *fieldStep) Require(names ...string) *objectBuilder { return f.b.Require(names...) }
func (f *fieldStep) Field(name string, sp Space) *fieldStep { return f.b.Field(name, sp) }
func (f *fieldStep) Build() (*persona.Schema, error)        { return f.b.Build() }
func (f *fieldStep) MustBuild() *persona.Schema             { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// Build validates the builder and returns a Schema.
func (b *objectBuilder) Build() (*persona.Schema, error) {
	iss := b.iss
	for name := range b.required {
		if _, ok := b.index[name]; !ok {
			iss = persona.AppendIssues(iss, persona.Issue{
				Path:    name,
				Code:    persona.CodeSchemaInvalid,
				Message: i18n.T(persona.CodeSchemaInvalid, nil) + ": required field not declared",
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	fields := make([]persona.Field, len(b.fields))
	copy(fields, b.fields)
	for i := range fields {
		if _, ok := b.required[fields[i].Name]; ok {
			fields[i].Spec.Required = true
		}
	}
	return persona.NewSchema(fields...)
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *persona.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
