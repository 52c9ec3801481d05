package schemahcl_test

import (
	"testing"

	persona "github.com/Krustal/persona"
	"github.com/Krustal/persona/schemahcl"
)

const characterHCL = `
field "name" {
  type     = "string"
  required = true
}

field "class" {
  required = true
  option "warrior" {}
  option "mage" {
    field "spell" {
      type     = "string"
      required = true
    }
  }
}

field "age" {
  type = "number"
}
`

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDecodeSchema_BlockOrderBecomesDeclarationOrder(t *testing.T) {
	s, err := schemahcl.DecodeSchema([]byte(characterHCL), "character.hcl")
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	if got := s.FieldNames(); !equalStrings(got, []string{"name", "class", "age"}) {
		t.Fatalf("expected [name class age], got %v", got)
	}

	class, _ := s.Field("class")
	if !class.Required || class.Space.IsLiteral() {
		t.Fatalf("unexpected class spec %+v", class)
	}
	if got := class.Space.OptionNames(); !equalStrings(got, []string{"warrior", "mage"}) {
		t.Fatalf("expected [warrior mage], got %v", got)
	}
	mage, _ := class.Space.Option("mage")
	spell, ok := mage.Field("spell")
	if !ok || spell.Space.Kind() != persona.KindString || !spell.Required {
		t.Fatalf("unexpected spell spec %+v (ok=%v)", spell, ok)
	}

	b, err := persona.New(s, persona.Choice{Path: "class", Value: "mage"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := b.Missing(); !equalStrings(got, []string{"name", "age", "class.spell"}) {
		t.Fatalf("expected missing [name age class.spell], got %v", got)
	}
}

func TestDecodeSchema_FieldNeedsTypeOrOptions(t *testing.T) {
	_, err := schemahcl.DecodeSchema([]byte(`
field "a" {
  type = "string"
  option "x" {}
}
`), "bad.hcl")
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "a" || iss[0].Code != persona.CodeSchemaInvalid {
		t.Fatalf("expected schema_invalid at a, got %v", err)
	}

	_, err = schemahcl.DecodeSchema([]byte(`
field "a" {
  required = true
}
`), "bad.hcl")
	if _, ok := persona.AsIssues(err); !ok {
		t.Fatalf("expected issues for bare field, got %v", err)
	}
}

func TestDecodeSchema_UnknownTypeAndSyntaxErrors(t *testing.T) {
	_, err := schemahcl.DecodeSchema([]byte(`
field "a" {
  type = "boolean"
}
`), "bad.hcl")
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != persona.CodeSchemaInvalid {
		t.Fatalf("expected schema_invalid for unknown type, got %v", err)
	}

	_, err = schemahcl.DecodeSchema([]byte(`field "a" {`), "bad.hcl")
	iss, ok = persona.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != persona.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestDecodeChoices_ObjectEntryOrder(t *testing.T) {
	choices, err := schemahcl.DecodeChoices([]byte(`
choices = {
  class         = "mage"
  "class.spell" = "fireball"
  age           = 30
}
`), "choices.hcl")
	if err != nil {
		t.Fatalf("DecodeChoices: %v", err)
	}
	if len(choices) != 3 {
		t.Fatalf("expected 3 choices, got %v", choices)
	}
	if choices[0].Path != "class" || choices[1].Path != "class.spell" || choices[2].Path != "age" {
		t.Fatalf("entry order lost: %v", choices)
	}
	if choices[2].Value != float64(30) {
		t.Fatalf("numbers convert to float64, got %T", choices[2].Value)
	}
}

func TestDecodeChoices_EmptyFile(t *testing.T) {
	choices, err := schemahcl.DecodeChoices(nil, "empty.hcl")
	if err != nil {
		t.Fatalf("DecodeChoices: %v", err)
	}
	if len(choices) != 0 {
		t.Fatalf("expected no choices, got %v", choices)
	}
}

func TestDecodeChoices_Rejections(t *testing.T) {
	_, err := schemahcl.DecodeChoices([]byte(`other = {}`), "bad.hcl")
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != persona.CodeUnknownKey {
		t.Fatalf("expected unknown_key for stray attribute, got %v", err)
	}

	_, err = schemahcl.DecodeChoices([]byte(`choices = { a = true }`), "bad.hcl")
	if _, ok := persona.AsIssues(err); !ok {
		t.Fatalf("expected issues for boolean value, got %v", err)
	}

	_, err = schemahcl.DecodeChoices([]byte(`choices = { a = null }`), "bad.hcl")
	if _, ok := persona.AsIssues(err); !ok {
		t.Fatalf("expected issues for null value, got %v", err)
	}

	_, err = schemahcl.DecodeChoices([]byte("block \"x\" {}\n"), "bad.hcl")
	iss, ok = persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != persona.CodeUnknownKey {
		t.Fatalf("expected unknown_key for stray block, got %v", err)
	}
}
