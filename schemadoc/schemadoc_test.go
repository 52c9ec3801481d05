package schemadoc_test

import (
	"strings"
	"testing"

	persona "github.com/Krustal/persona"
	"github.com/Krustal/persona/schemadoc"
)

const characterJSON = `{
  "fields": {
    "name":  {"type": "string", "required": true},
    "class": {
      "required": true,
      "options": {
        "warrior": {},
        "mage": {"fields": {"spell": {"type": "string", "required": true}}}
      }
    },
    "age": {"type": "number"}
  }
}`

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

func TestDecodeSchema_WalkthroughDocument(t *testing.T) {
	s, err := schemadoc.DecodeSchema([]byte(characterJSON))
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	if got := s.FieldNames(); !equalStrings(got, []string{"name", "class", "age"}) {
		t.Fatalf("expected document order [name class age], got %v", got)
	}

	name, _ := s.Field("name")
	if !name.Space.IsLiteral() || name.Space.Kind() != persona.KindString || !name.Required {
		t.Fatalf("unexpected name spec %+v", name)
	}
	age, _ := s.Field("age")
	if age.Space.Kind() != persona.KindNumber || age.Required {
		t.Fatalf("unexpected age spec %+v", age)
	}

	class, _ := s.Field("class")
	if got := class.Space.OptionNames(); !equalStrings(got, []string{"warrior", "mage"}) {
		t.Fatalf("expected options [warrior mage], got %v", got)
	}
	mage, _ := class.Space.Option("mage")
	if got := mage.FieldNames(); !equalStrings(got, []string{"spell"}) {
		t.Fatalf("expected mage subtree [spell], got %v", got)
	}

	b, err := persona.New(s, persona.Choice{Path: "class", Value: "mage"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := b.Missing(); !equalStrings(got, []string{"name", "age", "class.spell"}) {
		t.Fatalf("expected missing [name age class.spell], got %v", got)
	}
}

func TestDecodeSchema_EmptyObjectIsEmptySchema(t *testing.T) {
	s, err := schemadoc.DecodeSchema([]byte(`{}`))
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty schema, got %d fields", s.Len())
	}
}

func TestDecodeSchema_UnknownKey(t *testing.T) {
	_, err := schemadoc.DecodeSchema([]byte(`{"fields": {"a": {"type": "string", "color": "red"}}}`))
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != persona.CodeUnknownKey {
		t.Fatalf("expected unknown_key, got %v", err)
	}
	if iss[0].Path != "fields.a.color" {
		t.Fatalf("expected path fields.a.color, got %q", iss[0].Path)
	}
}

func TestDecodeSchema_IgnoreUnknownSkipsForeignKeys(t *testing.T) {
	doc := `{"fields": {"a": {"type": "string", "color": "red", "meta": {"x": [1, 2]}}}, "version": 3}`
	s, err := schemadoc.DecodeSchema([]byte(doc), schemadoc.DecodeOpt{IgnoreUnknown: true})
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	spec, ok := s.Field("a")
	if !ok || spec.Space.Kind() != persona.KindString {
		t.Fatalf("expected string field a, got %+v (ok=%v)", spec, ok)
	}
}

func TestDecodeSchema_MaxDepthCapsOptionNesting(t *testing.T) {
	doc := `{"fields": {"a": {"options": {"x": {"fields": {"b": {"options": {"y": {}}}}}}}}}`
	if _, err := schemadoc.DecodeSchema([]byte(doc), schemadoc.DecodeOpt{MaxDepth: 2}); err != nil {
		t.Fatalf("depth 2 must fit under MaxDepth 2, got %v", err)
	}
	_, err := schemadoc.DecodeSchema([]byte(doc), schemadoc.DecodeOpt{MaxDepth: 1})
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != persona.CodeSchemaInvalid {
		t.Fatalf("expected schema_invalid past MaxDepth, got %v", err)
	}
}

func TestDecodeSchema_TypeAndOptionsAreExclusive(t *testing.T) {
	_, err := schemadoc.DecodeSchema([]byte(`{"fields": {"a": {"type": "string", "options": {"x": {}}}}}`))
	if _, ok := persona.AsIssues(err); !ok {
		t.Fatalf("expected issues for type+options, got %v", err)
	}

	_, err = schemadoc.DecodeSchema([]byte(`{"fields": {"a": {"required": true}}}`))
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || !strings.Contains(iss[0].Message, "exactly one of") {
		t.Fatalf("expected exactly-one-of issue, got %v", err)
	}
}

func TestDecodeSchema_UnknownType(t *testing.T) {
	_, err := schemadoc.DecodeSchema([]byte(`{"fields": {"a": {"type": "boolean"}}}`))
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != persona.CodeSchemaInvalid {
		t.Fatalf("expected schema_invalid for unknown type, got %v", err)
	}
}

func TestDecodeSchema_DuplicateFieldRebasedPath(t *testing.T) {
	_, err := schemadoc.DecodeSchema([]byte(`{"fields": {"a": {"type": "string"}, "a": {"type": "number"}}}`))
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "fields.a" {
		t.Fatalf("expected duplicate issue at fields.a, got %v", err)
	}
}

func TestDecodeSchema_SyntaxAndTrailingData(t *testing.T) {
	if _, err := schemadoc.DecodeSchema([]byte(`{"fields":`)); err == nil {
		t.Fatalf("expected parse error for truncated input")
	}
	_, err := schemadoc.DecodeSchema([]byte(`{} trailing`))
	iss, ok := persona.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != persona.CodeParseError {
		t.Fatalf("expected parse_error for trailing data, got %v", err)
	}
}

func TestEncodeSchema_RoundTripsByteEqual(t *testing.T) {
	s, err := schemadoc.DecodeSchema([]byte(characterJSON))
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	first, err := schemadoc.EncodeSchema(s)
	if err != nil {
		t.Fatalf("EncodeSchema: %v", err)
	}
	reread, err := schemadoc.DecodeSchema(first)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	second, err := schemadoc.EncodeSchema(reread)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("encoding is not stable:\n%s\n%s", first, second)
	}
	if !strings.Contains(string(first), `"options":{"warrior":{},"mage":`) {
		t.Fatalf("option order lost: %s", first)
	}
}

func TestEncodeSchema_EmptySchema(t *testing.T) {
	out, err := schemadoc.EncodeSchema(nil)
	if err != nil {
		t.Fatalf("EncodeSchema: %v", err)
	}
	if string(out) != "{}" {
		t.Fatalf("expected {}, got %s", out)
	}
}
