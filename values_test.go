package persona_test

import (
	"testing"

	persona "github.com/Krustal/persona"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		in   any
		want persona.Kind
	}{
		{"hi", persona.KindString},
		{"", persona.KindString},
		{3.14, persona.KindNumber},
		{float32(1), persona.KindNumber},
		{42, persona.KindNumber},
		{int64(-1), persona.KindNumber},
		{uint8(7), persona.KindNumber},
		{true, persona.KindInvalid},
		{nil, persona.KindInvalid},
		{[]string{"x"}, persona.KindInvalid},
		{map[string]any{}, persona.KindInvalid},
	}
	for _, c := range cases {
		if got := persona.KindOf(c.in); got != c.want {
			t.Fatalf("KindOf(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAsNumber(t *testing.T) {
	if f, ok := persona.AsNumber(42); !ok || f != 42 {
		t.Fatalf("expected 42, got %v (ok=%v)", f, ok)
	}
	if f, ok := persona.AsNumber(2.5); !ok || f != 2.5 {
		t.Fatalf("expected 2.5, got %v (ok=%v)", f, ok)
	}
	if f, ok := persona.AsNumber(uint64(9)); !ok || f != 9 {
		t.Fatalf("expected 9, got %v (ok=%v)", f, ok)
	}
	if _, ok := persona.AsNumber("9"); ok {
		t.Fatalf("strings are not numbers")
	}
	if _, ok := persona.AsNumber(nil); ok {
		t.Fatalf("nil is not a number")
	}
}
