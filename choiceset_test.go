package persona_test

import (
	"testing"

	persona "github.com/Krustal/persona"
)

func TestChoiceSet_NilIsEmpty(t *testing.T) {
	var cs *persona.ChoiceSet
	if _, ok := cs.Get("name"); ok {
		t.Fatalf("nil set must hold nothing")
	}
	if cs.Has("name") {
		t.Fatalf("nil set must hold nothing")
	}
	if cs.Len() != 0 {
		t.Fatalf("expected Len 0, got %d", cs.Len())
	}
	if all := cs.All(); all != nil {
		t.Fatalf("expected nil All, got %v", all)
	}
}

func TestChoiceSet_NewestValueWinsFirstPositionKept(t *testing.T) {
	b, _ := persona.New(characterSchema(t))
	b1, _ := b.Choose("name", "Robin")
	b2, _ := b1.Choose("class", "warrior")
	b3, _ := b2.Choose("name", "Morgan")

	cs := b3.Choices()
	if v, ok := cs.Get("name"); !ok || v != "Morgan" {
		t.Fatalf("expected newest value Morgan, got %v (ok=%v)", v, ok)
	}
	if cs.Len() != 2 {
		t.Fatalf("expected 2 distinct paths, got %d", cs.Len())
	}
	all := cs.All()
	if len(all) != 2 || all[0].Path != "name" || all[0].Value != "Morgan" || all[1].Path != "class" {
		t.Fatalf("expected [name=Morgan class=warrior], got %v", all)
	}
}

func TestChoiceSet_AllReplaysThroughNew(t *testing.T) {
	b, _ := persona.New(characterSchema(t))
	b1, _ := b.Choose("class", "mage")
	b2, _ := b1.Choose("class.spell", "fireball")
	b3, _ := b2.Choose("name", "Robin")

	replayed, err := persona.New(characterSchema(t), b3.Choices().All()...)
	if err != nil {
		t.Fatalf("replay must succeed, got %v", err)
	}
	if v, _ := replayed.Get("class.spell"); v != "fireball" {
		t.Fatalf("expected fireball after replay, got %v", v)
	}
	if got := replayed.Missing(); len(got) != 0 {
		t.Fatalf("expected complete session after replay, got %v", got)
	}
}

func TestChoiceSet_SharedTailsStayIndependent(t *testing.T) {
	b, _ := persona.New(characterSchema(t))
	b1, _ := b.Choose("name", "Robin")
	mage, _ := b1.Choose("class", "mage")
	warrior, _ := b1.Choose("class", "warrior")

	if v, _ := mage.Get("class"); v != "mage" {
		t.Fatalf("mage branch corrupted: %v", v)
	}
	if v, _ := warrior.Get("class"); v != "warrior" {
		t.Fatalf("warrior branch corrupted: %v", v)
	}
	if _, ok := b1.Get("class"); ok {
		t.Fatalf("shared tail must not see branch writes")
	}
}
