package board

import "testing"

func TestBuiltinLoadsEveryClip(t *testing.T) {
	reg, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	if reg.Len() != len(builtinEntries) {
		t.Fatalf("expected %d clips, got %d", len(builtinEntries), reg.Len())
	}
	for i := 0; i < reg.Len(); i++ {
		c := reg.At(i)
		if c.Trigger == "" || c.Label == "" {
			t.Fatalf("clip %d has empty trigger or label: %+v", i, c)
		}
		if len(c.Data) == 0 {
			t.Fatalf("clip %q has no audio data", c.Label)
		}
		// All builtin assets are WAV files.
		if string(c.Data[:4]) != "RIFF" {
			t.Fatalf("clip %q does not start with a RIFF header, got=%q", c.Label, c.Data[:4])
		}
	}
}

func TestMatchReturnsEveryBoundClip(t *testing.T) {
	reg := NewRegistry([]Clip{
		{Trigger: "a", Label: "first", Data: []byte{1}},
		{Trigger: "b", Label: "second", Data: []byte{2}},
		{Trigger: "a", Label: "third", Data: []byte{3}},
	})

	got := reg.Match("a")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for duplicate trigger, got %d", len(got))
	}
	if got[0].Label != "first" || got[1].Label != "third" {
		t.Fatalf("matches out of board order: %q, %q", got[0].Label, got[1].Label)
	}
	if len(reg.Match("z")) != 0 {
		t.Fatalf("expected no matches for unbound trigger")
	}
}

func TestFindReturnsFirstMatch(t *testing.T) {
	reg := NewRegistry([]Clip{
		{Trigger: "x", Label: "one", Data: []byte{1}},
		{Trigger: "x", Label: "two", Data: []byte{2}},
	})

	c, ok := reg.Find("x")
	if !ok || c.Label != "one" {
		t.Fatalf("Find(x) = %+v, %v; want first bound clip", c, ok)
	}
	if _, ok := reg.Find("q"); ok {
		t.Fatalf("Find(q) should report no match")
	}
}

func TestRegistryCopiesInput(t *testing.T) {
	in := []Clip{{Trigger: "a", Label: "one", Data: []byte{1}}}
	reg := NewRegistry(in)
	in[0] = Clip{Trigger: "z", Label: "mutated"}
	if reg.At(0).Trigger != "a" {
		t.Fatalf("registry aliases caller slice; got trigger %q", reg.At(0).Trigger)
	}
}
