package sign

import (
	"fmt"
	"testing"

	"rihana-annotator/domain/geometry"
)

func TestNextID_SequentialPerType(t *testing.T) {
	var signs []Sign
	for i := 0; i < 4; i++ {
		id := NextID(signs, CodeCardiomegaly)
		want := fmt.Sprintf("CAR%d", i)
		if id != want {
			t.Fatalf("id %d: got %q want %q", i, id, want)
		}
		signs = append(signs, Sign{ID: id, Type: TypeByCode(CodeCardiomegaly), Render: true})
	}
	// A different type starts its own sequence.
	if id := NextID(signs, CodeNodule); id != "NOD0" {
		t.Fatalf("cross-type ordinal leak: got %q", id)
	}
}

func TestNextID_NoCompactionAfterDelete(t *testing.T) {
	signs := []Sign{
		{ID: "CAR0", Type: TypeByCode(CodeCardiomegaly)},
		{ID: "CAR1", Type: TypeByCode(CodeCardiomegaly)},
	}
	// Delete CAR0; ordinal is the current count, so the next id is CAR1's
	// successor only by count, which reuses "CAR1".
	signs = signs[1:]
	if id := NextID(signs, CodeCardiomegaly); id != "CAR1" {
		t.Fatalf("ordinal must equal current count: got %q", id)
	}
}

func TestNextID_UntypedStubsCountAsNoFinding(t *testing.T) {
	signs := []Sign{{ID: "NOF0", Location: geometry.Region{Width: 1, Height: 1}}}
	if id := NextID(signs, CodeNoFinding); id != "NOF1" {
		t.Fatalf("untyped stub not counted: got %q", id)
	}
}

func TestColorFor_KnownAndFallback(t *testing.T) {
	for _, code := range typeOrder {
		p := ColorFor(code, false)
		s := ColorFor(code, true)
		if p == s {
			t.Fatalf("%s: primary and secondary must differ", code)
		}
		if p.A != 0xff || s.A != 0xff {
			t.Fatalf("%s: colors must be opaque", code)
		}
	}
	def := ColorFor("", false)
	if def != ColorFor("BOGUS", false) {
		t.Fatal("unknown codes must share the fallback color")
	}
	if def == ColorFor(CodeCardiomegaly, false) {
		t.Fatal("fallback must not collide with a real type color")
	}
}

func TestTypeByCode_Fallback(t *testing.T) {
	if got := TypeByCode("nope"); got == nil || got.Code != CodeNoFinding {
		t.Fatalf("unknown code should resolve to no-finding, got %+v", got)
	}
	if got := TypeByCode(" car "); got.Code != CodeCardiomegaly {
		t.Fatalf("lookup should normalize case/space, got %+v", got)
	}
}
