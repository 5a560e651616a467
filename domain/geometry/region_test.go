package geometry

import "testing"

func TestRegularize_MirroredDrag(t *testing.T) {
	r := Region{X: 10, Y: 10, Width: 40, Height: -5}
	got := r.Regularize()
	want := Region{X: 10, Y: 5, Width: 40, Height: 5}
	if got != want {
		t.Fatalf("regularize mismatch: got %+v want %+v", got, want)
	}
}

func TestRegularize_Idempotent(t *testing.T) {
	cases := []Region{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 10, Y: 10, Width: -10, Height: -10},
		{X: -3, Y: 7, Width: 0, Height: -2},
		{X: 1.5, Y: 2.5, Width: -0.5, Height: 4},
	}
	for _, r := range cases {
		once := r.Regularize()
		twice := once.Regularize()
		if once != twice {
			t.Fatalf("regularize not idempotent for %+v: %+v != %+v", r, once, twice)
		}
		if once.Width < 0 || once.Height < 0 {
			t.Fatalf("regularize left negative dimension: %+v", once)
		}
		if once.Area() < 0 {
			t.Fatalf("regularized area negative: %+v", once)
		}
	}
}

func TestRegularize_PreservesValidity(t *testing.T) {
	cases := []Region{
		{Width: 10, Height: 10},
		{Width: -10, Height: 3},
		{Width: 0, Height: 5},
		{Width: 5, Height: 0},
		{},
	}
	for _, r := range cases {
		if r.Regularize().IsValid() != r.IsValid() {
			t.Fatalf("validity changed by regularize for %+v", r)
		}
	}
}

func TestIsValid_ZeroDimension(t *testing.T) {
	if (Region{Width: 0, Height: 100}).IsValid() {
		t.Fatal("zero-width region must be invalid")
	}
	if (Region{Width: 100, Height: 0}).IsValid() {
		t.Fatal("zero-height region must be invalid")
	}
	if !(Region{Width: 0.1, Height: -0.1}).IsValid() {
		t.Fatal("nonzero dimensions must be valid even when negative")
	}
}

func TestArea(t *testing.T) {
	r := Region{Width: 4, Height: -3}
	if r.Area() != -12 {
		t.Fatalf("area on raw drag rect: got %v want -12", r.Area())
	}
	if r.Regularize().Area() != 12 {
		t.Fatalf("area after regularize: got %v want 12", r.Regularize().Area())
	}
}

func TestEqualTo_MirrorInvariance(t *testing.T) {
	a := &Region{X: 0, Y: 0, Width: 10, Height: 10}
	b := &Region{X: 10, Y: 10, Width: -10, Height: -10}
	if !a.EqualTo(b) || !b.EqualTo(a) {
		t.Fatal("mirrored drags over the same extent must compare equal")
	}
	if !a.EqualTo(a) {
		t.Fatal("EqualTo must be reflexive")
	}
	c := &Region{X: 1, Y: 0, Width: 10, Height: 10}
	if a.EqualTo(c) {
		t.Fatal("shifted region must not compare equal")
	}
}

func TestEqual_NilSafety(t *testing.T) {
	if !Equal(nil, nil) {
		t.Fatal("Equal(nil, nil) must be true")
	}
	r := &Region{Width: 1, Height: 1}
	if Equal(r, nil) || Equal(nil, r) {
		t.Fatal("Equal with a single nil must be false")
	}
	if !Equal(r, r) {
		t.Fatal("Equal must be reflexive")
	}
}
