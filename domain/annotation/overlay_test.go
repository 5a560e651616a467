package annotation

import (
	"strings"
	"testing"

	"rihana-annotator/domain/geometry"
	"rihana-annotator/domain/sign"
)

func mkSign(id, code string, r geometry.Region) sign.Sign {
	return sign.Sign{ID: id, Type: sign.TypeByCode(code), Location: r, Render: true}
}

func overlaysOf(list []Overlay, kind OverlayKind) []Overlay {
	var out []Overlay
	for _, o := range list {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func TestBuildOverlays_SkipsHiddenSigns(t *testing.T) {
	signs := []sign.Sign{
		mkSign("CAR0", sign.CodeCardiomegaly, geometry.Region{X: 10, Y: 10, Width: 100, Height: 100}),
		{ID: "NOD0", Type: sign.TypeByCode(sign.CodeNodule), Location: geometry.Region{Width: 50, Height: 50}, Render: false},
	}
	list := BuildOverlays(signs, OverlayOptions{Scale: 1, CanvasW: 500, CanvasH: 500})
	for _, o := range list {
		if o.SignID == "NOD0" {
			t.Fatalf("hidden sign produced overlay %+v", o)
		}
	}
	if len(overlaysOf(list, KindOutline)) != 1 {
		t.Fatalf("expected one outline, got %d", len(overlaysOf(list, KindOutline)))
	}
}

func TestBuildOverlays_OutlineUsesScaledRegularizedRect(t *testing.T) {
	// Mirrored drag stored unregularized; overlay must still be canonical.
	signs := []sign.Sign{mkSign("CAR0", sign.CodeCardiomegaly, geometry.Region{X: 110, Y: 110, Width: -100, Height: -100})}
	list := BuildOverlays(signs, OverlayOptions{Scale: 0.5, CanvasW: 500, CanvasH: 500})
	outlines := overlaysOf(list, KindOutline)
	if len(outlines) != 1 {
		t.Fatalf("expected one outline, got %d", len(outlines))
	}
	want := geometry.Region{X: 5, Y: 5, Width: 50, Height: 50}
	if outlines[0].Rect != want {
		t.Fatalf("outline rect mismatch: got %+v want %+v", outlines[0].Rect, want)
	}
	if outlines[0].Fill != sign.ColorFor(sign.CodeCardiomegaly, false) {
		t.Fatal("outline must use the type's primary color")
	}
}

func TestBuildOverlays_LabelChipPlacementBelow(t *testing.T) {
	signs := []sign.Sign{mkSign("CAR0", sign.CodeCardiomegaly, geometry.Region{X: 10, Y: 10, Width: 100, Height: 100})}
	list := BuildOverlays(signs, OverlayOptions{Scale: 1, CanvasW: 500, CanvasH: 500})
	labels := overlaysOf(list, KindLabel)
	if len(labels) != 1 {
		t.Fatalf("expected one label, got %d", len(labels))
	}
	chip := labels[0]
	if chip.Text != "CAR0" {
		t.Fatalf("chip text mismatch: %q", chip.Text)
	}
	if chip.Rect.Y <= 110 {
		t.Fatalf("chip must sit below the rectangle, got y=%v", chip.Rect.Y)
	}
	// Rect wider than the text: chip adopts the rect width and x.
	if chip.Rect.Width != 100 || chip.Rect.X != 10 {
		t.Fatalf("chip must widen to the rect: %+v", chip.Rect)
	}
	if chip.Fill != sign.ColorFor(sign.CodeCardiomegaly, false) || chip.TextColor != sign.ColorFor(sign.CodeCardiomegaly, true) {
		t.Fatal("chip colors must come from the type palette")
	}
}

func TestBuildOverlays_LabelChipPushedInsideNearBottomEdge(t *testing.T) {
	signs := []sign.Sign{mkSign("CAR0", sign.CodeCardiomegaly, geometry.Region{X: 10, Y: 380, Width: 100, Height: 100})}
	list := BuildOverlays(signs, OverlayOptions{Scale: 1, CanvasW: 500, CanvasH: 490})
	chip := overlaysOf(list, KindLabel)[0]
	if chip.Rect.Y+chip.Rect.Height > 490 {
		t.Fatalf("chip off-canvas: %+v", chip.Rect)
	}
	if chip.Rect.Y >= 480 {
		t.Fatalf("chip must be pushed inside the rectangle, got y=%v", chip.Rect.Y)
	}
}

func TestBuildOverlays_NarrowRectCentersWiderChip(t *testing.T) {
	signs := []sign.Sign{mkSign("CAR10", sign.CodeCardiomegaly, geometry.Region{X: 100, Y: 10, Width: 10, Height: 100})}
	list := BuildOverlays(signs, OverlayOptions{Scale: 1, CanvasW: 500, CanvasH: 500})
	chip := overlaysOf(list, KindLabel)[0]
	if chip.Rect.Width <= 10 {
		t.Fatalf("chip must be wider than the 10px rect, got %v", chip.Rect.Width)
	}
	// Centered: overhang split evenly on both sides.
	left := 100 - chip.Rect.X
	right := (chip.Rect.X + chip.Rect.Width) - 110
	if left <= 0 || right <= 0 || left != right {
		t.Fatalf("chip not centered on the rect: left=%v right=%v", left, right)
	}
}

func TestBuildOverlays_HoverZoneThresholds(t *testing.T) {
	cases := []struct {
		name        string
		w, h        float64
		wantZone    bool
		wantPopover bool
	}{
		{"large landscape", 61, 31, true, true},
		{"large portrait", 31, 61, true, true},
		{"medium", 40, 40, true, false},
		{"just above delete threshold", 26, 26, true, false},
		{"small", 20, 20, false, false},
		{"thin but long", 100, 10, false, false},
	}
	for _, tc := range cases {
		signs := []sign.Sign{mkSign("CAR0", sign.CodeCardiomegaly, geometry.Region{X: 1, Y: 1, Width: tc.w, Height: tc.h})}
		list := BuildOverlays(signs, OverlayOptions{Scale: 1, CanvasW: 500, CanvasH: 500})
		zones := overlaysOf(list, KindHoverZone)
		if tc.wantZone != (len(zones) == 1) {
			t.Fatalf("%s: zone presence mismatch (got %d zones)", tc.name, len(zones))
		}
		if !tc.wantZone {
			continue
		}
		if !zones[0].Delete {
			t.Fatalf("%s: hover zone must expose delete", tc.name)
		}
		if tc.wantPopover != (zones[0].Popover != "") {
			t.Fatalf("%s: popover mismatch: %q", tc.name, zones[0].Popover)
		}
	}
}

func TestBuildOverlays_ThresholdsUseScaledDimensions(t *testing.T) {
	// 200x200 image px at scale 0.1 is 20x20 on screen: too small to interact.
	signs := []sign.Sign{mkSign("CAR0", sign.CodeCardiomegaly, geometry.Region{Width: 200, Height: 200})}
	list := BuildOverlays(signs, OverlayOptions{Scale: 0.1, CanvasW: 500, CanvasH: 500})
	if len(overlaysOf(list, KindHoverZone)) != 0 {
		t.Fatal("thresholds must apply to scaled dimensions")
	}
}

func TestBuildOverlays_PopoverUsesPhysicalUnits(t *testing.T) {
	signs := []sign.Sign{mkSign("CAR0", sign.CodeCardiomegaly, geometry.Region{X: 10, Y: 20, Width: 100, Height: 100})}
	toMM := func(px float64) float64 { return px * 0.5 }
	list := BuildOverlays(signs, OverlayOptions{Scale: 1, CanvasW: 500, CanvasH: 500, PixelsToPhysical: toMM})
	zone := overlaysOf(list, KindHoverZone)[0]
	if !strings.Contains(zone.Popover, "area: 2500.0 mm²") {
		t.Fatalf("popover area not converted: %q", zone.Popover)
	}
	if !strings.Contains(zone.Popover, "width: 50.0") || !strings.Contains(zone.Popover, "x: 5.0") {
		t.Fatalf("popover fields not converted: %q", zone.Popover)
	}
}
