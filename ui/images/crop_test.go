package images

import (
	"image"
	"testing"
)

func TestCropRegion_WithinBounds(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	crop, rect, err := CropRegion(frame, image.Rect(30, 30, 70, 70))
	if err != nil || crop == nil {
		t.Fatalf("expected crop, got err=%v", err)
	}
	if rect.Dx() != 40 || rect.Dy() != 40 {
		t.Fatalf("expected 40x40, got %dx%d", rect.Dx(), rect.Dy())
	}
	if crop.Bounds().Dx() != 40 || crop.Bounds().Dy() != 40 {
		t.Fatalf("crop bounds mismatch: %v", crop.Bounds())
	}
}

func TestCropRegion_ClampsToFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 20, 20))
	_, rect, err := CropRegion(frame, image.Rect(-5, -5, 10, 10))
	if err != nil {
		t.Fatalf("crop error: %v", err)
	}
	if rect.Min.X != 0 || rect.Min.Y != 0 {
		t.Fatalf("expected clamp to origin, got %v", rect.Min)
	}
	if rect.Max.X > 20 || rect.Max.Y > 20 {
		t.Fatalf("rect exceeds frame bounds: %v", rect)
	}
}

func TestCropRegion_DegenerateRectYieldsMinimumCrop(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	crop, rect, err := CropRegion(frame, image.Rect(50, 50, 50, 50))
	if err != nil || crop == nil {
		t.Fatalf("expected 1x1 fallback, err=%v", err)
	}
	if rect.Dx() != 1 || rect.Dy() != 1 {
		t.Fatalf("expected 1x1, got %dx%d", rect.Dx(), rect.Dy())
	}
}

func TestCropRegion_NilFrame(t *testing.T) {
	if _, _, err := CropRegion(nil, image.Rect(0, 0, 1, 1)); err == nil {
		t.Fatal("nil frame must error")
	}
}
