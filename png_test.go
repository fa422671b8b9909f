package mathil

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	s := NewScreen(6, 4, Pt(-1, -1), Pt(1, 1), BabyBlue)
	s.Set(0, 0, Red)
	s.Set(5, 3, Amethyst)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("decoded bounds = %v, want 6x4", b)
	}
	// Image rows run top to bottom.
	if got := FromColor(img.At(0, 3)); got != Red {
		t.Errorf("image bottom-left = %v, want red", got)
	}
	if got := FromColor(img.At(5, 0)); got != Amethyst {
		t.Errorf("image top-right = %v, want amethyst", got)
	}
}

func TestLoadScreen(t *testing.T) {
	dir := t.TempDir()
	s := NewScreen(3, 2, Pt(0, 0), Pt(3, 2), Almond)
	s.Set(2, 1, MidnightBlue)

	for _, format := range []Format{FormatPNG, FormatBitmap} {
		t.Run(format.String(), func(t *testing.T) {
			if err := s.Write(dir, "still", format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			got, err := LoadScreen(filepath.Join(dir, "still."+format.Ext()), s.BottomLeft(), s.TopRight())
			if err != nil {
				t.Fatalf("LoadScreen() error = %v", err)
			}
			if !got.Equal(s) {
				t.Error("loaded screen differs from the written one")
			}
		})
	}
}

func TestLoadScreenMissing(t *testing.T) {
	if _, err := LoadScreen(filepath.Join(t.TempDir(), "nope.png"), Pt(0, 0), Pt(1, 1)); err == nil {
		t.Error("LoadScreen(missing) error = nil")
	}
}

func TestScreenImageView(t *testing.T) {
	s := NewScreen(2, 2, Pt(0, 0), Pt(1, 1), White)
	im := s.Image()
	im.Set(0, 0, Red) // top-left of the image
	if got := s.At(0, 1); got != Red {
		t.Errorf("At(0, 1) = %v, want red", got)
	}
	if got := FromColor(im.At(0, 0)); got != Red {
		t.Errorf("Image().At(0, 0) = %v, want red", got)
	}
}
