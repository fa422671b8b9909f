package mathil

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Label is a line of text anchored in the plane. The anchor is the left end
// of the text's baseline.
type Label struct {
	Text   string
	Anchor Point
}

// LabelSettings controls how a Label is drawn. Size is the font size; a
// relative size is measured in plane units like any other thickness.
type LabelSettings struct {
	Color Color
	Size  Thickness
}

// Draw renders the label in the Go Regular typeface, antialiased over the
// existing pixels. Text falling outside the screen is clipped.
//
// The text is NFC-normalised first: glyphs are looked up per rune, so a
// letter followed by a combining mark would otherwise draw as two glyphs.
func (l Label) Draw(s *Screen, settings LabelSettings) {
	size := settings.Size.Pixels(s)
	if size <= 0 || l.Text == "" {
		return
	}

	f, err := goRegular()
	if err != nil {
		Logger().Warn("mathil: parse label font", "err", err)
		return
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		Logger().Warn("mathil: create label face", "size", size, "err", err)
		return
	}
	defer func() {
		_ = face.Close()
	}()

	anchor := s.ToPixel(l.Anchor)
	d := font.Drawer{
		Dst:  s.Image(),
		Src:  image.NewUniform(settings.Color),
		Face: face,
		Dot:  fixed.P(anchor.X, s.height-1-anchor.Y),
	}
	d.DrawString(norm.NFC.String(l.Text))
}

// MeasureLabel returns the advance width of text in pixels at the given size.
func MeasureLabel(s *Screen, text string, size Thickness) int {
	px := size.Pixels(s)
	if px <= 0 {
		return 0
	}
	f, err := goRegular()
	if err != nil {
		return 0
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return 0
	}
	defer func() {
		_ = face.Close()
	}()
	return font.MeasureString(face, norm.NFC.String(text)).Ceil()
}
