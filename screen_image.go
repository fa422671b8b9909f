package mathil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // register PNG for LoadScreen
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP for LoadScreen
)

// screenImage presents a Screen through the image packages, which put the
// origin at the top-left.
type screenImage struct {
	s *Screen
}

var _ draw.Image = screenImage{}

// Image returns a draw.Image view of the screen with the usual image
// orientation: row 0 is the top row. Writes through the view modify the
// screen; alpha is discarded.
func (s *Screen) Image() draw.Image {
	return screenImage{s: s}
}

func (im screenImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (im screenImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.s.width, im.s.height)
}

func (im screenImage) At(x, y int) color.Color {
	c := im.s.At(x, im.s.height-1-y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (im screenImage) Set(x, y int, c color.Color) {
	im.s.Set(x, im.s.height-1-y, FromColor(c))
}

// Opaque lets image encoders skip the alpha channel.
func (im screenImage) Opaque() bool {
	return true
}

// RGBA copies the screen into a new opaque image.RGBA, top row first.
func (s *Screen) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := range s.height {
		row := img.Pix[y*img.Stride:]
		src := s.pixels[(s.height-1-y)*s.width:]
		for x := range s.width {
			c := src[x]
			i := x * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 0xff
		}
	}
	return img
}

// ScreenFromImage creates a screen with img's pixels covering the plane
// rectangle (bottomLeft, topRight). Alpha is discarded.
func ScreenFromImage(img image.Image, bottomLeft, topRight Point) *Screen {
	b := img.Bounds()
	s := NewScreen(b.Dx(), b.Dy(), bottomLeft, topRight, Black)
	draw.Draw(s.Image(), s.Image().Bounds(), img, b.Min, draw.Src)
	return s
}

// LoadScreen decodes a PNG or BMP file into a screen covering the plane
// rectangle (bottomLeft, topRight).
func LoadScreen(path string, bottomLeft, topRight Point) (*Screen, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("mathil: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mathil: decode %s: %w", path, err)
	}
	return ScreenFromImage(img, bottomLeft, topRight), nil
}
