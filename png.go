package mathil

import (
	"image/png"
	"io"
)

// EncodePNG writes the screen as an 8-bit RGB PNG at the fastest compression
// level, top row first.
func EncodePNG(w io.Writer, s *Screen) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, s.RGBA())
}
