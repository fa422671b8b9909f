package mathil

import (
	"encoding/binary"

	"github.com/mathil/mathil/internal/convert"
)

// Bitmap layout constants.
const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
	bmpPixelOffset    = bmpFileHeaderSize + bmpInfoHeaderSize
	bmpPixelsPerMetre = 4000
)

// bmpRowSize is the byte length of one padded 24-bit row.
func bmpRowSize(width int) int {
	return (3*width + 3) &^ 3
}

// BitmapBytes encodes the screen as an uncompressed 24-bit BMP.
//
// Rows are written bottom to top, pixels left to right as blue, green, red,
// and each row is zero-padded to a multiple of four bytes. The output depends
// only on the pixels and the resolution.
func BitmapBytes(s *Screen) []byte {
	rowSize := bmpRowSize(s.width)
	size := bmpPixelOffset + s.height*rowSize
	buf := make([]byte, size)
	le := binary.LittleEndian

	// File header.
	buf[0], buf[1] = 'B', 'M'
	le.PutUint32(buf[2:], convert.Uint32(size))
	// buf[6:10] reserved
	le.PutUint32(buf[10:], bmpPixelOffset)

	// Info header.
	h := buf[bmpFileHeaderSize:]
	le.PutUint32(h[0:], bmpInfoHeaderSize)
	le.PutUint32(h[4:], convert.Uint32(s.width))
	le.PutUint32(h[8:], convert.Uint32(s.height))
	le.PutUint16(h[12:], 1)  // colour planes
	le.PutUint16(h[14:], 24) // bits per pixel
	// h[16:20] compression: none, h[20:24] raw size: may be 0 when uncompressed
	le.PutUint32(h[24:], bmpPixelsPerMetre)
	le.PutUint32(h[28:], bmpPixelsPerMetre)
	// h[32:40] palette size and important colours: 0

	for y := range s.height {
		row := buf[bmpPixelOffset+y*rowSize:]
		for x, c := range s.pixels[y*s.width : (y+1)*s.width] {
			row[3*x+0] = c.B
			row[3*x+1] = c.G
			row[3*x+2] = c.R
		}
	}
	return buf
}
