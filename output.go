package mathil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Format is an output image format.
type Format uint8

// Output formats.
const (
	FormatPNG Format = iota
	FormatBitmap
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatBitmap {
		return "bmp"
	}
	return "png"
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if f == FormatBitmap {
		return "bitmap"
	}
	return "png"
}

// ParseFormat accepts "png", "bmp" or "bitmap".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "bmp", "bitmap":
		return FormatBitmap, nil
	}
	return 0, fmt.Errorf("mathil: unknown output format %q", s)
}

// checkDirectory fails with ErrInvalidDirectory unless dir is an existing
// directory.
func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrInvalidDirectory, dir)
	}
	return nil
}

// outputPath joins dir and name.ext after validating dir.
func outputPath(dir, name, ext string) (string, error) {
	if err := checkDirectory(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, name+"."+ext), nil
}

// WriteBitmap writes the screen to dir/name.bmp.
func (s *Screen) WriteBitmap(dir, name string) error {
	return s.Write(dir, name, FormatBitmap)
}

// WritePNG writes the screen to dir/name.png.
func (s *Screen) WritePNG(dir, name string) error {
	return s.Write(dir, name, FormatPNG)
}

// Write writes the screen to dir/name.<ext> in the given format.
// Errors are ErrInvalidDirectory or an *OutputError.
func (s *Screen) Write(dir, name string, format Format) error {
	path, err := outputPath(dir, name, format.Ext())
	if err != nil {
		return err
	}
	if format == FormatBitmap {
		return writeFile(path, func(w io.Writer) error {
			_, err := w.Write(BitmapBytes(s))
			return err
		}, OpWrite)
	}
	return writeFile(path, func(w io.Writer) error {
		return EncodePNG(w, s)
	}, OpEncode)
}

// writeFile creates path and streams body into it. A body error is reported
// as op; flushing and closing failures are write errors.
func writeFile(path string, body func(io.Writer) error, op OutputOp) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the caller
	if err != nil {
		return &OutputError{Op: OpCreate, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &OutputError{Op: OpWrite, Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	if err := body(w); err != nil {
		return &OutputError{Op: op, Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &OutputError{Op: OpWrite, Path: path, Err: err}
	}
	return nil
}
