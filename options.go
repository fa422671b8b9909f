package mathil

import "fmt"

// AnimateOption configures Animate, Scene.Animate and Video.Animate.
//
// Example:
//
//	err := video.Animate(init, 60, "out",
//		mathil.WithFormat(mathil.FormatBitmap),
//		mathil.WithWorkers(8))
type AnimateOption func(*animateOptions)

type animateOptions struct {
	workers    int
	format     Format
	prefix     string
	digits     int
	startFrame int
}

func defaultAnimateOptions() animateOptions {
	return animateOptions{
		workers: 0, // GOMAXPROCS
		format:  FormatPNG,
		prefix:  "frame",
		digits:  8,
	}
}

func newAnimateOptions(opts []AnimateOption) animateOptions {
	o := defaultAnimateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets how many frames are rendered at once. Zero or less means
// GOMAXPROCS.
func WithWorkers(n int) AnimateOption {
	return func(o *animateOptions) {
		o.workers = n
	}
}

// WithFormat sets the frame file format. The default is FormatPNG.
func WithFormat(f Format) AnimateOption {
	return func(o *animateOptions) {
		o.format = f
	}
}

// WithFilePrefix sets the part of each frame's file name before the index.
// The default is "frame", giving names like frame_00000042.png.
func WithFilePrefix(prefix string) AnimateOption {
	return func(o *animateOptions) {
		o.prefix = prefix
	}
}

// WithDigits sets the zero-padded width of the frame index. The default is 8.
func WithDigits(n int) AnimateOption {
	return func(o *animateOptions) {
		if n > 0 {
			o.digits = n
		}
	}
}

// WithStartFrame sets the number of the first frame written.
func WithStartFrame(n int) AnimateOption {
	return func(o *animateOptions) {
		if n >= 0 {
			o.startFrame = n
		}
	}
}

// frameName returns the file name, without extension, for frame n.
func (o *animateOptions) frameName(n int) string {
	return fmt.Sprintf("%s_%0*d", o.prefix, o.digits, n)
}
