package mathil

import (
	"errors"
	"fmt"
	"time"

	"github.com/mathil/mathil/internal/convert"
	"github.com/mathil/mathil/internal/parallel"
)

// FrameFunc draws one frame of an animation from scratch. It receives the
// frame's timestamp in seconds, its index and the animation's length.
type FrameFunc func(timestamp float64, frame int, length float64) *Screen

// SceneFunc draws one frame of a scene. init is a private copy of the screen
// the scene starts from; the generator may modify and return it.
type SceneFunc func(init *Screen, timestamp, length float64) *Screen

// Placeholder is a SceneFunc that returns its initial screen unchanged. Use it
// to hold the last frame of a scene for a while.
func Placeholder(init *Screen, _, _ float64) *Screen {
	return init
}

// Scene is one segment of an animation: a generator and a length in seconds.
type Scene struct {
	Generator SceneFunc
	Length    float64
}

// NewScene creates a scene.
func NewScene(gen SceneFunc, length float64) Scene {
	return Scene{Generator: gen, Length: length}
}

// Animate renders the scene from init into dir at fps frames per second.
func (sc Scene) Animate(init *Screen, fps int, dir string, opts ...AnimateOption) error {
	return NewVideo(sc).Animate(init, fps, dir, opts...)
}

// Video is a sequence of scenes rendered one after another. Frame numbers
// continue from scene to scene and each scene starts from the last frame of
// the one before.
type Video struct {
	Scenes []Scene
}

// NewVideo creates a video from scenes.
func NewVideo(scenes ...Scene) Video {
	return Video{Scenes: scenes}
}

// Animate renders every scene in order into dir at fps frames per second,
// starting from init.
//
// Frames within a scene are rendered concurrently; scenes are rendered one at
// a time because each depends on its predecessor's last frame. If any frame of
// a scene fails to write, the remaining frames of that scene still run, the
// following scenes are skipped, and the returned error joins one *FrameError
// per failed frame.
func (v Video) Animate(init *Screen, fps int, dir string, opts ...AnimateOption) error {
	if err := checkDirectory(dir); err != nil {
		return err
	}
	o := newAnimateOptions(opts)
	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	start := time.Now()
	next := o.startFrame
	for i, sc := range v.Scenes {
		gen := sc.Generator
		from := init
		last, n, err := renderFrames(pool, sc.Length, fps, next, dir, &o, func(_ int, ts float64) *Screen {
			return gen(from.Clone(), ts, sc.Length)
		})
		if err != nil {
			return fmt.Errorf("mathil: scene %d: %w", i, err)
		}
		if last != nil {
			init = last
		}
		next += n
	}

	Logger().Info("mathil: video rendered",
		"scenes", len(v.Scenes), "frames", next-o.startFrame, "elapsed", time.Since(start))
	return nil
}

// Animate renders length seconds of independently generated frames into dir
// at fps frames per second. Error handling is as for Video.Animate.
func Animate(gen FrameFunc, length float64, fps int, dir string, opts ...AnimateOption) error {
	if err := checkDirectory(dir); err != nil {
		return err
	}
	o := newAnimateOptions(opts)
	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	_, _, err := renderFrames(pool, length, fps, o.startFrame, dir, &o, func(frame int, ts float64) *Screen {
		return gen(ts, frame, length)
	})
	return err
}

// FrameCount returns the number of frames in length seconds at fps.
func FrameCount(length float64, fps int) int {
	if fps <= 0 {
		panic(fmt.Sprintf("mathil: frame rate must be positive, got %d", fps))
	}
	return int(convert.RoundUint32(length * float64(fps)))
}

// renderFrames renders and writes one scene's frames, numbered from first.
// It returns the screen of the final frame (nil for an empty scene), the
// number of frames, and the joined frame errors.
func renderFrames(pool *parallel.WorkerPool, length float64, fps, first int, dir string,
	o *animateOptions, draw func(frame int, ts float64) *Screen) (*Screen, int, error) {
	count := FrameCount(length, fps)
	Logger().Info("mathil: rendering scene", "frames", count, "first", first, "fps", fps)
	if count == 0 {
		return nil, 0, nil
	}

	var last *Screen
	errs := make([]error, count)
	units := make([]func(), count)
	for i := range count {
		ts := float64(i) / float64(fps)
		units[i] = func() {
			s := draw(i, ts)
			if i == count-1 {
				last = s
			}
			n := first + i
			name := o.frameName(n)
			if err := s.Write(dir, name, o.format); err != nil {
				Logger().Warn("mathil: frame failed", "frame", n, "err", err)
				errs[i] = &FrameError{Frame: n, Err: err}
				return
			}
			Logger().Debug("mathil: frame written", "frame", n, "file", name+"."+o.format.Ext())
		}
	}
	pool.Run(units)

	return last, count, errors.Join(errs...)
}
