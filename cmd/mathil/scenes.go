package main

import (
	"math"

	"github.com/mathil/mathil"
	"github.com/mathil/mathil/vectorfield"
)

var (
	slate    = mathil.MustHex("#2f3640")
	offWhite = mathil.MustHex("#f5f6fa")
	sineC    = mathil.MustHex("#4cd137")
	cosineC  = mathil.MustHex("#9c88ff")
	tangentC = mathil.MustHex("#ff9f1a")
)

// plane returns bounds centred on the origin, halfHeight units tall above
// and below it, with the screen's aspect ratio.
func plane(cfg config, halfHeight float64) (mathil.Point, mathil.Point) {
	halfWidth := halfHeight * float64(cfg.Width) / float64(cfg.Height)
	return mathil.Pt(-halfWidth, -halfHeight), mathil.Pt(halfWidth, halfHeight)
}

// roseFrame draws the rose r = cos(kθ) with k equal to the timestamp, inside
// a fixed circle.
func roseFrame(cfg config) mathil.FrameFunc {
	bl, tr := plane(cfg, 1.5)
	return func(timestamp float64, _ int, _ float64) *mathil.Screen {
		k := timestamp
		rose := mathil.NewCurveFunc(func(t float64) mathil.Point {
			r := math.Cos(k * t)
			return mathil.Pt(r*math.Cos(t), r*math.Sin(t))
		}, 0, 2*math.Pi)

		return mathil.NewScreen(cfg.Width, cfg.Height, bl, tr, mathil.White).Render(
			mathil.With(rose, mathil.CurveSettings{
				Color:     mathil.Black,
				Thickness: mathil.Relative(0.022),
				Samples:   8000,
				Style:     mathil.RoundAntiAliased(1),
			}),
			mathil.With(mathil.Circle(1.1, mathil.Origin(), 0, 2*math.Pi), mathil.CurveSettings{
				Color:     mathil.Black,
				Thickness: mathil.Relative(0.007),
				Samples:   5000,
				Style:     mathil.RoundAntiAliased(1),
			}),
		)
	}
}

// trigVideo builds a three-scene video: the unit circle and axes are drawn
// in, the radius sweeps to 60° showing sine, cosine and tangent, and the last
// frame is held.
func trigVideo(cfg config) (mathil.Video, *mathil.Screen) {
	bl, tr := plane(cfg, 2)
	blank := mathil.NewScreen(cfg.Width, cfg.Height, bl, tr, slate)

	line := mathil.Relative(0.022)
	aa := mathil.RoundAntiAliased(2)

	// Progress is measured against the last frame's timestamp so the final
	// frame of each scene shows the finished state.
	frame := 1 / float64(cfg.FPS)

	drawIn := func(init *mathil.Screen, ts, length float64) *mathil.Screen {
		p := mathil.Progress(ts, 0, length-frame, mathil.EaseArctan(4))
		circle := mathil.Circle(1, mathil.Origin(), 0, 2*math.Pi).Reveal(p)
		axes := mathil.NewCartesianPlane(mathil.Pt(-1.6, -1.6), mathil.Pt(1.6, 1.6), mathil.Origin(), 0.13, 0.13)
		return init.Render(
			mathil.With(axes, mathil.CartesianPlaneSettings{Color: mathil.White, Thickness: line, SamplesPerAxis: 400}),
			mathil.With(circle, mathil.CurveSettings{
				Color: mathil.RGB(240, 240, 240), Thickness: line, Samples: 800, Style: aa,
			}),
		)
	}

	sweep := func(init *mathil.Screen, ts, length float64) *mathil.Screen {
		angle := math.Pi / 3 * mathil.Progress(ts, 0, length-frame, mathil.EaseTanh(2))
		cos, sin := math.Cos(angle), math.Sin(angle)
		sec := 1 / cos
		on := mathil.Pt(cos, sin)

		seg := func(a, b mathil.Point, c mathil.Color) mathil.Renderable {
			return mathil.With(mathil.LineSegment(a, b), mathil.CurveSettings{
				Color: c, Thickness: line, Samples: 200, Style: aa,
			})
		}
		dot := func(p mathil.Point, c mathil.Color) mathil.Renderable {
			return mathil.With(p, mathil.PointSettings{
				Color: c, Radius: mathil.Relative(0.055), Style: mathil.RoundAntiAliased(10),
			})
		}
		label := func(text string, at mathil.Point, c mathil.Color) mathil.Renderable {
			return mathil.With(mathil.Label{Text: text, Anchor: at}, mathil.LabelSettings{
				Color: c, Size: mathil.Relative(0.18),
			})
		}

		return init.Render(
			seg(mathil.Pt(cos, 0), on, sineC),
			seg(mathil.Pt(0, sin), on, cosineC),
			seg(on, mathil.Pt(sec, 0), tangentC),
			seg(mathil.Origin(), on, offWhite),
			dot(mathil.Pt(cos, 0), sineC),
			dot(mathil.Pt(0, sin), cosineC),
			dot(mathil.Pt(sec, 0), tangentC),
			label("sin", mathil.Pt(-2.6, 1.6), sineC),
			label("cos", mathil.Pt(-2.6, 1.3), cosineC),
			label("tan", mathil.Pt(-2.6, 1.0), tangentC),
		)
	}

	length := cfg.Duration / 2
	return mathil.NewVideo(
		mathil.NewScene(drawIn, length/2),
		mathil.NewScene(sweep, length),
		mathil.NewScene(mathil.Placeholder, length/2),
	), blank
}

// venn draws two overlapping circles and colours the three regions.
func venn(cfg config) *mathil.Screen {
	height := 100.0
	width := height * float64(cfg.Width) / float64(cfg.Height)
	cx := width / 2
	left := mathil.Circle(25, mathil.Pt(cx-15, 50), 0, 2*math.Pi)
	right := mathil.Circle(25, mathil.Pt(cx+15, 50), 0, 2*math.Pi)
	circles := []mathil.Curve{left, right}

	s := mathil.NewScreen(cfg.Width, cfg.Height, mathil.Origin(), mathil.Pt(width, height), mathil.Almond)
	mathil.RenderMany(s, circles, mathil.CurveSettings{
		Color: mathil.Black, Thickness: mathil.Relative(0.3), Samples: 900, Style: mathil.RoundAliased,
	})
	s.Fill(mathil.Pt(cx, 50), mathil.Amethyst).
		Fill(mathil.Pt(cx-30, 50), mathil.BabyBlue).
		Fill(mathil.Pt(cx+30, 50), mathil.AlizarinCrimson)
	return mathil.RenderMany(s, circles, mathil.CurveSettings{
		Color: mathil.Black, Thickness: mathil.Relative(0.6), Samples: 900, Style: mathil.RoundAntiAliased(2),
	})
}

// complexCube is the field z ↦ z³ on the complex plane.
func complexCube(p mathil.Point) mathil.Point {
	return mathil.Pt(
		p.X*p.X*p.X-3*p.X*p.Y*p.Y,
		3*p.X*p.X*p.Y-p.Y*p.Y*p.Y,
	)
}

// field plots complexCube on a 17×9 grid.
func field(cfg config) *mathil.Screen {
	vc := vectorfield.DefaultConfig()
	vc.Background = slate
	vc.Axis = mathil.RGB(240, 240, 240)
	vc.Width = cfg.Width
	vc.VectorLength = 0.5
	vc.VectorThickness = 0.05
	vc.AxisThickness = 0.05
	vc.VectorSamples = 300
	vc.AxisSamples = 400

	points := vectorfield.Grid(mathil.Pt(-8, -4.5), mathil.Pt(8, 4.5), 17, 9)
	return vectorfield.Draw(vc, points, complexCube)
}
