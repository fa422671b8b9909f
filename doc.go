// Package mathil renders mathematical objects into pixel buffers and
// sequences those buffers into animations.
//
// # Overview
//
// A [Screen] is a pixel grid that shows a rectangle of the continuous plane.
// Shapes described in plane coordinates ([Point], [Curve], [Polygon],
// [DashedLine], [Vector], [CartesianPlane], [Label]) are drawn onto it with a
// settings value, then the screen is written as a BMP or PNG file.
//
// # Quick Start
//
//	s := mathil.NewScreen(1920, 1080, mathil.Pt(-3.2, -1.8), mathil.Pt(3.2, 1.8), mathil.White)
//
//	circle := mathil.Circle(1, mathil.Origin(), 0, 2*math.Pi)
//	s.Render(mathil.With(circle, mathil.CurveSettings{
//		Color:     mathil.Black,
//		Thickness: mathil.Relative(0.02),
//		Samples:   4000,
//		Style:     mathil.RoundAntiAliased(2),
//	}))
//
//	if err := s.WritePNG("out", "circle"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Plane coordinates are floating point with y pointing up. Pixel (0, 0) is the
// bottom-left pixel of a screen, x increases rightward and y upward. The
// mapping between the two is affine and rounds to the nearest pixel.
//
// # Strokes
//
// Points are stamped as squares of side 2r around their pixel. Curves are
// sampled at a fixed number of parameters and each sample is stamped, so a
// curve is as smooth as its sample count makes it. [Square] and
// [RoundAliased] overwrite pixels; [RoundAntiAliased] blends towards whatever
// is already on the screen, so drawing order matters.
//
// # Animation
//
// [Animate] renders independent frames; [Video] chains [Scene] values, each
// starting from the previous scene's last frame. Frames are rendered in
// parallel and written as numbered files.
//
// # Errors
//
// Writing files returns errors ([ErrInvalidDirectory], [*OutputError],
// [*FrameError]). Malformed geometry, such as a polygon with two vertices,
// panics.
package mathil
