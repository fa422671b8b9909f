package mathil

// Fill recolours the 4-connected region of uniform colour containing seed.
//
// The region is found with an explicit stack, so its size is limited only by
// memory. Pixels of the same colour that are not connected to the seed keep
// their colour. Fill is a no-op when the seed pixel already has colour c or
// the seed lies off the screen.
func (s *Screen) Fill(seed Point, c Color) *Screen {
	start := s.ToPixel(seed)
	if !s.InBounds(start) {
		return s
	}
	original := s.pixels[start.Y*s.width+start.X]
	if original == c {
		return s
	}

	stack := []PixelCoordinate{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !s.InBounds(cur) {
			continue
		}
		i := cur.Y*s.width + cur.X
		if s.pixels[i] != original {
			continue
		}
		s.pixels[i] = c
		stack = append(stack,
			PixelCoordinate{X: cur.X, Y: cur.Y + 1},
			PixelCoordinate{X: cur.X + 1, Y: cur.Y},
			PixelCoordinate{X: cur.X, Y: cur.Y - 1},
			PixelCoordinate{X: cur.X - 1, Y: cur.Y},
		)
	}
	return s
}

// FillWhere recolours every pixel whose plane point satisfies inside.
// It visits every pixel of the screen.
func (s *Screen) FillWhere(inside func(Point) bool, c Color) *Screen {
	for y := range s.height {
		for x := range s.width {
			if inside(s.ToPoint(PixelCoordinate{X: x, Y: y})) {
				s.pixels[y*s.width+x] = c
			}
		}
	}
	return s
}
