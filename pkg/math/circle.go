package math

import "math"

// MinCircleSegments keeps small circles round.
const MinCircleSegments = 64

// Circle samples a closed circle starting at its rightmost point, with
// roughly one segment per pixel of circumference. Clockwise refers to a
// y-down screen.
func Circle(center Vec2, radius float64, clockwise bool) []Vec2 {
	n := int(math.Ceil(2 * math.Pi * radius))
	if n < MinCircleSegments {
		n = MinCircleSegments
	}
	dir := -1.0
	if clockwise {
		dir = 1
	}

	pts := make([]Vec2, 0, n+1)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Vec2{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + dir*radius*math.Sin(theta),
		})
	}
	return append(pts, pts[0])
}

// SignedArea returns the shoelace area of a closed contour. On a y-down
// screen clockwise contours are positive.
func SignedArea(pts []Vec2) float64 {
	var sum float64
	for i := 0; i+1 < len(pts); i++ {
		sum += pts[i].X*pts[i+1].Y - pts[i+1].X*pts[i].Y
	}
	return sum / 2
}
