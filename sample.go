package formula

// Point is one sample of a compiled formula.
type Point struct {
	X, Y float64
}

// Sample evaluates the program at n evenly spaced values of x covering
// [from, to], endpoints included. With n == 1 only from is sampled;
// with n < 1 the result is nil. This is the parse-once, evaluate-many
// loop a plotter or tabulator runs.
func (p *Program) Sample(from, to float64, n int) []Point {
	if n < 1 {
		return nil
	}
	pts := make([]Point, n)
	if n == 1 {
		pts[0] = Point{X: from, Y: p.Eval(from)}
		return pts
	}
	step := (to - from) / float64(n-1)
	for i := range pts {
		x := from + step*float64(i)
		if i == n-1 {
			// Land exactly on the right endpoint despite rounding.
			x = to
		}
		pts[i] = Point{X: x, Y: p.Eval(x)}
	}
	return pts
}
