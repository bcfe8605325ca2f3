package mathutil

// Grid construction constants
const (
	minSpanPoints = 2 // floats.Span needs at least two points
)
