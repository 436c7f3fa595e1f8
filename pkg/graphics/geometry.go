package graphics

// Point is a position in logical coordinates.
type Point struct {
	X, Y float64
}

// Size is a width and height in logical coordinates.
type Size struct {
	Width, Height float64
}

// Rect is a rectangle described by its origin and size.
type Rect struct {
	Origin Point
	Size   Size
}
