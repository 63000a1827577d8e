package world

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions in cells
}
