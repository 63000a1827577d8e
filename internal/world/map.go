package world

const (
	// Default map dimensions
	ScreenWidth  = 80
	ScreenHeight = 50

	// MaxCells caps Width*Height for configured sizes.
	MaxCells = 1 << 24
)

// Map is a fixed-size grid of tiles stored row-major in a flat slice.
// Cell (x, y) lives at Tiles[y*Width()+x]. Callers may write Tiles directly
// but must not change its length.
//
// Map has no internal locking; concurrent writers need outside coordination.
type Map struct {
	Tiles  []Tile
	width  int
	height int
}

// NewMap creates a ScreenWidth x ScreenHeight map filled with floor.
func NewMap() *Map {
	return NewMapSize(ScreenWidth, ScreenHeight)
}

// NewMapSize creates a width x height map filled with floor.
// Non-positive dimensions, or more than MaxCells cells, produce an empty map.
func NewMapSize(width, height int) *Map {
	if !ValidSize(width, height) {
		width, height = 0, 0
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileFloor
	}

	return &Map{
		Tiles:  tiles,
		width:  width,
		height: height,
	}
}

// ValidSize reports whether width x height is positive and at most MaxCells.
// Checked by division so the product cannot overflow.
func ValidSize(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxCells/height
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Len returns the number of cells.
func (m *Map) Len() int { return len(m.Tiles) }

// IndexOf converts a coordinate to its slice index without any bounds check.
// Out-of-bounds input yields an index that may alias another cell or fall
// outside Tiles; use TryIndex for unchecked coordinates.
func (m *Map) IndexOf(x, y int) int {
	return y*m.width + x
}

// InBounds returns true if the point lies inside the map.
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// CanEnter returns true if the point is inside the map and is floor.
func (m *Map) CanEnter(p Point) bool {
	return m.InBounds(p) && m.Tiles[m.IndexOf(p.X, p.Y)] == TileFloor
}

// TryIndex returns the slice index for p and true, or 0 and false if p is
// outside the map.
func (m *Map) TryIndex(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.IndexOf(p.X, p.Y), true
}

// Point converts a slice index back to its coordinate.
func (m *Map) Point(i int) (Point, bool) {
	if i < 0 || i >= len(m.Tiles) {
		return Point{}, false
	}
	return Point{X: i % m.width, Y: i / m.width}, true
}

// Tile returns the tile at p. Points outside the map read as walls.
func (m *Map) Tile(p Point) Tile {
	i, ok := m.TryIndex(p)
	if !ok {
		return TileWall
	}
	return m.Tiles[i]
}

// SetTile writes t at p and reports whether p was inside the map.
func (m *Map) SetTile(p Point, t Tile) bool {
	i, ok := m.TryIndex(p)
	if !ok {
		return false
	}
	m.Tiles[i] = t
	return true
}

// Fill sets every in-bounds cell of r to t and returns how many cells were written.
func (m *Map) Fill(r Rect, t Tile) int {
	x0, x1 := max(r.X, 0), min(r.X+r.Width, m.width)
	y0, y1 := max(r.Y, 0), min(r.Y+r.Height, m.height)

	written := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.Tiles[m.IndexOf(x, y)] = t
			written++
		}
	}
	return written
}

// Count returns the number of cells holding t.
func (m *Map) Count(t Tile) int {
	n := 0
	for _, tile := range m.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}
