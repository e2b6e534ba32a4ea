package core

// Grid describes the immutable geometry of a level: cell counts plus the
// mapping between cell indices and the rendering surface. It holds no game
// state beyond the configured cell size and origin offset.
type Grid struct {
	W        int   // Width in cells
	H        int   // Height in cells
	CellSize int   // Size of one cell on the rendering surface
	Origin   Coord // Top-left offset of cell (0,0) on the rendering surface
}

// NewGrid creates a grid with the given cell counts, cell size and origin.
func NewGrid(w, h, cellSize int, origin Coord) Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Grid{W: w, H: h, CellSize: cellSize, Origin: origin}
}

// InBounds returns true if the cell coordinate is within the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// CellCount returns the total number of cells.
func (g Grid) CellCount() int {
	return g.W * g.H
}

// CellToScreen converts a cell coordinate to the top-left point of that cell
// on the rendering surface.
func (g Grid) CellToScreen(c Coord) (x, y int) {
	return g.Origin.X + c.X*g.CellSize, g.Origin.Y + c.Y*g.CellSize
}

// ScreenToCell converts a point on the rendering surface to the cell that
// contains it. The bool is false when the point falls outside the grid.
func (g Grid) ScreenToCell(x, y int) (Coord, bool) {
	rx := x - g.Origin.X
	ry := y - g.Origin.Y
	if rx < 0 || ry < 0 {
		return Coord{}, false
	}
	c := C(rx/g.CellSize, ry/g.CellSize)
	if !g.InBounds(c) {
		return Coord{}, false
	}
	return c, true
}
