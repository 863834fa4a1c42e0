package world

import "math"

// spatialGrid provides average O(1) lookup of nearby ships via a grid
// hash, avoiding O(n*m) collision broadphase. Adapted from the teacher's
// SpatialGrid (server/spatial_grid.go), generalized from a fixed Netrek
// galaxy size to an arbitrary world size and from player slot indices to
// ship handles.
type spatialGrid struct {
	cellSize   float64
	cols, rows int
	origin     float64 // world extends [-origin, +origin] on each axis
	cells      [][]Handle
}

// newSpatialGrid builds a grid covering [-worldSize/2, worldSize/2] on
// both axes, with cells sized to comfortably cover the largest collider
// radius plus bullet travel per tick.
func newSpatialGrid(worldSize, cellSize float64) *spatialGrid {
	if cellSize <= 0 {
		cellSize = 500
	}
	span := worldSize
	if span <= 0 {
		span = cellSize
	}
	cols := int(math.Ceil(span / cellSize))
	if cols < 1 {
		cols = 1
	}
	cells := make([][]Handle, cols*cols)
	for i := range cells {
		cells[i] = make([]Handle, 0, 4)
	}
	return &spatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     cols,
		origin:   worldSize / 2,
		cells:    cells,
	}
}

func (g *spatialGrid) clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *spatialGrid) cellCoords(x, y float64) (int, int) {
	col := int((x + g.origin) / g.cellSize)
	row := int((y + g.origin) / g.cellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

func (g *spatialGrid) insert(h Handle, x, y float64) {
	col, row := g.cellCoords(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], h)
}

// nearby returns candidate ship handles in the cell containing (x, y) and
// its 8 neighbors. The caller still performs exact distance checks.
func (g *spatialGrid) nearby(x, y float64) []Handle {
	col, row := g.cellCoords(x, y)
	var result []Handle
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			c, r := col+dc, row+dr
			if c < 0 || c >= g.cols || r < 0 || r >= g.rows {
				continue
			}
			result = append(result, g.cells[r*g.cols+c]...)
		}
	}
	return result
}
