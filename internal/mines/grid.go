package mines

type CellKind int8

const (
	Empty CellKind = iota
	Bomb
)

type Cell struct {
	Kind     CellKind
	Revealed bool
	Flagged  bool
}

var (
	dir4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	dir8 = [8][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Grid is a rectangular collection of cells stored in row-major order.
// Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	Rows, Cols int
	cells      []Cell
}

func NewGrid(rows, cols int) Grid {
	return Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (g Grid) Outside(i, j int) bool {
	return i < 0 || j < 0 || i >= g.Rows || j >= g.Cols
}

// At panics if (i, j) is outside the grid; callers bounds-check first.
func (g *Grid) At(i, j int) *Cell {
	return &g.cells[i*g.Cols+j]
}

// CountNeighbors reports how many of the up-to-8 compass neighbors of
// (i, j) satisfy pred. Out-of-bounds neighbors are never dereferenced.
func (g Grid) CountNeighbors(i, j int, pred func(Cell) bool) (count int) {
	if g.Outside(i, j) {
		return 0
	}
	for _, d := range dir8 {
		ni, nj := i+d[0], j+d[1]
		if !g.Outside(ni, nj) && pred(g.cells[ni*g.Cols+nj]) {
			count++
		}
	}
	return count
}

func (g Grid) BombNeighbors(i, j int) int {
	return g.CountNeighbors(i, j, func(c Cell) bool { return c.Kind == Bomb })
}

func (g Grid) FlaggedNeighbors(i, j int) int {
	return g.CountNeighbors(i, j, func(c Cell) bool { return c.Flagged })
}
