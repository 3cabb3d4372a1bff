package mines

import "strconv"

// CellView is the per-cell visible state exposed to the renderer.
type CellView int8

const (
	ViewHidden  CellView = -2
	ViewFlagged CellView = -1
	ViewBomb    CellView = 64
	// 0 through 8 are open cells carrying their bomb-neighbor count;
	// 0 renders as a blank.
)

func (v CellView) String() string {
	switch {
	case v == ViewHidden:
		return "."
	case v == ViewFlagged:
		return "F"
	case v == ViewBomb:
		return "B"
	case v == 0:
		return " "
	case 1 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

// View derives the visible state of the in-bounds cell (i, j). Flags always
// show; after a win the remaining bombs show as flags too. While the game
// is Active unrevealed cells stay hidden; once Over everything is exposed.
func (g *Game) View(i, j int) CellView {
	cell := g.grid.At(i, j)
	if cell.Flagged || (g.IsWon() && cell.Kind == Bomb) {
		return ViewFlagged
	}
	if g.state != Over && !cell.Revealed {
		return ViewHidden
	}
	if cell.Kind == Bomb {
		return ViewBomb
	}
	return CellView(g.grid.BombNeighbors(i, j))
}
