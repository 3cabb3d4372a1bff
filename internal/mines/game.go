package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type State int8

const (
	Over State = iota
	Active
)

// MoveResult reports the outcome of a single reveal or flag attempt. The
// core never returns errors for in-domain input; collaborators map these
// to user-facing messages.
type MoveResult int8

const (
	Success MoveResult = iota
	NotApplicable
	LosingMove
	OutOfBounds
)

func (r MoveResult) String() string {
	switch r {
	case Success:
		return "success"
	case NotApplicable:
		return "not applicable"
	case LosingMove:
		return "losing move"
	case OutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// Place addresses a cell by zero-indexed row and column.
type Place struct {
	Row, Col int
}

type Game struct {
	grid       Grid
	likelihood float64
	rnd        *rand.Rand

	bombCount     int
	flaggedCount  int
	revealedCount int

	firstMove bool
	state     State
}

// New creates a game with a fresh random bomb layout. rows and cols must be
// at least 1 and likelihood must already be clamped to [0, 0.5] by the
// caller; the core does not validate constructor input.
func New(rows, cols int, likelihood float64, rnd *rand.Rand) *Game {
	g := &Game{
		grid:       NewGrid(rows, cols),
		likelihood: likelihood,
		rnd:        rnd,
	}
	g.Restart()
	return g
}

// Restart clears all per-cell state and counters, keeps dimensions and
// likelihood, and regenerates the bomb layout.
func (g *Game) Restart() {
	g.state = Active
	g.firstMove = true
	g.flaggedCount = 0
	g.revealedCount = 0
	for i := range g.grid.cells {
		g.grid.cells[i].Revealed = false
		g.grid.cells[i].Flagged = false
	}
	g.plantBombs()
	Log.WithFields(logrus.Fields{
		"rows":  g.grid.Rows,
		"cols":  g.grid.Cols,
		"bombs": g.bombCount,
	}).Debug("game (re)started")
}

func (g *Game) Rows() int          { return g.grid.Rows }
func (g *Game) Cols() int          { return g.grid.Cols }
func (g *Game) State() State       { return g.state }
func (g *Game) BombCount() int     { return g.bombCount }
func (g *Game) FlaggedCount() int  { return g.flaggedCount }
func (g *Game) RevealedCount() int { return g.revealedCount }

// End moves the game to Over. Called by the command loop on a losing move
// and when IsWon reports true; Over is terminal until Restart.
func (g *Game) End() {
	g.state = Over
}

func (g *Game) IsWon() bool {
	return g.revealedCount == g.grid.Rows*g.grid.Cols-g.bombCount
}

// BombsLeft is the player-facing count of bombs not yet flagged.
func (g *Game) BombsLeft() int {
	return max(g.bombCount-g.flaggedCount, 0)
}

// TryReveal applies a single reveal to place. The very first in-bounds
// reveal of a game rewrites the target cell to Empty before anything else,
// so the player's first click is never a bomb. The rewrite leaves bombCount
// untouched (see DESIGN.md).
func (g *Game) TryReveal(place Place) MoveResult {
	if g.grid.Outside(place.Row, place.Col) {
		return OutOfBounds
	}
	cell := g.grid.At(place.Row, place.Col)
	if g.firstMove {
		cell.Kind = Empty
		g.firstMove = false
	}
	if cell.Flagged {
		return NotApplicable
	}
	if cell.Kind == Bomb {
		cell.Revealed = true
		Log.WithFields(logrus.Fields{
			"row": place.Row, "col": place.Col,
		}).Debug("bomb revealed")
		return LosingMove
	}
	if !cell.Revealed {
		g.expand(place.Row, place.Col)
		return Success
	}
	// Re-clicking a revealed cell chords: once every bomb the cell touches
	// is accounted for by a flag, expansion fans out over all 8 neighbors.
	if g.grid.FlaggedNeighbors(place.Row, place.Col) != g.grid.BombNeighbors(place.Row, place.Col) {
		return Success
	}
	for _, d := range dir8 {
		g.expand(place.Row+d[0], place.Col+d[1])
	}
	return Success
}

// expand runs the flood reveal from (i, j) using an explicit work list
// rather than call-stack recursion, so pathological grid sizes cannot
// overflow the stack. A cell stops the cascade when its flagged-neighbor
// count differs from its bomb-neighbor count; continuation is 4-way only.
func (g *Game) expand(i, j int) {
	work := [][2]int{{i, j}}
	for len(work) > 0 {
		next := work[len(work)-1]
		work = work[:len(work)-1]
		i, j := next[0], next[1]
		if g.grid.Outside(i, j) {
			continue
		}
		cell := g.grid.At(i, j)
		if cell.Kind == Bomb || cell.Revealed || cell.Flagged {
			continue
		}
		cell.Revealed = true
		g.revealedCount++
		if g.grid.FlaggedNeighbors(i, j) != g.grid.BombNeighbors(i, j) {
			continue
		}
		for _, d := range dir4 {
			work = append(work, [2]int{i + d[0], j + d[1]})
		}
	}
}

// TrySetFlag sets or clears the flag on an unrevealed cell. Setting a flag
// to its current value is a no-op so flaggedCount stays exact.
func (g *Game) TrySetFlag(place Place, value bool) MoveResult {
	if g.grid.Outside(place.Row, place.Col) {
		return OutOfBounds
	}
	cell := g.grid.At(place.Row, place.Col)
	if cell.Revealed {
		return NotApplicable
	}
	if cell.Flagged == value {
		return Success
	}
	cell.Flagged = value
	if value {
		g.flaggedCount++
	} else {
		g.flaggedCount--
	}
	return Success
}
