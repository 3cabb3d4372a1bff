package mines

// plantBombs redraws the bomb layout: each cell independently becomes a
// bomb with probability likelihood. No bomb-count guarantee beyond the
// expectation rows*cols*likelihood; an all-bomb or zero-bomb grid is a
// legal outcome.
func (g *Game) plantBombs() {
	g.bombCount = 0
	for i := range g.grid.cells {
		if g.rnd.Float64() <= g.likelihood {
			g.grid.cells[i].Kind = Bomb
			g.bombCount++
		} else {
			g.grid.cells[i].Kind = Empty
		}
	}
}
