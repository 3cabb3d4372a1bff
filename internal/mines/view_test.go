package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewWhileActive(t *testing.T) {
	g := newBareGame(3, 3)
	placeBomb(g, 1, 1)
	require.Equal(t, Success, g.TrySetFlag(Place{0, 2}, true))
	g.grid.At(0, 0).Revealed = true
	g.revealedCount++
	g.grid.At(2, 2).Revealed = true
	g.revealedCount++

	assert.Equal(t, CellView(1), g.View(0, 0))
	assert.Equal(t, ViewFlagged, g.View(0, 2))
	assert.Equal(t, ViewHidden, g.View(1, 1))
	assert.Equal(t, ViewHidden, g.View(2, 0))
	assert.Equal(t, CellView(1), g.View(2, 2))
}

func TestViewAfterLossShowsEverything(t *testing.T) {
	g := newBareGame(2, 2)
	placeBomb(g, 0, 0)
	require.Equal(t, LosingMove, g.TryReveal(Place{0, 0}))
	g.End()

	assert.Equal(t, ViewBomb, g.View(0, 0))
	assert.Equal(t, CellView(1), g.View(0, 1))
	assert.Equal(t, CellView(1), g.View(1, 0))
	assert.Equal(t, CellView(1), g.View(1, 1))
}

func TestViewAfterWinFlagsRemainingBombs(t *testing.T) {
	g := newBareGame(3, 3)
	placeBomb(g, 1, 1)
	require.Equal(t, Success, g.TrySetFlag(Place{1, 1}, true))
	require.Equal(t, Success, g.TryReveal(Place{0, 0}))
	require.True(t, g.IsWon())
	g.End()

	// the bomb was flagged by the player; a won game keeps rendering it
	// (and any unflagged bombs) as flagged
	require.Equal(t, Success, g.TrySetFlag(Place{1, 1}, false))
	assert.Equal(t, ViewFlagged, g.View(1, 1))
	assert.Equal(t, CellView(1), g.View(0, 0))
}

func TestViewBlankVersusNumber(t *testing.T) {
	g := newBareGame(1, 3)
	placeBomb(g, 0, 2)
	g.grid.At(0, 0).Revealed = true
	g.revealedCount++
	g.grid.At(0, 1).Revealed = true
	g.revealedCount++

	assert.Equal(t, CellView(0), g.View(0, 0))
	assert.Equal(t, CellView(1), g.View(0, 1))
}

func TestCellViewString(t *testing.T) {
	assert.Equal(t, ".", ViewHidden.String())
	assert.Equal(t, "F", ViewFlagged.String())
	assert.Equal(t, "B", ViewBomb.String())
	assert.Equal(t, " ", CellView(0).String())
	assert.Equal(t, "5", CellView(5).String())
}
