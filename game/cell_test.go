package game

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGlyphs(t *testing.T) {
	expected := []string{"-", " ", "1", "2", "3", "4", "5", "6", "7", "8", "F"}

	cell := &Cell{}
	for i, state := range CellStates {
		cell.setState(state)
		assert.Equal(t, expected[i], cell.glyph(), "state %d", state)
		assert.Equal(t, state >= Empty && state <= Number8, cell.IsRevealed(), "state %d", state)
		assert.Equal(t, state == Flag, cell.IsFlagged(), "state %d", state)
	}
}

func TestNeighbors(t *testing.T) {
	board := createBoard(3)

	assert.Len(t, board.cellAt(0, 0).Neighbors(), 3)
	assert.Len(t, board.cellAt(1, 0).Neighbors(), 5)
	assert.Len(t, board.cellAt(1, 1).Neighbors(), 8)
	assert.NotContains(t, board.cellAt(1, 1).Neighbors(), board.cellAt(1, 1))
	assert.Nil(t, board.cellAt(3, 0))
	assert.Equal(t, "(2, 1)", board.cellAt(2, 1).Point().String())
}
