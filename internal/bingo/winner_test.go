package bingo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

// freshCells builds a valid grid with only the FREE cell marked.
func freshCells() []entity.Cell {
	cells := make([]entity.Cell, entity.CellCount)
	for i := range cells {
		if i == entity.FreeIndex {
			cells[i] = entity.Cell{Text: entity.FreeText, Marked: true}
			continue
		}
		cells[i] = entity.Cell{Text: fmt.Sprintf("phrase %02d", i)}
	}

	return cells
}

func markCells(cells []entity.Cell, indexes ...int) []entity.Cell {
	for _, idx := range indexes {
		cells[idx].Marked = true
	}

	return cells
}

func TestHasWin(t *testing.T) {
	t.Run("Fresh board has no win", func(t *testing.T) {
		// Given: a board with only the FREE cell marked
		cells := freshCells()

		// Then: there is no winning line
		require.False(t, HasWin(cells))
	})

	t.Run("Fully marked board wins", func(t *testing.T) {
		// Given: a board with every cell marked
		cells := freshCells()
		for i := range cells {
			cells[i].Marked = true
		}

		// Then: a win is detected
		require.True(t, HasWin(cells))
	})

	t.Run("Full row wins", func(t *testing.T) {
		// Given: row 0 fully marked, everything else fresh
		cells := markCells(freshCells(), 0, 1, 2, 3, 4)

		require.True(t, HasWin(cells))
	})

	t.Run("Full column wins", func(t *testing.T) {
		// Given: column 3 fully marked, everything else fresh
		cells := markCells(freshCells(), 3, 8, 13, 18, 23)

		require.True(t, HasWin(cells))
	})

	t.Run("Main diagonal wins through FREE", func(t *testing.T) {
		// Given: the main diagonal marked, index 12 already covered by FREE
		cells := markCells(freshCells(), 0, 6, 18, 24)

		require.True(t, HasWin(cells))
	})

	t.Run("Anti diagonal wins through FREE", func(t *testing.T) {
		// Given: the anti-diagonal marked, index 12 already covered by FREE
		cells := markCells(freshCells(), 4, 8, 16, 20)

		require.True(t, HasWin(cells))
	})

	t.Run("Four in a row is not enough", func(t *testing.T) {
		// Given: row 1 with one cell missing
		cells := markCells(freshCells(), 5, 6, 7, 8)

		assert.False(t, HasWin(cells))
	})

	t.Run("Scattered marks do not win", func(t *testing.T) {
		// Given: marks that never complete a line
		cells := markCells(freshCells(), 0, 7, 9, 11, 15, 21, 23)

		assert.False(t, HasWin(cells))
	})

	t.Run("Malformed grid never wins", func(t *testing.T) {
		// Given: a grid with only 24 cells, all marked
		cells := freshCells()[:24]
		for i := range cells {
			cells[i].Marked = true
		}

		// Then: HasWin reports false instead of failing
		assert.False(t, HasWin(cells))

		// Then: empty and nil grids behave the same way
		assert.False(t, HasWin(nil))
		assert.False(t, HasWin([]entity.Cell{}))
	})
}
