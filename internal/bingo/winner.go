package bingo

import "github.com/rocketscienceinc/bingo-backend/internal/entity"

// WinLines lists every winning line of the 5x5 grid in evaluation order:
// the five rows, the five columns, the main diagonal, the anti-diagonal.
var WinLines = [][5]int{
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},
	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},
	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// HasWin reports whether any win line is fully marked. A grid that does not
// hold exactly 25 cells can never win; malformed input is not an error here.
func HasWin(cells []entity.Cell) bool {
	if len(cells) != entity.CellCount {
		return false
	}

	for _, line := range WinLines {
		if lineMarked(cells, line) {
			return true
		}
	}

	return false
}

func lineMarked(cells []entity.Cell, line [5]int) bool {
	for _, idx := range line {
		if !cells[idx].Marked {
			return false
		}
	}

	return true
}
