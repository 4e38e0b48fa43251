package entity

import (
	"errors"
	"fmt"
	"time"
)

const (
	BoardSize = 5
	CellCount = BoardSize * BoardSize

	// PhraseCount is the number of catalog phrases a board consumes,
	// every cell except the FREE one.
	PhraseCount = CellCount - 1

	FreeIndex = 12
	FreeText  = "FREE"
)

var (
	ErrCellOutOfRange = errors.New("cell index is out of range")
	ErrInvalidBoard   = errors.New("invalid board")
)

// Cell is a single square of the bingo grid.
type Cell struct {
	Text   string `json:"text"`
	Marked bool   `json:"marked"`
}

// Board is the 5x5 grid assigned to one user. Cells are stored row-major,
// the FREE cell sits at FreeIndex and stays marked for the board's lifetime.
type Board struct {
	Size      int       `json:"size"`
	Cells     []Cell    `json:"cells"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBoard builds a board from phrases in final placement order. The FREE
// cell is inserted at FreeIndex, phrases fill the remaining slots in order.
func NewBoard(phrases []string) *Board {
	cells := make([]Cell, 0, CellCount)

	next := 0
	for i := 0; i < CellCount; i++ {
		if i == FreeIndex {
			cells = append(cells, Cell{Text: FreeText, Marked: true})
			continue
		}

		cells = append(cells, Cell{Text: phrases[next]})
		next++
	}

	return &Board{
		Size:      BoardSize,
		Cells:     cells,
		UpdatedAt: time.Now().UTC(),
	}
}

// Toggle flips the marked flag of the cell at index and refreshes UpdatedAt.
// Toggling the FREE cell is a no-op: it never leaves the marked state.
func (that *Board) Toggle(index int) error {
	if index < 0 || index >= len(that.Cells) {
		return fmt.Errorf("%w: cell %d", ErrCellOutOfRange, index)
	}

	if index == FreeIndex {
		return nil
	}

	that.Cells[index].Marked = !that.Cells[index].Marked
	that.UpdatedAt = time.Now().UTC()

	return nil
}

// ClearMarks unmarks every cell except FREE, keeping the word assignment.
func (that *Board) ClearMarks() {
	for i := range that.Cells {
		if i == FreeIndex {
			continue
		}
		that.Cells[i].Marked = false
	}

	that.UpdatedAt = time.Now().UTC()
}

// MarkedCount reports how many cells are currently marked, FREE included.
func (that *Board) MarkedCount() int {
	count := 0
	for _, cell := range that.Cells {
		if cell.Marked {
			count++
		}
	}

	return count
}

// Validate checks the board invariants: exactly 25 cells, a marked FREE
// cell at FreeIndex and pairwise-distinct non-empty phrases everywhere else.
// A stored board that fails validation is treated as absent by the callers.
func (that *Board) Validate() error {
	if len(that.Cells) != CellCount {
		return fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, CellCount, len(that.Cells))
	}

	free := that.Cells[FreeIndex]
	if free.Text != FreeText || !free.Marked {
		return fmt.Errorf("%w: cell %d must be a marked %s cell", ErrInvalidBoard, FreeIndex, FreeText)
	}

	seen := make(map[string]struct{}, PhraseCount)
	for i, cell := range that.Cells {
		if i == FreeIndex {
			continue
		}

		if cell.Text == "" || cell.Text == FreeText {
			return fmt.Errorf("%w: cell %d holds no phrase", ErrInvalidBoard, i)
		}

		if _, ok := seen[cell.Text]; ok {
			return fmt.Errorf("%w: duplicate phrase %q", ErrInvalidBoard, cell.Text)
		}
		seen[cell.Text] = struct{}{}
	}

	return nil
}
