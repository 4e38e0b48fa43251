package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/rocketscienceinc/bingo-backend/internal/bingo"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
	"github.com/rocketscienceinc/bingo-backend/internal/repository"
)

type boardRepo interface {
	CreateOrUpdate(ctx context.Context, key string, board *entity.Board) error
	GetByKey(ctx context.Context, key string) (*entity.Board, error)
	DeleteByKey(ctx context.Context, key string) error
}

// BoardStats is the read model the presentation layer consumes.
type BoardStats struct {
	Cells       []entity.Cell `json:"cells"`
	MarkedCount int           `json:"marked_count"`
	Win         bool          `json:"win"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type BoardManager struct {
	logger    *slog.Logger
	boardRepo boardRepo
	catalog   []string
}

func NewBoardManager(logger *slog.Logger, boardRepo boardRepo, catalog []string) *BoardManager {
	return &BoardManager{
		logger: logger,

		boardRepo: boardRepo,
		catalog:   catalog,
	}
}

// GetOrCreateBoard returns the stored board for the user, generating one
// from the username-derived seed when none exists. The seed depends on the
// username only, so a lost board comes back with the same word assignment.
// A stored board that fails validation is treated as absent.
func (that *BoardManager) GetOrCreateBoard(ctx context.Context, username string) (*entity.Board, error) {
	log := that.logger.With("method", "GetOrCreateBoard")

	board, err := that.boardRepo.GetByKey(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrBoardNotFound) {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if err == nil {
		if validErr := board.Validate(); validErr == nil {
			return board, nil
		}

		log.Warn("stored board is invalid, regenerating", "user", username)
	}

	src := bingo.NewSeededSource(bingo.Seed(username))

	return that.generate(ctx, username, src)
}

// RegenerateBoard discards the current word assignment and generates a fresh
// one from a seed that mixes the username with the current time.
func (that *BoardManager) RegenerateBoard(ctx context.Context, username string) (*entity.Board, error) {
	seedKey := username + ":" + strconv.FormatInt(time.Now().UnixNano(), 10)
	src := bingo.NewSeededSource(bingo.Seed(seedKey))

	return that.generate(ctx, username, src)
}

// ResetBoard keeps the word assignment and clears every mark except FREE.
func (that *BoardManager) ResetBoard(ctx context.Context, username string) (*entity.Board, error) {
	board, err := that.GetOrCreateBoard(ctx, username)
	if err != nil {
		return nil, err
	}

	board.ClearMarks()

	if err = that.boardRepo.CreateOrUpdate(ctx, username, board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// ToggleCell flips the mark at index and persists the result.
func (that *BoardManager) ToggleCell(ctx context.Context, username string, index int) (*entity.Board, error) {
	board, err := that.GetOrCreateBoard(ctx, username)
	if err != nil {
		return nil, err
	}

	if err = board.Toggle(index); err != nil {
		return nil, fmt.Errorf("failed to toggle cell: %w", err)
	}

	if err = that.boardRepo.CreateOrUpdate(ctx, username, board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// Stats returns the board's cells, win flag, marked count and updated-at.
func (that *BoardManager) Stats(ctx context.Context, username string) (*BoardStats, error) {
	board, err := that.GetOrCreateBoard(ctx, username)
	if err != nil {
		return nil, err
	}

	return &BoardStats{
		Cells:       board.Cells,
		MarkedCount: board.MarkedCount(),
		Win:         bingo.HasWin(board.Cells),
		UpdatedAt:   board.UpdatedAt,
	}, nil
}

func (that *BoardManager) generate(ctx context.Context, username string, src bingo.Source) (*entity.Board, error) {
	board, err := bingo.Generate(that.catalog, src)
	if err != nil {
		return nil, fmt.Errorf("failed to generate board: %w", err)
	}

	if err = that.boardRepo.CreateOrUpdate(ctx, username, board); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return board, nil
}
