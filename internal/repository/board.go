package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

var ErrBoardNotFound = errors.New("board not found")

type BoardRepository interface {
	CreateOrUpdate(ctx context.Context, key string, board *entity.Board) error
	GetByKey(ctx context.Context, key string) (*entity.Board, error)
	DeleteByKey(ctx context.Context, key string) error
}

type dbBoard struct {
	client *redis.Client
}

func NewBoardRepository(client *redis.Client) BoardRepository {
	return &dbBoard{
		client: client,
	}
}

func (that *dbBoard) CreateOrUpdate(ctx context.Context, key string, board *entity.Board) error {
	boardJSON, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	boardKey := "board:" + key
	err = that.client.Set(ctx, boardKey, boardJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set board: %w", err)
	}

	return nil
}

func (that *dbBoard) GetByKey(ctx context.Context, key string) (*entity.Board, error) {
	boardKey := "board:" + key

	response, err := that.client.Get(ctx, boardKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Board{}, ErrBoardNotFound
	}

	if err != nil {
		return &entity.Board{}, fmt.Errorf("failed to get board by key: %w", err)
	}

	var existingBoard entity.Board
	if err = json.Unmarshal([]byte(response), &existingBoard); err != nil {
		return &entity.Board{}, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return &existingBoard, nil
}

func (that *dbBoard) DeleteByKey(ctx context.Context, key string) error {
	boardKey := "board:" + key

	err := that.client.Del(ctx, boardKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete board by key: %w", err)
	}

	return nil
}
