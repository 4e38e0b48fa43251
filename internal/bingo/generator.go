package bingo

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

var ErrInsufficientCatalog = errors.New("not enough catalog phrases")

// Generate shuffles the catalog with the given Source and lays the first 24
// phrases onto a fresh board, FREE cell pre-marked at the center. The catalog
// itself is never modified.
func Generate(catalog []string, src Source) (*entity.Board, error) {
	if len(catalog) < entity.PhraseCount {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCatalog, entity.PhraseCount, len(catalog))
	}

	pool := make([]string, len(catalog))
	copy(pool, catalog)

	// Fisher-Yates, driven by the injected Source so a seeded stream
	// reproduces the same ordering.
	for i := len(pool) - 1; i >= 1; i-- {
		j := int(src.Float64() * float64(i+1))
		pool[i], pool[j] = pool[j], pool[i]
	}

	return entity.NewBoard(pool[:entity.PhraseCount]), nil
}
