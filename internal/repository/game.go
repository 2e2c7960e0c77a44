package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository maps a game identifier to its latest snapshot. Save is an
// unconditional upsert: the last writer for a given id wins.
type GameRepository interface {
	Save(ctx context.Context, game entity.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.Game, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
