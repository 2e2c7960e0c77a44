package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// memoryGame keeps every game in process memory behind a single mutex. The
// map is tiny and each operation is O(1), so one lock for the whole key
// space is enough to make every operation linearizable per key.
type memoryGame struct {
	mu    sync.RWMutex
	games map[uuid.UUID]entity.Game
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[uuid.UUID]entity.Game),
	}
}

func (that *memoryGame) Save(_ context.Context, game entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id uuid.UUID) (entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return entity.Game{}, ErrGameNotFound
	}

	return game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return false, nil
	}

	delete(that.games, id)

	return true, nil
}

func (that *memoryGame) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	_, ok := that.games[id]

	return ok, nil
}

func (that *memoryGame) Count(_ context.Context) (int, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.games), nil
}

func (that *memoryGame) Clear(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	clear(that.games)

	return nil
}
