package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const gameKeyPrefix = "game:"

// dbGame is the redis-backed GameRepository. The core engine only needs the
// in-memory store; this backend is the optional durable one, serializing
// each game as JSON under game:<uuid>.
type dbGame struct {
	client *redis.Client
}

func NewRedisGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id uuid.UUID) string {
	return gameKeyPrefix + id.String()
}

func (that *dbGame) Save(ctx context.Context, game entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(game.ID), gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id uuid.UUID) (entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return game, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete game by id: %w", err)
	}

	return removed > 0, nil
}

func (that *dbGame) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	found, err := that.client.Exists(ctx, gameKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check game existence: %w", err)
	}

	return found > 0, nil
}

func (that *dbGame) Count(ctx context.Context) (int, error) {
	keys, err := that.scanGameKeys(ctx)
	if err != nil {
		return 0, err
	}

	return len(keys), nil
}

func (that *dbGame) Clear(ctx context.Context) error {
	keys, err := that.scanGameKeys(ctx)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	if err = that.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear games: %w", err)
	}

	return nil
}

func (that *dbGame) scanGameKeys(ctx context.Context) ([]string, error) {
	var keys []string

	iter := that.client.Scan(ctx, 0, gameKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan game keys: %w", err)
	}

	return keys, nil
}
