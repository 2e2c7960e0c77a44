package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	Save(ctx context.Context, game entity.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.Game, error)
}

// TurnResult is what the transport reports back after a full turn: the board
// including the computer's reply, and the terminal status.
type TurnResult struct {
	Board    entity.Board
	GameOver bool
	Winner   string
}

// GameSession runs one submitted snapshot through validation, persistence
// and the solver. A per-game mutex covers the whole sequence, so two
// submissions for the same id can never validate against the same stored
// snapshot and both win the write; different ids proceed in parallel.
type GameSession struct {
	logger *slog.Logger
	games  gameRepo

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewGameSession(logger *slog.Logger, games gameRepo) *GameSession {
	return &GameSession{
		logger: logger.With("component", "session"),
		games:  games,
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// SubmitMove advances the game identified by id with the human's snapshot
// and answers with the computer's reply. The human's move is committed as
// soon as it validates, even if computing the reply fails afterwards.
func (that *GameSession) SubmitMove(ctx context.Context, id uuid.UUID, board entity.Board) (TurnResult, error) {
	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	var prev *entity.Board

	stored, err := that.games.GetByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		// first snapshot for this id
	case err != nil:
		return TurnResult{}, fmt.Errorf("failed to get game by id: %w", err)
	default:
		prevBoard := stored.Board
		prev = &prevBoard
	}

	if err = tictactoe.ValidateTurn(board, prev); err != nil {
		return TurnResult{}, fmt.Errorf("invalid turn: %w", err)
	}

	// A terminal stored state means a stale client is retrying after the
	// game ended; nothing may be written.
	if prev != nil && prev.IsTerminal() {
		return TurnResult{}, apperror.ErrGameAlreadyOver
	}

	game := entity.Game{ID: id, Board: board}
	if err = that.games.Save(ctx, game); err != nil {
		return TurnResult{}, fmt.Errorf("failed to save game: %w", err)
	}

	if board.IsTerminal() {
		return newTurnResult(board), nil
	}

	move, err := tictactoe.NextMove(board)
	if err != nil {
		// Unreachable when the steps above ran in order; a client cannot
		// cause this, so it is logged as an internal defect.
		that.logger.Error("solver invoked on an unplayable board", "game_id", id, "error", err)
		return TurnResult{}, fmt.Errorf("failed to compute computer move: %w", err)
	}

	game.Board = board.WithMove(move, entity.CellComputer)
	if err = that.games.Save(ctx, game); err != nil {
		return TurnResult{}, fmt.Errorf("failed to save game: %w", err)
	}

	return newTurnResult(game.Board), nil
}

// lockFor hands out the mutex guarding one game id. Entries are never
// reclaimed; they are one mutex per game, and the store holding the games
// is process-lifetime as well.
func (that *GameSession) lockFor(id uuid.UUID) *sync.Mutex {
	that.mu.Lock()
	defer that.mu.Unlock()

	lock, ok := that.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[id] = lock
	}

	return lock
}

func newTurnResult(board entity.Board) TurnResult {
	return TurnResult{
		Board:    board,
		GameOver: board.IsTerminal(),
		Winner:   board.Result(),
	}
}
