package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestValidateTurn_NewGame(t *testing.T) {
	t.Run("Accepts a single human mark", func(t *testing.T) {
		// Given: a fresh board with one human mark in the center
		submitted := mustBoard(t, [][]int{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		})

		// When: validated without a previous state
		err := ValidateTurn(submitted, nil)

		// Then: the turn is legal
		require.NoError(t, err)
	})

	t.Run("Rejects an entirely empty board", func(t *testing.T) {
		// Given: a board with no marks at all
		var submitted entity.Board

		// When: validated without a previous state
		err := ValidateTurn(submitted, nil)

		// Then: ErrNoMoveSubmitted is returned
		require.ErrorIs(t, err, apperror.ErrNoMoveSubmitted)
	})

	t.Run("Rejects two marks of any kind", func(t *testing.T) {
		// Given: a fresh board with two marks
		submitted := mustBoard(t, [][]int{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		})

		// When: validated without a previous state
		err := ValidateTurn(submitted, nil)

		// Then: ErrMultipleMovesSubmitted is returned
		require.ErrorIs(t, err, apperror.ErrMultipleMovesSubmitted)
	})

	t.Run("Rejects a computer-only opening", func(t *testing.T) {
		// Given: a fresh board with a single computer mark
		submitted := mustBoard(t, [][]int{
			{0, 0, 0},
			{0, 2, 0},
			{0, 0, 0},
		})

		// When: validated without a previous state
		err := ValidateTurn(submitted, nil)

		// Then: ErrWrongMover is returned
		require.ErrorIs(t, err, apperror.ErrWrongMover)
	})
}

func TestValidateTurn_ExistingGame(t *testing.T) {
	prev := mustBoard(t, [][]int{
		{0, 0, 0},
		{2, 1, 0},
		{0, 0, 0},
	})

	t.Run("Accepts exactly one new human mark", func(t *testing.T) {
		// Given: the stored board plus one human mark
		submitted := mustBoard(t, [][]int{
			{1, 0, 0},
			{2, 1, 0},
			{0, 0, 0},
		})

		// When: validated against the stored board
		err := ValidateTurn(submitted, &prev)

		// Then: the turn is legal
		require.NoError(t, err)
	})

	t.Run("Rejects an identical resubmission", func(t *testing.T) {
		// When: the stored board comes back unchanged
		err := ValidateTurn(prev, &prev)

		// Then: ErrNoMoveSubmitted is returned
		require.ErrorIs(t, err, apperror.ErrNoMoveSubmitted)
	})

	t.Run("Rejects more than one new mark", func(t *testing.T) {
		// Given: the stored board plus two human marks
		submitted := mustBoard(t, [][]int{
			{1, 1, 0},
			{2, 1, 0},
			{0, 0, 0},
		})

		// When: validated against the stored board
		err := ValidateTurn(submitted, &prev)

		// Then: ErrMultipleMovesSubmitted is returned
		require.ErrorIs(t, err, apperror.ErrMultipleMovesSubmitted)
	})

	t.Run("Rejects altering a prior mark", func(t *testing.T) {
		// Given: a stored board with one human mark in the center
		previous := mustBoard(t, [][]int{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		})

		// Given: a submission where the prior center mark flipped to the
		// computer while a new mark appeared beside it
		submitted := mustBoard(t, [][]int{
			{0, 0, 0},
			{1, 2, 0},
			{0, 0, 0},
		})

		// When: validated against the stored board
		err := ValidateTurn(submitted, &previous)

		// Then: ErrPriorMoveAltered is returned
		require.ErrorIs(t, err, apperror.ErrPriorMoveAltered)
	})

	t.Run("Alteration outranks the one-move count", func(t *testing.T) {
		// Given: a submission that both clears a prior mark and adds two
		submitted := mustBoard(t, [][]int{
			{1, 1, 0},
			{0, 1, 0},
			{0, 0, 0},
		})

		// When: validated against the stored board
		err := ValidateTurn(submitted, &prev)

		// Then: the altered-history violation is what gets reported
		require.ErrorIs(t, err, apperror.ErrPriorMoveAltered)
	})

	t.Run("Rejects a new computer mark", func(t *testing.T) {
		// Given: the stored board plus one computer mark
		submitted := mustBoard(t, [][]int{
			{2, 0, 0},
			{2, 1, 0},
			{0, 0, 0},
		})

		// When: validated against the stored board
		err := ValidateTurn(submitted, &prev)

		// Then: ErrWrongMover is returned
		require.ErrorIs(t, err, apperror.ErrWrongMover)
	})
}
