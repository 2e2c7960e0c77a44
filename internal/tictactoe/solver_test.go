package tictactoe

import (
	"math"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, cells [][]int) entity.Board {
	t.Helper()

	board, err := entity.NewBoard(cells)
	require.NoError(t, err)

	return board
}

func TestNextMove_TakesTheWin(t *testing.T) {
	// Given: the computer has two marks on the middle row
	board := mustBoard(t, [][]int{
		{1, 0, 0},
		{2, 2, 0},
		{1, 0, 0},
	})

	// When: the solver picks a move
	move, err := NextMove(board)

	// Then: it completes the row immediately
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
}

func TestNextMove_BlocksTheHuman(t *testing.T) {
	// Given: the human threatens the top row
	board := mustBoard(t, [][]int{
		{1, 1, 0},
		{0, 2, 0},
		{0, 0, 0},
	})

	// When: the solver picks a move
	move, err := NextMove(board)

	// Then: it blocks the winning cell
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
}

func TestNextMove_IsDeterministic(t *testing.T) {
	// Given: a mid-game board with several equally plausible cells
	board := mustBoard(t, [][]int{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 1},
	})

	// When: the solver runs repeatedly on the same board
	first, err := NextMove(board)
	require.NoError(t, err)

	// Then: every call returns the identical move
	for i := 0; i < 10; i++ {
		move, err := NextMove(board)
		require.NoError(t, err)
		require.Equal(t, first, move)
	}
}

func TestNextMove_LeavesTheBoardUntouched(t *testing.T) {
	// Given: a board and an identical copy of it
	board := mustBoard(t, [][]int{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})
	original := board

	// When: the solver searches the full game tree
	_, err := NextMove(board)
	require.NoError(t, err)

	// Then: the input board is unchanged
	require.Equal(t, original, board)
}

func TestNextMove_RejectsUnplayableBoards(t *testing.T) {
	t.Run("board with a winner", func(t *testing.T) {
		// Given: the human already completed a row
		board := mustBoard(t, [][]int{
			{1, 1, 1},
			{2, 2, 0},
			{0, 0, 0},
		})

		// When: the solver is invoked anyway
		_, err := NextMove(board)

		// Then: ErrInvalidState is returned
		require.ErrorIs(t, err, apperror.ErrInvalidState)
	})

	t.Run("full board", func(t *testing.T) {
		// Given: a drawn, completely filled board
		board := mustBoard(t, [][]int{
			{1, 2, 1},
			{1, 2, 2},
			{2, 1, 1},
		})

		// When: the solver is invoked anyway
		_, err := NextMove(board)

		// Then: ErrInvalidState is returned
		require.ErrorIs(t, err, apperror.ErrInvalidState)
	})
}

// bestHumanMove mirrors the solver from the human's side: it picks the cell
// minimizing the computer's minimax value.
func bestHumanMove(board entity.Board) entity.Move {
	bestScore := math.MaxInt
	var bestMove entity.Move

	for row := range board {
		for col := range board[row] {
			if board[row][col] != entity.CellEmpty {
				continue
			}

			move := entity.Move{Row: row, Col: col}
			if score := minimax(board.WithMove(move, entity.CellHuman), 0, true); score < bestScore {
				bestScore = score
				bestMove = move
			}
		}
	}

	return bestMove
}

func TestNextMove_NeverLosesFromOpenBoard(t *testing.T) {
	// Given: an empty board with the human opening optimally
	var board entity.Board

	// When: both sides play out the game with best play
	for !board.IsTerminal() {
		board = board.WithMove(bestHumanMove(board), entity.CellHuman)
		if board.IsTerminal() {
			break
		}

		move, err := NextMove(board)
		require.NoError(t, err)
		board = board.WithMove(move, entity.CellComputer)
	}

	// Then: the computer never loses; optimal play on both sides is a draw
	require.Equal(t, entity.WinnerDraw, board.Result())
}

func TestNextMove_NeverLosesFromAnyOpening(t *testing.T) {
	// Given: each of the nine possible human opening marks
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			var board entity.Board
			board = board.WithMove(entity.Move{Row: row, Col: col}, entity.CellHuman)

			// When: the game is played out with best play on both sides
			for !board.IsTerminal() {
				move, err := NextMove(board)
				require.NoError(t, err)
				board = board.WithMove(move, entity.CellComputer)

				if board.IsTerminal() {
					break
				}

				board = board.WithMove(bestHumanMove(board), entity.CellHuman)
			}

			// Then: the human never ends up the winner
			require.NotEqual(t, entity.WinnerHuman, board.Result(), "human won after opening (%d,%d)", row, col)
		}
	}
}
