package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const winScore = 10

// NextMove returns the optimal cell for the computer on the given board,
// assuming the human answers every line optimally. The caller must check the
// terminal status first: a board that is already decided or full yields
// ErrInvalidState.
func NextMove(board entity.Board) (entity.Move, error) {
	if board.WinnerMark() != entity.CellEmpty {
		return entity.Move{}, fmt.Errorf("%w: board already has a winner", apperror.ErrInvalidState)
	}

	if board.IsFull() {
		return entity.Move{}, fmt.Errorf("%w: board is full", apperror.ErrInvalidState)
	}

	bestScore := math.MinInt
	var bestMove entity.Move

	// Row-major scan with a strict improvement check keeps ties on the
	// first cell reaching the best score, so repeated calls agree.
	for row := range board {
		for col := range board[row] {
			if board[row][col] != entity.CellEmpty {
				continue
			}

			move := entity.Move{Row: row, Col: col}
			score := minimax(board.WithMove(move, entity.CellComputer), 0, false)

			if score > bestScore {
				bestScore = score
				bestMove = move
			}
		}
	}

	return bestMove, nil
}

// minimax walks every remaining line of play. The board argument is a value,
// so marks placed below never leak into sibling branches. Wins are scored
// closer to zero the deeper they land, which makes the computer finish a won
// game as fast as possible and drag out a lost one.
func minimax(board entity.Board, depth int, maximizing bool) int {
	switch board.WinnerMark() {
	case entity.CellComputer:
		return winScore - depth
	case entity.CellHuman:
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for row := range board {
			for col := range board[row] {
				if board[row][col] != entity.CellEmpty {
					continue
				}

				move := entity.Move{Row: row, Col: col}
				if score := minimax(board.WithMove(move, entity.CellComputer), depth+1, false); score > best {
					best = score
				}
			}
		}

		return best
	}

	best := math.MaxInt
	for row := range board {
		for col := range board[row] {
			if board[row][col] != entity.CellEmpty {
				continue
			}

			move := entity.Move{Row: row, Col: col}
			if score := minimax(board.WithMove(move, entity.CellHuman), depth+1, true); score < best {
				best = score
			}
		}
	}

	return best
}
