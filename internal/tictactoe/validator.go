package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// ValidateTurn decides whether submitted is a legal successor of prev under
// turn discipline: exactly one new mark, placed by the human, with every
// earlier mark untouched. A nil prev means a brand-new game. The function
// inspects the two snapshots and nothing else.
func ValidateTurn(submitted entity.Board, prev *entity.Board) error {
	if prev == nil {
		return validateOpening(submitted)
	}

	var changed []entity.Move

	for row := range submitted {
		for col := range submitted[row] {
			before := prev[row][col]
			after := submitted[row][col]

			if before == after {
				continue
			}

			if before != entity.CellEmpty {
				return fmt.Errorf("%w: cell (%d,%d)", apperror.ErrPriorMoveAltered, row, col)
			}

			changed = append(changed, entity.Move{Row: row, Col: col})
		}
	}

	if len(changed) == 0 {
		return apperror.ErrNoMoveSubmitted
	}

	if len(changed) > 1 {
		return fmt.Errorf("%w: %d cells changed", apperror.ErrMultipleMovesSubmitted, len(changed))
	}

	move := changed[0]
	if submitted[move.Row][move.Col] != entity.CellHuman {
		return fmt.Errorf("%w: cell (%d,%d)", apperror.ErrWrongMover, move.Row, move.Col)
	}

	return nil
}

// validateOpening applies the degenerate rule set for a game with no stored
// state: exactly one mark, and it is the human's.
func validateOpening(submitted entity.Board) error {
	filled := 0
	computerMarks := 0

	for _, row := range submitted {
		for _, cell := range row {
			if cell != entity.CellEmpty {
				filled++
			}
			if cell == entity.CellComputer {
				computerMarks++
			}
		}
	}

	if filled == 0 {
		return apperror.ErrNoMoveSubmitted
	}

	if filled > 1 {
		return fmt.Errorf("%w: %d cells filled on a new game", apperror.ErrMultipleMovesSubmitted, filled)
	}

	if computerMarks != 0 {
		return fmt.Errorf("%w: a new game cannot open with a computer mark", apperror.ErrWrongMover)
	}

	return nil
}
