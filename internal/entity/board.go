package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Cell is a single board position value.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellHuman
	CellComputer
)

const BoardSize = 3

const (
	WinnerNone     = "none"
	WinnerDraw     = "draw"
	WinnerHuman    = "human"
	WinnerComputer = "computer"
)

// Board is the full 3x3 game state. It is a value type: assignment copies
// the whole grid, so no two holders ever share cells.
type Board [BoardSize][BoardSize]Cell

// Move identifies the cell a player marks.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var winLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// NewBoard builds a Board from a raw client matrix. Anything that is not a
// 3x3 grid of {0,1,2} is rejected before the rest of the engine sees it.
func NewBoard(cells [][]int) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrMalformedBoard, BoardSize, len(cells))
	}

	for row, line := range cells {
		if len(line) != BoardSize {
			return board, fmt.Errorf("%w: row %d has %d columns", apperror.ErrMalformedBoard, row, len(line))
		}

		for col, value := range line {
			if value < int(CellEmpty) || value > int(CellComputer) {
				return board, fmt.Errorf("%w: cell (%d,%d) holds %d", apperror.ErrMalformedBoard, row, col, value)
			}

			board[row][col] = Cell(value)
		}
	}

	return board, nil
}

// WithMove returns a copy of the board with one cell set. The receiver is
// left untouched.
func (that Board) WithMove(move Move, mark Cell) Board {
	that[move.Row][move.Col] = mark
	return that
}

// WinnerMark returns the mark holding a completed line, or CellEmpty when
// no line is complete.
func (that Board) WinnerMark() Cell {
	for _, line := range winLines {
		a := that[line[0].Row][line[0].Col]
		b := that[line[1].Row][line[1].Col]
		c := that[line[2].Row][line[2].Col]

		if a != CellEmpty && a == b && b == c {
			return a
		}
	}

	return CellEmpty
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

// IsTerminal reports whether the game on this board is over, either by a
// completed line or by a full board.
func (that Board) IsTerminal() bool {
	return that.WinnerMark() != CellEmpty || that.IsFull()
}

// Result names the outcome of the board: WinnerNone while play continues,
// otherwise who won or WinnerDraw.
func (that Board) Result() string {
	switch that.WinnerMark() {
	case CellHuman:
		return WinnerHuman
	case CellComputer:
		return WinnerComputer
	}

	if that.IsFull() {
		return WinnerDraw
	}

	return WinnerNone
}
