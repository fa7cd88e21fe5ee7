package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 3

// Cell is the content of one board position.
type Cell string

const (
	CellEmpty Cell = ""
	CellO     Cell = "O"
	CellX     Cell = "X"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

var (
	mainDiagonal = [3]int{0, 4, 8}
	antiDiagonal = [3]int{2, 4, 6}
)

// Game holds the board and the winner once one is known. Whose turn it is
// is tracked by the caller, see Session.
type Game struct {
	Board  [BoardSize * BoardSize]Cell `json:"board"`
	Winner *Player                     `json:"winner,omitempty"`
}

func NewGame() *Game {
	return &Game{}
}

// ValidateMove - checks that (row, col) is on the board and still empty.
func (that *Game) ValidateMove(row, col int) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if that.Board[index(row, col)] != CellEmpty {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

func (that *Game) IsLegalMove(row, col int) bool {
	return that.ValidateMove(row, col) == nil
}

// ApplyMove - puts the player's mark on (row, col). Occupied cells are never overwritten.
func (that *Game) ApplyMove(row, col int, player Player) error {
	if that.HasWinner() {
		return apperror.ErrGameFinished
	}

	if !player.Valid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	if err := that.ValidateMove(row, col); err != nil {
		return err
	}

	that.Board[index(row, col)] = player.Mark()

	return nil
}

// CheckForWin - reports whether the move at (row, col) completed a line.
// Only the lines through that cell are inspected, so it has to be called
// right after ApplyMove with the same coordinates.
func (that *Game) CheckForWin(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}

	for _, line := range linesThrough(row, col) {
		a, b, c := that.Board[line[0]], that.Board[line[1]], that.Board[line[2]]
		if a != CellEmpty && a == b && b == c {
			return true
		}
	}

	return false
}

// CheckForDraw - reports whether every cell is taken. It does not look for a winner.
func (that *Game) CheckForDraw() bool {
	for _, cell := range that.Board {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

func (that *Game) SetWinner(player Player) {
	that.Winner = &player
}

func (that *Game) HasWinner() bool {
	return that.Winner != nil
}

func (that *Game) Status() Status {
	switch {
	case that.HasWinner():
		return StatusWon
	case that.CheckForDraw():
		return StatusDrawn
	default:
		return StatusInProgress
	}
}

func (that *Game) Cell(row, col int) (Cell, error) {
	if !inBounds(row, col) {
		return CellEmpty, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return that.Board[index(row, col)], nil
}

// Render - draws the board with 1-based row and column labels, for example:
//
//	 123
//	1X_O
//	2O_X
//	3OXO
func (that *Game) Render() string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := range BoardSize {
		sb.WriteString(strconv.Itoa(col + 1))
	}
	sb.WriteString("\n")

	for row := range BoardSize {
		sb.WriteString(strconv.Itoa(row + 1))
		for col := range BoardSize {
			if cell := that.Board[index(row, col)]; cell == CellEmpty {
				sb.WriteString("_")
			} else {
				sb.WriteString(string(cell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// linesThrough - returns the row, the column and every diagonal containing (row, col).
// The center lies on both diagonals.
func linesThrough(row, col int) [][3]int {
	lines := [][3]int{
		{index(row, 0), index(row, 1), index(row, 2)},
		{index(0, col), index(1, col), index(2, col)},
	}

	if row == col {
		lines = append(lines, mainDiagonal)
	}

	if row+col == BoardSize-1 {
		lines = append(lines, antiDiagonal)
	}

	return lines
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func index(row, col int) int {
	return row*BoardSize + col
}
