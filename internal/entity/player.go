package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Player is one of the two participants. Unlike Cell it has no empty value,
// so it is the type used to track whose turn it is.
type Player string

const (
	PlayerO Player = "O"
	PlayerX Player = "X"
)

func (that Player) Valid() bool {
	return that == PlayerO || that == PlayerX
}

// Mark - returns the cell value the player leaves on the board.
func (that Player) Mark() Cell {
	if that == PlayerX {
		return CellX
	}
	return CellO
}

func (that Player) Next() Player {
	if that == PlayerO {
		return PlayerX
	}
	return PlayerO
}

func (that Player) String() string {
	return string(that)
}

// ParsePlayer - accepts "O" or "X" in any case.
func ParsePlayer(value string) (Player, error) {
	player := Player(strings.ToUpper(strings.TrimSpace(value)))
	if !player.Valid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, value)
	}

	return player, nil
}
