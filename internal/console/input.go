package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	ErrInvalidInput          = errors.New("input must be two integers")
	ErrCoordinatesOutOfRange = errors.New("coordinates out of range")
)

// ParseMove - reads "x y" where x is the column and y the row, both 1-based,
// and returns 0-based board coordinates.
func ParseMove(line string) (int, int, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d tokens", ErrInvalidInput, len(tokens))
	}

	x, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidInput, tokens[0])
	}

	y, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidInput, tokens[1])
	}

	if x < 1 || x > entity.BoardSize || y < 1 || y > entity.BoardSize {
		return 0, 0, fmt.Errorf("%w: %d %d", ErrCoordinatesOutOfRange, x, y)
	}

	return y - 1, x - 1, nil
}
