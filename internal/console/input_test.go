package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("Column comes first, row second", func(t *testing.T) {
		cases := map[string][2]int{
			"1 1":       {0, 0},
			"3 1":       {0, 2},
			"1 3":       {2, 0},
			"2 3":       {2, 1},
			"  3\t3  \n": {2, 2},
		}

		for line, expected := range cases {
			row, col, err := ParseMove(line)

			require.NoError(t, err, "line %q", line)
			assert.Equal(t, expected, [2]int{row, col}, "line %q", line)
		}
	})

	t.Run("Rejects anything but two integers", func(t *testing.T) {
		for _, line := range []string{"", "   ", "1", "1 2 3", "a 1", "1 b", "1.5 2", "one two"} {
			_, _, err := ParseMove(line)

			assert.ErrorIs(t, err, ErrInvalidInput, "line %q", line)
		}
	})

	t.Run("Rejects coordinates outside 1..3", func(t *testing.T) {
		for _, line := range []string{"0 1", "1 0", "4 1", "1 4", "4 4", "-1 2", "10 2"} {
			_, _, err := ParseMove(line)

			assert.ErrorIs(t, err, ErrCoordinatesOutOfRange, "line %q", line)
		}
	})
}
