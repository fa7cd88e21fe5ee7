package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestPlayer(t *testing.T) {
	t.Run("Next alternates between O and X", func(t *testing.T) {
		assert.Equal(t, PlayerX, PlayerO.Next())
		assert.Equal(t, PlayerO, PlayerX.Next())
	})

	t.Run("Mark matches the player", func(t *testing.T) {
		assert.Equal(t, CellO, PlayerO.Mark())
		assert.Equal(t, CellX, PlayerX.Mark())
	})

	t.Run("Only O and X are valid", func(t *testing.T) {
		assert.True(t, PlayerO.Valid())
		assert.True(t, PlayerX.Valid())
		assert.False(t, Player("").Valid())
		assert.False(t, Player("Z").Valid())
	})
}

func TestParsePlayer(t *testing.T) {
	t.Run("Accepts both players in any case", func(t *testing.T) {
		for input, expected := range map[string]Player{"O": PlayerO, "x": PlayerX, " o ": PlayerO} {
			player, err := ParsePlayer(input)

			require.NoError(t, err)
			assert.Equal(t, expected, player)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, input := range []string{"", "-", "XO", "0"} {
			_, err := ParsePlayer(input)

			assert.ErrorIs(t, err, apperror.ErrInvalidPlayer, "input %q", input)
		}
	})
}

func TestSession_IsFinished(t *testing.T) {
	// Given: a fresh session
	session := NewSession("abc", PlayerO)

	// Then: it is in progress until the game is decided
	assert.False(t, session.IsFinished())
	assert.Equal(t, PlayerO, session.Turn)

	session.Game.SetWinner(PlayerO)
	assert.True(t, session.IsFinished())
}
