package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPlay(t *testing.T) {
	t.Run("Plays a game in memory", func(t *testing.T) {
		// Given: a config without storage where X moves first
		conf := &config.Config{FirstPlayer: "X", NoClear: true}
		var out bytes.Buffer

		// When: X completes the left column
		err := Play(context.Background(), newLogger(), conf, "", strings.NewReader("1 1\n2 1\n1 2\n2 2\n1 3\n"), &out)

		// Then: X wins
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "X has won\n"), out.String())
		assert.NotContains(t, out.String(), "Session:")
	})

	t.Run("Rejects an unknown first player", func(t *testing.T) {
		conf := &config.Config{FirstPlayer: "Z"}

		err := Play(context.Background(), newLogger(), conf, "", strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestPlay_ResumesStoredSession(t *testing.T) {
	ctx, st := suite.New(t)

	host, port, err := net.SplitHostPort(st.Storage.Options().Addr)
	require.NoError(t, err)

	conf := &config.Config{
		FirstPlayer: "O",
		NoClear:     true,
		Redis:       config.Redis{Enabled: true, Host: host, Port: port},
	}

	// Given: a game stopped after O took the center
	var first bytes.Buffer
	require.NoError(t, Play(ctx, st.Logger, conf, "resume-me", strings.NewReader("2 2\n"), &first))
	assert.Contains(t, first.String(), "Session: resume-me\n")

	// When: the same session is played again
	var second bytes.Buffer
	require.NoError(t, Play(ctx, st.Logger, conf, "resume-me", strings.NewReader("1 1\n"), &second))

	// Then: the board is restored and X is to move
	assert.True(t, strings.HasPrefix(second.String(), "Session: resume-me\n 123\n1___\n2_O_\n3___\n\nCurrent move: X\n"), second.String())
	assert.Contains(t, second.String(), "1X__\n2_O_\n")

	// And: the session is still stored
	exists, err := st.Storage.Exists(ctx, "session:resume-me").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}
