package cli

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rylanh006/minesweeper/internal/board"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    command
		invalid bool
	}{
		{line: "3 4 r", want: command{x: 3, y: 4, verb: 'r'}},
		{line: "0 0 F", want: command{x: 0, y: 0, verb: 'f'}},
		{line: "  7\t2  R ", want: command{x: 7, y: 2, verb: 'r'}},
		{line: "q", want: command{verb: 'q'}},
		{line: "Q", want: command{verb: 'q'}},
		{line: "", invalid: true},
		{line: "3 4", invalid: true},
		{line: "3 4 r x", invalid: true},
		{line: "a b r", invalid: true},
		{line: "3 b r", invalid: true},
		{line: "3 4 z", invalid: true},
	}

	for _, test := range tests {
		cmd, err := parseCommand(test.line)
		if test.invalid {
			assert.Error(t, err, "line %q", test.line)
		} else {
			require.NoError(t, err, "line %q", test.line)
			assert.Equal(t, test.want, cmd)
		}
	}
}

func mustBoard(t *testing.T, params board.Params) *board.Board {
	t.Helper()
	b, err := board.New(params, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return b
}

func TestSessionWin(t *testing.T) {
	b := mustBoard(t, board.Params{Width: 2, Height: 2, MineCount: 0})
	var out bytes.Buffer
	s := NewSession(b, strings.NewReader("0 0 r\n"), &out)

	require.NoError(t, s.Run())
	assert.True(t, b.GameOver())
	assert.True(t, b.Win())
	assert.Contains(t, out.String(), "you win!")
}

func TestSessionMalformedInput(t *testing.T) {
	b := mustBoard(t, board.Params{Width: 2, Height: 2, MineCount: 0})
	var out bytes.Buffer
	in := strings.NewReader("open please\n1 1\nx y r\n0 0 r\n")
	s := NewSession(b, in, &out)

	require.NoError(t, s.Run())
	// malformed lines were reported and did not mutate the board
	assert.Contains(t, out.String(), "enter a command like")
	assert.Contains(t, out.String(), "must be an int")
	assert.True(t, b.Win())
}

func TestSessionFlagThenQuit(t *testing.T) {
	b := mustBoard(t, board.Beginner)
	var out bytes.Buffer
	s := NewSession(b, strings.NewReader("1 1 f\nq\n"), &out)

	require.NoError(t, s.Run())
	assert.False(t, b.GameOver())
	assert.Equal(t, board.Flagged, b.At(1, 1))
	assert.Contains(t, out.String(), "bye")
}

func TestSessionInputExhausted(t *testing.T) {
	b := mustBoard(t, board.Beginner)
	var out bytes.Buffer
	s := NewSession(b, strings.NewReader(""), &out)

	require.NoError(t, s.Run())
	assert.False(t, b.GameOver())
}
