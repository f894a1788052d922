package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_LineTrimsAndEchoesPrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  ada@example.com \r\nsecret\n"), &out)

	email, err := c.Line("Email: ")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)

	// Not a terminal: Secret reads a plain line.
	pw, err := c.Secret("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)

	assert.Equal(t, "Email: Password: ", out.String())
}

func TestConsole_LastLineWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("milk"), &bytes.Buffer{})
	s, err := c.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "milk", s)

	_, err = c.Line("> ")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestClearPreviousLines(t *testing.T) {
	var out bytes.Buffer
	ClearPreviousLines(&out, 100, 40)
	// 100 chars over 40 columns is 3 lines, plus the line after Enter.
	assert.Equal(t, 4, strings.Count(out.String(), "\x1b[2K"))
	assert.Equal(t, 3, strings.Count(out.String(), "\x1b[1A"))

	out.Reset()
	ClearPreviousLines(&out, 0, 40)
	assert.Equal(t, 2, strings.Count(out.String(), "\x1b[2K"))
}
