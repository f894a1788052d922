package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// ErrNoInput means the input stream ended before an answer was given.
var ErrNoInput = errors.New("no input")

// Prompter asks the user for values.
type Prompter interface {
	// Line reads one line of visible input.
	Line(prompt string) (string, error)
	// Secret reads a value without echoing it when the input is a terminal.
	Secret(prompt string) (string, error)
}

// Console prompts on a reader/writer pair, typically stdin and stdout.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
	// Erase removes a visible prompt and its answer after it is read.
	Erase bool
}

// NewConsole builds a Console. Echo suppression is only possible when in is a
// terminal *os.File; otherwise Secret falls back to Line.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok {
		c.fd = int(f.Fd())
		c.tty = term.IsTerminal(c.fd)
	}
	return c
}

// Stdio is a Console on the process's stdin and stdout.
func Stdio() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

func (c *Console) Line(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	s, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	s = strings.TrimRight(s, "\r\n")
	if c.Erase && c.tty {
		ClearPreviousLines(c.out, len(prompt)+len(s), 0)
	}
	return strings.TrimSpace(s), nil
}

func (c *Console) Secret(prompt string) (string, error) {
	if !c.tty {
		return c.Line(prompt)
	}
	fmt.Fprint(c.out, prompt)
	cursor.Hide()
	b, err := term.ReadPassword(c.fd)
	cursor.Show()
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
