// Package terminal provides utilities for terminal operations such as prompting
// and clearing text.
package terminal

import (
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"
)

// Width returns the width of stdout, or 80 when it is not a terminal.
func Width() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the
// terminal width, then moves up and clears each line.
//
// This is useful for cleaning up user input prompts after they've been entered.
//
// Parameters:
//   - w: where the escape sequences go
//   - textLength: The total number of characters in the text to clear (prompt + user input)
//   - width: terminal width in columns; values below 1 mean Width()
func ClearPreviousLines(w io.Writer, textLength, width int) {
	if width < 1 {
		width = Width()
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(width)))
	if totalLines < 1 {
		totalLines = 1
	}

	// After Enter, cursor is on a NEW line below the input.
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Fprint(w, "\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Fprint(w, "\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}
