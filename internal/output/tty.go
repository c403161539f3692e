package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
// Non-TTY output (pipes, CI) disables spinners and color chrome.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DisableColors drops all styling down to plain ASCII. Used for
// --no-color and non-TTY output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
