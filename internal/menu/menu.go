// Package menu implements the operation selection UI. Two interchangeable
// front-ends sit behind the Menu interface: a cursor-driven checkbox list
// for real terminals and a numbered line-based fallback for everything
// else. The front-end is picked once per session by Detect; callers stay
// mode-agnostic and receive the same Selection contract either way.
package menu

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Operation identifies one user-selectable transformation.
type Operation int

const (
	// OpStripClasses removes class attributes from markup files.
	OpStripClasses Operation = iota
	// OpClearStylesheets empties stylesheet files.
	OpClearStylesheets
)

// Operations lists every operation in display order.
func Operations() []Operation {
	return []Operation{OpStripClasses, OpClearStylesheets}
}

// Title returns the menu label for the operation.
func (o Operation) Title() string {
	switch o {
	case OpStripClasses:
		return "Remove classes from .html files"
	case OpClearStylesheets:
		return "Clear content from .css and .scss files"
	default:
		return "unknown"
	}
}

// Description returns the one-line help text shown under the label.
func (o Operation) Description() string {
	switch o {
	case OpStripClasses:
		return `Removes all class="..." (and class='...') attributes from HTML elements.`
	case OpClearStylesheets:
		return "Empties all CSS/SCSS files (file contents set to empty)."
	default:
		return ""
	}
}

// Selection maps operations to their selected flag. The zero state has
// every flag false; it is mutated only while the menu session runs and is
// read-only once the user confirms.
type Selection map[Operation]bool

// Any reports whether at least one operation is selected.
func (s Selection) Any() bool {
	for _, on := range s {
		if on {
			return true
		}
	}
	return false
}

// ErrCancelled is returned when the user aborts the menu. No files are
// touched after cancellation.
var ErrCancelled = errors.New("selection cancelled")

// Mode is the front-end chosen for a session.
type Mode int

const (
	// ModeInteractive drives the checkbox list with raw key events.
	ModeInteractive Mode = iota
	// ModeFallback reads numbered toggles from line-buffered input.
	ModeFallback
)

// Detect probes the terminal capability once per session. Raw key input
// needs a real TTY on both ends; anything piped or redirected gets the
// fallback. The result is never re-evaluated mid-session.
func Detect(in, out *os.File) Mode {
	if isatty.IsTerminal(in.Fd()) && isatty.IsTerminal(out.Fd()) {
		return ModeInteractive
	}
	return ModeFallback
}

// Menu presents the operations and collects a Selection. Run blocks until
// the user confirms or cancels; it returns ErrCancelled on abort.
type Menu interface {
	Run() (Selection, error)
}

// New returns the front-end implementation for mode, reading from in and
// writing to out.
func New(mode Mode, in io.Reader, out io.Writer) Menu {
	if mode == ModeInteractive {
		return newInteractive(in, out)
	}
	return newFallback(in, out)
}
