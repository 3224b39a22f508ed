package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fallbackMenu exposes the same toggle/confirm semantics over line-based
// textual input: a numeric token toggles, an empty line (or "go") confirms,
// "q" cancels. Invalid tokens re-prompt without changing state.
type fallbackMenu struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newFallback(in io.Reader, out io.Writer) Menu {
	return &fallbackMenu{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (f *fallbackMenu) Run() (Selection, error) {
	ops := Operations()
	selected := make(Selection)

	fmt.Fprintln(f.out, "unstyle (fallback mode)")
	fmt.Fprintln(f.out, "Interactive UI not available. Using numbered toggles.")

	for {
		fmt.Fprintln(f.out, "\nOptions:")
		for i, op := range ops {
			box := "[ ]"
			if selected[op] {
				box = "[*]"
			}
			fmt.Fprintf(f.out, "  %d. %s %s\n", i+1, box, op.Title())
		}
		fmt.Fprintf(f.out, "\nCommands: 1-%d toggle, enter/'go' continue, 'q' quit\n", len(ops))
		fmt.Fprint(f.out, "Command: ")

		if !f.scanner.Scan() {
			// EOF counts as an abort.
			return nil, ErrCancelled
		}
		cmd := strings.ToLower(strings.TrimSpace(f.scanner.Text()))

		switch cmd {
		case "q", "quit", "exit":
			return nil, ErrCancelled
		case "", "go", "start", "continue":
			return selected, nil
		default:
			n, err := strconv.Atoi(cmd)
			if err != nil || n < 1 || n > len(ops) {
				fmt.Fprintln(f.out, "Invalid command.")
				continue
			}
			op := ops[n-1]
			selected[op] = !selected[op]
		}
	}
}
