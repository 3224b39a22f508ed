package unstyle

import (
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Clear truncates the stylesheet at path to zero bytes. Failure to open the
// file for writing is reported to the caller as a per-file error; it is
// never fatal to a batch.
func Clear(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("clearing %s: %w", path, err)
	}
	return f.Close()
}

// CountRules lexes CSS/SCSS source and counts its rule blocks, so a clear
// can report what it discarded. Nested blocks (@media and friends) count
// individually. The boolean is false when the source could not be fully
// lexed; the count up to that point is still returned.
func CountRules(src []byte) (int, bool) {
	lexer := css.NewLexer(parse.NewInputBytes(src))

	count := 0
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is the normal end of input.
			return count, lexer.Err() == io.EOF
		}
		if tt == css.LeftBraceToken {
			count++
		}
	}
}
