package unstyle

import "strings"

// StripClasses removes every standalone class attribute from markup text,
// for double-quoted, single-quoted, and unquoted values, case-insensitively
// on the attribute name. The removed span covers the whitespace run that
// introduced the attribute through the end of its value; everything outside
// removed spans is returned byte-identical.
//
// The transform is a text scan, not a DOM parse. A literal class= inside a
// script or style string that looks like a markup attribute is a known
// best-effort boundary. Quote matching uses the outer delimiter only; HTML
// entities are not decoded.
//
// Applying StripClasses to its own output returns the text unchanged.
func StripClasses(markup string) string {
	// Removing a span can, on pathological input, butt two fragments into a
	// new attribute token. Iterate to a fixed point so the result is stable.
	for {
		stripped := stripOnce(markup)
		if stripped == markup {
			return stripped
		}
		markup = stripped
	}
}

// stripOnce performs a single left-to-right removal pass.
func stripOnce(markup string) string {
	var b strings.Builder
	b.Grow(len(markup))

	i := 0
	for i < len(markup) {
		if isSpace(markup[i]) {
			if end, ok := matchClassAttr(markup, i); ok {
				i = end
				continue
			}
		}
		b.WriteByte(markup[i])
		i++
	}

	return b.String()
}

// matchClassAttr reports whether a class attribute starts at the whitespace
// run beginning at i, and where it ends. Layout matched:
//
//	<ws>+ class <ws>* = <ws>* ( "..." | '...' | bareword )
//
// Requiring leading whitespace keeps longer attribute names such as
// data-class or classname from matching.
func matchClassAttr(s string, i int) (int, bool) {
	j := i
	for j < len(s) && isSpace(s[j]) {
		j++
	}
	if j == i {
		return 0, false
	}

	const name = "class"
	if len(s)-j < len(name) || !strings.EqualFold(s[j:j+len(name)], name) {
		return 0, false
	}
	j += len(name)

	for j < len(s) && isSpace(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != '=' {
		return 0, false
	}
	j++

	for j < len(s) && isSpace(s[j]) {
		j++
	}
	if j >= len(s) {
		return 0, false
	}

	if quote := s[j]; quote == '"' || quote == '\'' {
		// Quoted value: scan to the matching outer delimiter. The other
		// quote style may appear freely inside. Unterminated values are
		// left alone.
		end := strings.IndexByte(s[j+1:], quote)
		if end < 0 {
			return 0, false
		}
		return j + 1 + end + 1, true
	}

	// Unquoted value, seen in malformed markup.
	k := j
	for k < len(s) && !isSpace(s[k]) && s[k] != '>' {
		k++
	}
	if k == j {
		return 0, false
	}
	return k, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
