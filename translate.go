package gitignore

import (
	"regexp"
	"strings"
)

// Separator used for all matching. Input paths are normalized to forward
// slashes before any rule is tested, so the translator never has to care
// about platform separators.
const sep = "/"

// nonSep matches a single character that is not a path separator.
// This is the "pathname" variant of glob matching: * and ? never cross
// a separator boundary.
const nonSep = "[^/]"

// translateGlob converts a gitignore glob body into a regular expression
// source string. The body must already have negation, anchors and the
// directory marker stripped by parseLine; the flags tell the translator
// how to assemble the final expression.
//
// The scan is a single left-to-right pass with an explicit cursor and
// manual lookahead (needed for ** followed by an optional /). Any
// backtracking is left to the regexp engine; RE2 does it in linear time.
//
// The (?s) flag keeps the expression safe for any input the engine might
// treat specially around newlines. Candidate strings are single paths
// and never contain newlines, but the compiled predicate must not be
// line-restrictive either way. Go's ^ and $ already anchor to the whole
// text (not lines) without (?m), which is exactly what we want.
func translateGlob(body string, dirOnly, negation, anchored bool) string {
	runes := []rune(body)
	n := len(runes)

	var b strings.Builder
	b.WriteString("(?s)")
	if anchored {
		b.WriteString("^")
	}

	i := 0
	for i < n {
		c := runes[i]
		i++

		switch c {
		case '*':
			if i < n && runes[i] == '*' {
				// ** matches anything, including separators.
				i++
				b.WriteString(".*")
				if i < n && runes[i] == '/' {
					// **/ matches zero or more whole segments; the
					// separator itself is optional so "a/**/b" still
					// matches "a/b".
					i++
					b.WriteString(sep + "?")
				}
			} else {
				// Single * (including one at end of input with nothing
				// to look ahead at): zero or more non-separator chars.
				b.WriteString(nonSep + "*")
			}
		case '?':
			b.WriteString(nonSep)
		case '/':
			b.WriteString(sep)
		case '[':
			j := scanClass(runes, i)
			if j >= n {
				// Unterminated class degrades to a literal bracket.
				b.WriteString(`\[`)
			} else {
				b.WriteString(classToRegexp(string(runes[i:j])))
				i = j + 1
			}
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	switch {
	case !dirOnly:
		b.WriteString("$")
	case negation:
		// Negated directory rules are tested against relative paths
		// that have had a trailing separator appended.
		b.WriteString(sep + "$")
	default:
		// A directory pattern also matches everything nested under the
		// directory, so allow a separator where the end would be.
		b.WriteString("(?:$|" + sep + ")")
	}

	return b.String()
}

// scanClass finds the closing bracket of a character class starting at
// runes[i] (just past the opening "["). A leading ! or ^ and an
// immediately following ] are part of the class body, per glob rules.
// Returns len(runes) if the class is unterminated.
func scanClass(runes []rune, i int) int {
	n := len(runes)
	j := i
	if j < n && runes[j] == '!' {
		j++
	}
	if j < n && runes[j] == ']' {
		j++
	}
	for j < n && runes[j] != ']' {
		j++
	}
	return j
}

// classToRegexp rewrites a glob character class body into regexp syntax:
// glob negation (!) becomes regexp negation (^), a literal leading ^ is
// escaped so the engine does not misread it, and backslashes are doubled
// so they stay literal inside the class.
func classToRegexp(body string) string {
	body = strings.ReplaceAll(body, `\`, `\\`)
	if strings.HasPrefix(body, "!") {
		body = "^" + body[1:]
	} else if strings.HasPrefix(body, "^") {
		body = `\` + body
	}
	return "[" + body + "]"
}
