package gitignore

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Source identifies where a rule came from, for diagnostics only.
type Source struct {
	File string // ignore file path (empty if compiled from raw content)
	Line int    // 1-indexed line number
}

// Rule is a single compiled gitignore pattern. Rules are immutable value
// records distinguished only by their flags; they never touch the
// filesystem — the compiled predicate runs on path text alone.
type Rule struct {
	// Pattern is the original, unmodified line text, kept for
	// diagnostics and display.
	Pattern string

	// Negation re-includes matching paths instead of ignoring them.
	// It inverts the outcome of a match, not the predicate itself.
	Negation bool

	// DirOnly restricts the rule to paths known to be directories.
	DirOnly bool

	// Anchored roots the match at the start of the relative path
	// instead of allowing it at any depth.
	Anchored bool

	// BasePath is the absolute directory the rule's relative-path
	// computation is anchored to.
	BasePath string

	// Source tags the rule's origin for diagnostics.
	Source Source

	re *regexp.Regexp
}

// ParseWarning describes a nonblank line that was rejected during
// parsing. Warnings are purely diagnostic; a rejected line contributes
// no rule and has zero effect on matching.
type ParseWarning struct {
	Pattern string // the problematic line
	Message string // human-readable reason
	Line    int    // 1-indexed line number
	File    string // ignore file path (empty if compiled from raw content)
}

// CompileLine compiles one raw ignore-file line into a Rule. It returns
// (nil, nil) for lines that produce no rule: blanks, comments, and
// malformed patterns (three or more consecutive asterisks, mid-segment
// double asterisks, a bare "/").
//
// base must be an absolute directory; anything else is a caller contract
// violation and fails the compile. src tags the rule for diagnostics.
func CompileLine(line, base string, src Source) (*Rule, error) {
	base, err := normalizeBase(base)
	if err != nil {
		return nil, err
	}
	r, _ := parseLine(line, base, src)
	return r, nil
}

// normalizeBase validates and normalizes a rule anchor directory.
// The absolute-path precondition is the only hard failure in the whole
// compile path; everything else degrades to "no rule".
func normalizeBase(base string) (string, error) {
	if !filepath.IsAbs(base) {
		return "", errors.Errorf("gitignore: base path %q is not absolute", base)
	}
	base = filepath.ToSlash(filepath.Clean(base))
	if len(base) > 1 {
		base = strings.TrimSuffix(base, "/")
	}
	return base, nil
}

// parseLine parses a single ignore-file line. base must already be
// validated by normalizeBase. Returns a nil rule for lines that produce
// none, plus a warning when the line was nonblank but rejected.
func parseLine(line, base string, src Source) (*Rule, *ParseWarning) {
	original := line

	// Blank lines and comments are skipped silently. A leading \# is an
	// escaped hash, not a comment; the escape is stripped further down.
	if strings.TrimSpace(line) == "" || line[0] == '#' {
		return nil, nil
	}

	// Three or more consecutive asterisks void the whole line.
	if strings.Contains(line, "***") {
		return nil, warn(original, src, "three or more consecutive asterisks")
	}

	// Strip the negation marker before examining double asterisks.
	negation := line[0] == '!'
	if negation {
		line = line[1:]
	}
	if line == "" {
		return nil, warn(original, src, "pattern is empty after processing")
	}

	// ** may appear at the very start, at the very end, or surrounded
	// by slashes. Anywhere else it voids the line.
	for at := strings.Index(line, "**"); at >= 0; {
		if at != 0 && at != len(line)-2 && (line[at-1] != '/' || line[at+2] != '/') {
			return nil, warn(original, src, "double asterisk must be at the start, at the end, or between slashes")
		}
		next := strings.Index(line[at+2:], "**")
		if next < 0 {
			break
		}
		at += 2 + next
	}

	// A bare "/" matches nothing by git convention.
	if strings.TrimRight(line, " \t") == "/" {
		return nil, warn(original, src, `pattern "/" matches nothing`)
	}

	dirOnly := strings.HasSuffix(line, "/")

	// An internal slash (anywhere before the final character) roots the
	// pattern to its anchor directory.
	anchored := strings.Contains(line[:len(line)-1], "/")

	// Strip the root anchor marker; anchoring was already decided above.
	line = strings.TrimPrefix(line, "/")

	// A leading **/ means "at any depth" and cancels anchoring, even
	// when an internal slash was also present.
	if strings.HasPrefix(line, "**") {
		line = line[2:]
		anchored = false
	}
	line = strings.TrimPrefix(line, "/")
	line = strings.TrimSuffix(line, "/")

	// Unescape a leading \# (kept literal, not a comment).
	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	// Trailing unescaped whitespace is insignificant. A trailing
	// escaped space (\ ) survives as exactly one literal space.
	line = strings.TrimRight(line, " \t")
	if strings.HasSuffix(line, `\`) {
		line = line[:len(line)-1] + " "
	}

	// An empty body at this point (for example a bare "**") compiles to
	// a match-everything rule, like the reference behavior.

	// A class like [z-a] is valid glob text but an invalid regexp
	// range; such lines degrade to "no rule" like any other malformed
	// pattern.
	re, err := regexp.Compile(translateGlob(line, dirOnly, negation, anchored))
	if err != nil {
		return nil, warn(original, src, "unmatchable character class")
	}

	return &Rule{
		Pattern:  original,
		Negation: negation,
		DirOnly:  dirOnly,
		Anchored: anchored,
		BasePath: base,
		Source:   src,
		re:       re,
	}, nil
}

func warn(pattern string, src Source, msg string) *ParseWarning {
	return &ParseWarning{
		Pattern: pattern,
		Message: msg,
		Line:    src.Line,
		File:    src.File,
	}
}

// Match reports whether the rule's predicate matches the given absolute,
// slash-normalized candidate path. A candidate outside the rule's base
// simply does not apply.
func (r *Rule) Match(absPath string, isDir bool) bool {
	rel, ok := relativeTo(absPath, r.BasePath)
	if !ok {
		return false
	}
	if r.Negation && isDir {
		// Negated directory predicates were compiled expecting a
		// trailing separator.
		rel += "/"
	}

	loc := r.re.FindStringIndex(rel)
	if loc == nil {
		return false
	}
	if r.DirOnly && !r.Negation && !isDir {
		// A directory-only rule applies to a file only when the file
		// is nested under the matched directory, which is exactly when
		// the predicate matched through the separator branch of its
		// suffix. A match ending at end-of-string names the file
		// itself, and files never match directory-only rules.
		return loc[1] > 0 && rel[loc[1]-1] == '/'
	}
	return true
}

// relativeTo computes path relative to base, both absolute and
// slash-normalized. ok is false when path is not inside base or the
// relation cannot be computed.
func relativeTo(path, base string) (rel string, ok bool) {
	rel, err := filepath.Rel(filepath.FromSlash(base), filepath.FromSlash(path))
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	if rel == "." {
		rel = ""
	}
	return rel, true
}

// String returns a debug rendering of the rule: the original pattern
// plus its flags and anchor.
func (r *Rule) String() string {
	var flags []string
	if r.Negation {
		flags = append(flags, "negation")
	}
	if r.DirOnly {
		flags = append(flags, "dirOnly")
	}
	if r.Anchored {
		flags = append(flags, "anchored")
	}

	s := r.Pattern
	if len(flags) > 0 {
		s += " [" + strings.Join(flags, ",") + "]"
	}
	return s + " @" + r.BasePath
}
