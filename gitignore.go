package gitignore

import (
	"os"
	"strings"
	"sync"
)

// MatchResult provides detailed information about a match decision.
type MatchResult struct {
	// Rule is the pattern string of the decisive rule (empty if
	// Matched == false).
	Rule string

	// Source is the decisive rule's origin (zero if Matched == false).
	Source Source

	// Ignored is the final decision: true if the path should be
	// ignored. This accounts for negation rules.
	Ignored bool

	// Matched reports whether any rule matched the path. If false, no
	// rule applied and the path is not ignored (the default).
	Matched bool

	// Negated reports whether the decisive rule was a negation
	// (started with !). When Negated and Matched, the path was
	// re-included.
	Negated bool
}

// WarningHandler is called for each parse warning if set.
type WarningHandler func(warning ParseWarning)

// MatcherOptions configures Matcher behavior.
type MatcherOptions struct {
	// DirProbe reports whether a path is a directory. It is consulted
	// only when a query carries no explicit directory hint. Defaults to
	// an os.Stat probe.
	DirProbe func(path string) bool
}

// Matcher holds an ordered sequence of compiled gitignore rules and
// answers ignored/not-ignored queries against it.
//
// Rules are immutable once compiled, so concurrent queries never
// contend on anything but the rule slice itself; the lock exists only
// so AddPatterns/AddFile may safely interleave with queries. For best
// throughput, load all patterns before querying concurrently.
type Matcher struct {
	mu       sync.RWMutex
	rules    []Rule
	warnings []ParseWarning
	handler  WarningHandler
	opts     MatcherOptions
}

// New creates an empty Matcher with default options.
func New() *Matcher {
	return NewWithOptions(MatcherOptions{})
}

// NewWithOptions creates a Matcher with custom options.
func NewWithOptions(opts MatcherOptions) *Matcher {
	if opts.DirProbe == nil {
		opts.DirProbe = statDirProbe
	}
	return &Matcher{opts: opts}
}

// statDirProbe is the default filesystem collaborator for directory
// probing. A path that cannot be stat'ed is treated as a file.
func statDirProbe(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SetWarningHandler sets a callback for parse warnings. If set,
// warnings are delivered to the callback instead of being collected.
// Call it before loading patterns; patterns already loaded keep their
// collected warnings.
func (m *Matcher) SetWarningHandler(fn WarningHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = fn
}

// AddPatterns compiles gitignore content and appends its rules.
// base is the absolute directory the rules are anchored to (for a
// .gitignore file, the directory containing it); a non-absolute base is
// a caller contract violation and fails the whole call with no rules
// added.
//
// Content normalization (applied automatically): UTF-8 BOM stripped,
// CRLF and CR line endings normalized to LF. Line numbers are 1-based.
//
// Returns warnings for malformed lines unless a WarningHandler is set,
// in which case warnings go to the handler.
func (m *Matcher) AddPatterns(base string, content []byte) ([]ParseWarning, error) {
	return m.addLines(base, "", content)
}

// addLines is the shared compile loop behind AddPatterns and AddFile.
// origin tags rules and warnings with the ignore file they came from.
func (m *Matcher) addLines(base, origin string, content []byte) ([]ParseWarning, error) {
	base, err := normalizeBase(base)
	if err != nil {
		return nil, err
	}

	var rules []Rule
	var warnings []ParseWarning
	for i, line := range splitLines(content) {
		src := Source{File: origin, Line: i + 1}
		r, w := parseLine(line, base, src)
		if w != nil {
			warnings = append(warnings, *w)
		}
		if r != nil {
			rules = append(rules, *r)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.rules = append(m.rules, rules...)

	if m.handler != nil {
		for _, w := range warnings {
			m.handler(w)
		}
		return nil, nil
	}
	m.warnings = append(m.warnings, warnings...)
	return warnings, nil
}

// Warnings returns all collected parse warnings. Only populated if no
// WarningHandler was set.
func (m *Matcher) Warnings() []ParseWarning {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.warnings) == 0 {
		return nil
	}
	out := make([]ParseWarning, len(m.warnings))
	copy(out, m.warnings)
	return out
}

// Match reports whether the path should be ignored. The path may be
// absolute or relative to the current directory. A trailing separator
// is an explicit "this is a directory" hint; without one, directoryness
// is probed from the filesystem collaborator.
//
// Thread-safe: can be called concurrently.
func (m *Matcher) Match(path string) bool {
	return m.matchReason(path, m.isDirHint(path)).Ignored
}

// MatchIsDir is Match with an explicit directory hint, for callers that
// already know (for example from a directory walk) whether the path is
// a directory. No filesystem access happens on this route.
func (m *Matcher) MatchIsDir(path string, isDir bool) bool {
	return m.matchReason(path, isDir).Ignored
}

// MatchWithReason returns detailed information about why a path
// matched, naming the decisive rule and its source. Useful for
// debugging complex ignore setups.
func (m *Matcher) MatchWithReason(path string, isDir bool) MatchResult {
	return m.matchReason(path, isDir)
}

// isDirHint resolves the directory hint for a raw query path: a
// trailing separator is explicit, anything else is probed. Only
// string-shaped input carries the trailing-separator convention.
func (m *Matcher) isDirHint(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return true
	}
	return m.opts.DirProbe(path)
}

// matchReason walks the rules in reverse declaration order and stops at
// the first rule that matches: ignore-file semantics are last-rule-wins,
// and scanning backwards makes the first hit the decisive one. A
// matching negation rule means "not ignored"; no match at all means the
// same by default.
func (m *Matcher) matchReason(path string, isDir bool) MatchResult {
	abs, ok := absPath(path)
	if !ok {
		return MatchResult{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.rules) - 1; i >= 0; i-- {
		r := &m.rules[i]
		if !r.Match(abs, isDir) {
			continue
		}
		return MatchResult{
			Rule:    r.Pattern,
			Source:  r.Source,
			Ignored: !r.Negation,
			Matched: true,
			Negated: r.Negation,
		}
	}
	return MatchResult{}
}

// Filter returns the paths that are not ignored, preserving order.
// Directoryness is resolved per path exactly as in Match.
func (m *Matcher) Filter(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !m.Match(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// RuleCount returns the number of rules currently loaded.
func (m *Matcher) RuleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rules)
}

// Rules returns a copy of the compiled rule sequence, in declaration
// order. Intended for diagnostics and tooling.
func (m *Matcher) Rules() []Rule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}
