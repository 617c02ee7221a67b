// Package gitignore compiles .gitignore pattern lines into a reusable
// path matcher, reproducing the precedence and glob semantics git
// itself uses.
//
// Each pattern line is translated into a compiled rule (a regular
// expression over slash-normalized relative paths, plus flags for
// negation, directory-only and anchoring). A Matcher evaluates the
// ordered rule sequence with git's last-match-wins semantics: the most
// recently declared matching rule decides, and a negation rule
// re-includes the path.
//
// # Basic Usage
//
//	m, err := gitignore.ParseFile("/repo/.gitignore")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m.Match("/repo/debug.log")          // true if ignored
//	m.MatchIsDir("/repo/build", true)   // explicit directory hint
//
// Or compile raw content anchored to a directory of your choosing:
//
//	m := gitignore.New()
//	m.AddPatterns("/repo", []byte("*.log\n!important.log\nbuild/\n"))
//
// # Anchoring
//
// Every rule carries an absolute base directory (for a parsed file, the
// directory containing it). Queries are resolved relative to each
// rule's base; a path outside a rule's base simply never matches that
// rule. Bases must be absolute — a relative base fails the compile call.
//
// # Directory Hints
//
// A query path ending in a separator is taken as a directory. Without
// the trailing separator, directoryness is probed from the filesystem
// (override the probe via MatcherOptions.DirProbe). MatchIsDir skips
// the probe entirely.
//
// # Supported Syntax
//
//   - Plain names: "debug.log" matches at any depth
//   - Leading /: "/debug.log" matches only at the base
//   - Trailing /: "build/" matches directories (and anything inside)
//   - Single star: "*.log" — * and ? never cross a separator
//   - Double star: "**/logs", "logs/**", "a/**/b"
//   - Character classes: "file[!0-9].txt", "*.py[cod]"
//   - Negation: "!important.log" re-includes a file
//   - Escapes: "\#literal", trailing "\ " keeps a significant space
//   - Comments (#) and blank lines compile to nothing
//
// Malformed lines — three or more consecutive asterisks, a mid-segment
// "**", a bare "/" — also compile to nothing; they are reported as
// ParseWarnings but never affect matching.
//
// # Thread Safety
//
// Compiled rules are immutable. A Matcher is safe for concurrent use;
// loading patterns may interleave with queries, though batching all
// loads first gives the best throughput.
package gitignore
