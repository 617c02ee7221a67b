package gitignore

import (
	"testing"
)

// FuzzAddPatterns fuzzes the whole compile pipeline: arbitrary content
// must never panic, and every line either becomes a rule or is skipped.
func FuzzAddPatterns(f *testing.F) {
	seeds := [][]byte{
		[]byte("*.log"),
		[]byte("build/"),
		[]byte("!important.log"),
		[]byte("**/temp"),
		[]byte("a/**/b"),
		[]byte("foo/**"),
		[]byte("**"),
		[]byte("#comment"),
		[]byte(""),
		[]byte("   "),
		[]byte("\n\n\n"),
		[]byte("!\n"),
		[]byte("/\n"),
		[]byte("***\n"),
		[]byte("a**b\n"),
		[]byte(`\#notcomment`),
		[]byte(`name\ `),
		[]byte("file[!0-9].txt"),
		[]byte("file[.txt"),
		[]byte("[z-a]"),
		[]byte("日本語.txt"),
		[]byte("*test*.go"),
		// BOM
		{0xEF, 0xBB, 0xBF, '*', '.', 'l', 'o', 'g'},
		// CRLF and CR
		[]byte("*.log\r\nbuild/\r\n"),
		[]byte("*.log\rbuild/\r"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, content []byte) {
		m := NewWithOptions(MatcherOptions{DirProbe: func(string) bool { return false }})

		if _, err := m.AddPatterns("/repo", content); err != nil {
			t.Fatalf("AddPatterns with an absolute base must not fail: %v", err)
		}
		_ = m.Warnings()
		_ = m.RuleCount()

		// Whatever compiled must answer queries without panicking.
		for _, p := range []string{"/repo/a.log", "/repo/a/b/c", "/repo", "/elsewhere/x"} {
			m.MatchIsDir(p, false)
			m.MatchIsDir(p, true)
		}
	})
}

// FuzzCompileDeterminism checks that compiling the same line twice
// yields rules with identical matching behavior.
func FuzzCompileDeterminism(f *testing.F) {
	f.Add("*.log", "/repo/debug.log")
	f.Add("a/**/b", "/repo/a/x/b")
	f.Add("file[!0-9].txt", "/repo/fileA.txt")
	f.Add("!keep/", "/repo/keep")

	f.Fuzz(func(t *testing.T, line, path string) {
		first, err1 := CompileLine(line, "/repo", Source{Line: 1})
		second, err2 := CompileLine(line, "/repo", Source{Line: 1})

		if (err1 == nil) != (err2 == nil) || (first == nil) != (second == nil) {
			t.Fatalf("compile of %q not deterministic", line)
		}
		if first == nil {
			return
		}
		for _, isDir := range []bool{false, true} {
			if first.Match(path, isDir) != second.Match(path, isDir) {
				t.Fatalf("rule %q: two compilations disagree on %q (isDir=%v)", line, path, isDir)
			}
		}
	})
}
