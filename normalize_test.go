package gitignore

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    []string
	}{
		{"nil content", nil, nil},
		{"plain LF", []byte("a\nb"), []string{"a", "b"}},
		{"CRLF", []byte("a\r\nb\r\n"), []string{"a", "b", ""}},
		{"CR only", []byte("a\rb"), []string{"a", "b"}},
		{"BOM stripped", []byte{0xEF, 0xBB, 0xBF, 'a'}, []string{"a"}},
		{"doubled BOM stripped", []byte{0xEF, 0xBB, 0xBF, 0xEF, 0xBB, 0xBF, 'a'}, []string{"a"}},
		{"BOM only", []byte{0xEF, 0xBB, 0xBF}, []string{""}},
		{"trailing whitespace kept", []byte("a  \nb"), []string{"a  ", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.content); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestNormalizeBase(t *testing.T) {
	t.Run("rejects relative", func(t *testing.T) {
		if _, err := normalizeBase("relative/dir"); err == nil {
			t.Fatal("expected an error")
		}
	})

	tests := []struct {
		in   string
		want string
	}{
		{"/repo", "/repo"},
		{"/repo/", "/repo"},
		{"/repo//sub/", "/repo/sub"},
		{"/repo/./sub", "/repo/sub"},
		{"/", "/"},
	}
	for _, tt := range tests {
		got, err := normalizeBase(tt.in)
		if err != nil {
			t.Errorf("normalizeBase(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeBase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		path string
		base string
		rel  string
		ok   bool
	}{
		{"/repo/a/b.txt", "/repo", "a/b.txt", true},
		{"/repo", "/repo", "", true},
		{"/repo2/a", "/repo", "", false},
		{"/other/a", "/repo", "", false},
		{"/a", "/", "a", true},
	}
	for _, tt := range tests {
		rel, ok := relativeTo(tt.path, tt.base)
		if ok != tt.ok || rel != tt.rel {
			t.Errorf("relativeTo(%q, %q) = (%q, %v), want (%q, %v)",
				tt.path, tt.base, rel, ok, tt.rel, tt.ok)
		}
	}
}

func TestAbsPath(t *testing.T) {
	got, ok := absPath("/already/abs")
	if !ok || got != "/already/abs" {
		t.Errorf("absPath(/already/abs) = (%q, %v)", got, ok)
	}

	// Trailing separators are cleaned away; the directory hint is
	// resolved before normalization.
	got, ok = absPath("/dir/")
	if !ok || got != "/dir" {
		t.Errorf("absPath(/dir/) = (%q, %v)", got, ok)
	}

	// Relative input resolves against the working directory.
	got, ok = absPath("rel.txt")
	if !ok || got == "rel.txt" || got[0] != '/' {
		t.Errorf("absPath(rel.txt) = (%q, %v), want an absolute path", got, ok)
	}
}
