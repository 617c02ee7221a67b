package gitignore

import (
	"bytes"
	"path/filepath"
	"strings"
)

// splitLines normalizes raw ignore-file content and splits it into
// lines for the compiler.
//
// Normalization steps (applied in order):
//  1. Strip UTF-8 BOM if present (EF BB BF)
//  2. Normalize CRLF to LF (Windows line endings)
//  3. Normalize standalone CR to LF (old Mac format)
//
// This keeps parsing consistent regardless of the file's origin
// platform. Trailing whitespace is NOT trimmed here; the compiler
// handles it per line because escaped trailing spaces are significant.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	// Loop on the BOM strip for idempotency in the face of doubled BOMs.
	for len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))

	return strings.Split(string(content), "\n")
}

// absPath normalizes a candidate query path into the absolute,
// slash-normalized form rules compute their relative paths against.
// A path that cannot be made absolute cannot be resolved against any
// rule's base, so the caller treats it as matching nothing.
func absPath(path string) (string, bool) {
	abs, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(abs), true
}
