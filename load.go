package gitignore

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ParseFile compiles an ignore file into a Matcher. Rules are anchored
// to the file's parent directory, matching git's treatment of a
// .gitignore next to the files it governs.
func ParseFile(path string) (*Matcher, error) {
	return ParseFileWithBase(path, "")
}

// ParseFileWithBase compiles an ignore file with an explicit anchor
// directory override. An empty base defaults to the file's parent
// directory.
func ParseFileWithBase(path, base string) (*Matcher, error) {
	m := New()
	if err := m.AddFileWithBase(path, base); err != nil {
		return nil, err
	}
	return m, nil
}

// AddFile reads an ignore file and appends its rules, anchored to the
// file's parent directory. Warnings are collected on the matcher (or
// delivered to the WarningHandler, if one is set).
func (m *Matcher) AddFile(path string) error {
	return m.AddFileWithBase(path, "")
}

// AddFileWithBase reads an ignore file and appends its rules with an
// explicit anchor directory. An empty base defaults to the file's
// parent directory.
func (m *Matcher) AddFileWithBase(path, base string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "gitignore: resolving %s", path)
	}
	if base == "" {
		base = filepath.Dir(abs)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return errors.Wrapf(err, "gitignore: reading %s", path)
	}

	_, err = m.addLines(base, abs, content)
	return err
}
