package gitignore

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// AddGlobalPatterns loads the user's global gitignore file and appends
// its rules, anchored to the given absolute base directory (typically
// the root of the tree being matched — git applies global patterns to
// every path under the work tree). The global gitignore path is
// resolved in order:
//
//  1. git config --global core.excludesFile (if git is available)
//  2. $XDG_CONFIG_HOME/git/ignore (if XDG_CONFIG_HOME is set)
//  3. ~/.config/git/ignore (default fallback)
//
// A resolved file that does not exist is not an error; only real read
// failures are reported.
func (m *Matcher) AddGlobalPatterns(base string) error {
	path, err := resolveGlobalIgnorePath()
	if err != nil {
		return errors.Wrap(err, "gitignore: resolving global gitignore path")
	}
	if path == "" {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "gitignore: reading global gitignore %s", path)
	}

	_, err = m.addLines(base, path, content)
	return err
}

// resolveGlobalIgnorePath determines the path to the global gitignore
// file, trying git config first and falling back to XDG conventions.
// Returns an empty string if no path can be determined.
func resolveGlobalIgnorePath() (string, error) {
	path, err := gitConfigExcludesFile()
	if err != nil {
		return "", err
	}
	if path != "" {
		return path, nil
	}
	return xdgGlobalIgnorePath()
}

// gitConfigExcludesFile reads the global core.excludesFile from git
// config. Returns empty string if git is not available or the key is
// not set; neither is an error.
func gitConfigExcludesFile() (string, error) {
	out, err := exec.Command("git", "config", "--global", "core.excludesFile").Output()
	if err != nil {
		return "", nil
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", nil
	}
	return expandTilde(path)
}

// xdgGlobalIgnorePath returns the XDG-based global gitignore path:
// $XDG_CONFIG_HOME/git/ignore if set, otherwise ~/.config/git/ignore.
func xdgGlobalIgnorePath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "determining home directory")
	}
	return filepath.Join(home, ".config", "git", "ignore"), nil
}

// expandTilde expands ~ and ~user prefixes in a path.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	var userPart, rest string
	if i := strings.IndexByte(path, '/'); i >= 0 {
		userPart = path[:i]
		rest = path[i:]
	} else {
		userPart = path
	}

	var homeDir string
	if userPart == "~" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "expanding ~")
		}
		homeDir = dir
	} else {
		u, err := user.Lookup(userPart[1:])
		if err != nil {
			return "", errors.Wrapf(err, "expanding %s", userPart)
		}
		homeDir = u.HomeDir
	}

	return homeDir + rest, nil
}
