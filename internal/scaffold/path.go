package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ResolvePath returns the canonical absolute form of userPath. A path naming
// the current directory is resolved directly. Any other path that does not
// exist is created, one level only: missing parents are an error. Resolving
// the same path twice is idempotent.
func ResolvePath(userPath string) (string, error) {
	if filepath.Clean(userPath) == "." {
		wd, err := os.Getwd()
		if err != nil {
			return "", newPathError(userPath, "reading working directory", err)
		}
		return canonical(userPath, wd)
	}

	info, err := os.Stat(userPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(userPath, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
			return "", newPathError(userPath, "creating directory", err)
		}
	case err != nil:
		return "", newPathError(userPath, "inspecting path", err)
	case !info.IsDir():
		return "", newPathError(userPath, "inspecting path", errors.New("not a directory"))
	}

	return canonical(userPath, userPath)
}

func canonical(userPath, p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", newPathError(userPath, "making path absolute", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newPathError(userPath, "resolving symlinks", err)
	}
	return resolved, nil
}
