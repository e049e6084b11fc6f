package tree

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Include reports whether a directory entry belongs in a snapshot.
//
// Directories whose base name starts with "." are excluded outright (their
// subtree is never entered); every other directory is included. Files are
// matched against the whitelist globs by base name; an empty whitelist
// includes every file. A malformed glob is an error, not a silent skip, so
// the builder fails rather than quietly dropping entries.
func Include(entry fs.DirEntry, include []string) (bool, error) {
	name := entry.Name()

	if entry.IsDir() {
		return !strings.HasPrefix(name, "."), nil
	}

	if len(include) == 0 {
		return true, nil
	}

	for _, pattern := range include {
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return false, errors.Wrapf(err, "include pattern %q", pattern)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
