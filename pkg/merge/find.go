package merge

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFiles returns the slash-separated paths, relative to the root of fsys,
// of regular files whose base name ends with suffix. With recursive set every
// subdirectory is searched, otherwise only the root. The order of the result
// is unspecified.
func FindFiles(fsys fs.FS, suffix string, recursive bool) ([]string, error) {
	pattern := "*"
	if recursive {
		pattern = "**/*"
	}

	// The suffix is matched as a plain string rather than embedded in the
	// pattern so that glob metacharacters in it stay literal.
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("searching for *%s: %w", suffix, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if !strings.HasSuffix(path.Base(m), suffix) {
			continue
		}
		// Stat follows symlinks: a link to a regular file counts, a link to
		// anything else does not.
		info, err := fs.Stat(fsys, m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}
