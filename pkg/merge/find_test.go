package merge

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() fstest.MapFS {
	return fstest.MapFS{
		"a.txt":               {Data: []byte("a")},
		"b.md":                {Data: []byte("b")},
		"notes.txt.bak":       {Data: []byte("bak")},
		"sub/c.txt":           {Data: []byte("c")},
		"sub/deep/d.txt":      {Data: []byte("d")},
		"sub/deep/e.go":       {Data: []byte("e")},
		"folder.txt/f.go":     {Data: []byte("f")},
		"folder.txt/g.txt":    {Data: []byte("g")},
		".hidden/h.txt":       {Data: []byte("h")},
		"sub/[weird].txt":     {Data: []byte("w")},
		"empty.dir.txt/.keep": {Data: nil},
	}
}

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestFindFiles_Recursive(t *testing.T) {
	files, err := FindFiles(testTree(), ".txt", true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		".hidden/h.txt",
		"a.txt",
		"folder.txt/g.txt",
		"sub/[weird].txt",
		"sub/c.txt",
		"sub/deep/d.txt",
	}, sorted(files))
}

func TestFindFiles_NonRecursive(t *testing.T) {
	files, err := FindFiles(testTree(), ".txt", false)
	require.NoError(t, err)

	// Directories named *.txt are never returned.
	assert.Equal(t, []string{"a.txt"}, files)
}

func TestFindFiles_LiteralSuffix(t *testing.T) {
	files, err := FindFiles(testTree(), "].txt", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/[weird].txt"}, files)
}

func TestFindFiles_NoMatches(t *testing.T) {
	files, err := FindFiles(testTree(), ".zzz", true)
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = FindFiles(fstest.MapFS{}, ".txt", true)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFiles_Symlinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), []byte("r"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d", "in.txt"), []byte("i"), 0o644))

	links := map[string]string{
		"link.txt":     "real.txt",
		"dirlink.txt":  "d",
		"dlink":        "d",
		"dangling.txt": "missing.txt",
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
	}
	fsys := os.DirFS(dir)

	// Links to files are followed; a link to a directory is searched but
	// never returned itself, and a dangling link is dropped.
	files, err := FindFiles(fsys, ".txt", true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"d/in.txt",
		"dirlink.txt/in.txt",
		"dlink/in.txt",
		"link.txt",
		"real.txt",
	}, sorted(files))

	files, err = FindFiles(fsys, ".txt", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"link.txt", "real.txt"}, sorted(files))
}
