package merge

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMerge_OrdersByPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	fsys := fstest.MapFS{
		"b.txt": {Data: []byte("beta")},
		"a.txt": {Data: []byte("alpha")},
	}

	res, err := Merge(Options{FS: fsys, Suffix: ".txt", Output: out})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count())
	assert.Equal(t, out, res.Output)
	assert.Equal(t, "# a.txt\nalpha\n# b.txt\nbeta\n", readOutput(t, out))
}

func TestMerge_SortsFullRelativePaths(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	fsys := fstest.MapFS{
		"zeta.txt":    {Data: []byte("z\n")},
		"a/y.txt":     {Data: []byte("y\n")},
		"B.txt":       {Data: []byte("B\n")},
		"a/b/x.txt":   {Data: []byte("x\n")},
		"a/b/x.other": {Data: []byte("ignored\n")},
	}

	res, err := Merge(Options{FS: fsys, Suffix: ".txt", Output: out})
	require.NoError(t, err)

	// Ordering follows the path string, not the base name.
	assert.Equal(t, []string{"B.txt", "a/b/x.txt", "a/y.txt", "zeta.txt"}, res.Files)
	assert.Equal(t, "# B.txt\nB\n\n# x.txt\nx\n\n# y.txt\ny\n\n# zeta.txt\nz\n\n", readOutput(t, out))
}

func TestMerge_ExcludesByBaseName(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	fsys := fstest.MapFS{
		"sub/dir/keep.txt": {Data: []byte("excluded")},
		"keep.txt":         {Data: []byte("also excluded")},
		"other.txt":        {Data: []byte("kept")},
	}

	res, err := Merge(Options{
		FS:      fsys,
		Suffix:  ".txt",
		Output:  out,
		Exclude: []string{"keep.txt", "sub/dir/other.txt"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"other.txt"}, res.Files)
	assert.Equal(t, "# other.txt\nkept\n", readOutput(t, out))
}

func TestMerge_NoRecursive(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	fsys := fstest.MapFS{
		"top.txt":    {Data: []byte("top")},
		"sub/in.txt": {Data: []byte("nested")},
	}

	res, err := Merge(Options{FS: fsys, Suffix: ".txt", Output: out, NoRecursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"top.txt"}, res.Files)
}

func TestMerge_NoFilesLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	_, err := Merge(Options{FS: fstest.MapFS{}, Suffix: ".zzz", Output: out})
	require.ErrorIs(t, err, ErrNoFiles)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output should not be created")

	// An existing output keeps its content.
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))
	_, err = Merge(Options{FS: fstest.MapFS{"a.txt": {}}, Suffix: ".zzz", Output: out})
	require.ErrorIs(t, err, ErrNoFiles)
	assert.Equal(t, "previous", readOutput(t, out))
}

func TestMerge_AllExcludedLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	fsys := fstest.MapFS{
		"a.txt":     {Data: []byte("a")},
		"sub/a.txt": {Data: []byte("a again")},
	}
	_, err := Merge(Options{FS: fsys, Suffix: ".txt", Output: out, Exclude: []string{"a.txt"}})
	require.ErrorIs(t, err, ErrAllExcluded)
	assert.Equal(t, "previous", readOutput(t, out))
}

func TestMerge_UnreadableInputBecomesPlaceholder(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	fsys := fstest.MapFS{
		"a.txt": {Data: []byte{0xff, 0xff}},
		"b.txt": {Data: []byte("fine")},
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := Merge(Options{FS: fsys, Suffix: ".txt", Output: out, Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count())
	assert.Equal(t,
		"# a.txt\n[error: cannot read file a.txt, it may not be a text file]\n# b.txt\nfine\n",
		readOutput(t, out))
	assert.Contains(t, logs.String(), "unreadable input")
	assert.Contains(t, logs.String(), "encoding=utf-8")
}

func TestMerge_TruncatesExistingOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("a much longer previous content\n"), 0o644))

	_, err := Merge(Options{FS: fstest.MapFS{"a.txt": {Data: []byte("x")}}, Suffix: ".txt", Output: out})
	require.NoError(t, err)
	assert.Equal(t, "# a.txt\nx\n", readOutput(t, out))
}

func TestMerge_OutputCreateError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "dir", "out.txt")

	_, err := Merge(Options{FS: fstest.MapFS{"a.txt": {Data: []byte("x")}}, Suffix: ".txt", Output: out})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoFiles))
	assert.Contains(t, err.Error(), "creating")

	var outErr *OutputError
	require.True(t, errors.As(err, &outErr))
	assert.Equal(t, out, outErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMerge_DefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.log"), []byte("1"), 0o644))
	chdir(t, dir)

	res, err := Merge(Options{Suffix: ".log", Output: "merged.out"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one.log"}, res.Files)
	assert.Equal(t, "# one.log\n1\n", readOutput(t, filepath.Join(dir, "merged.out")))
}
