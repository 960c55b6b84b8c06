package merge

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"

	"github.com/mazeserver/devtools/pkg/logging"
)

// Options configures a merge.
type Options struct {
	// FS is the tree searched for input files. Defaults to the current
	// working directory.
	FS fs.FS

	// Suffix is matched against the end of each file's base name.
	Suffix string

	// Output is the path of the merged file, relative to the process working
	// directory rather than FS.
	Output string

	// Exclude lists base names to skip wherever they occur in the tree.
	Exclude []string

	// NoRecursive restricts the search to the root of FS.
	NoRecursive bool

	// Logger receives debug records for each matched, excluded and written
	// file. Defaults to logging.Nop().
	Logger *slog.Logger
}

// Result describes a completed merge.
type Result struct {
	// Files are the merged paths in the order they were written.
	Files []string

	// Output is the path that was written.
	Output string
}

// Count returns the number of merged files.
func (r *Result) Count() int {
	return len(r.Files)
}

// Merge writes every file selected by opts into opts.Output.
//
// It returns ErrNoFiles or ErrAllExcluded without touching the output when
// there is nothing to merge. Failing to create or write the output aborts the
// merge and leaves any bytes already written in place.
func Merge(opts Options) (*Result, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = os.DirFS(".")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	found, err := FindFiles(fsys, opts.Suffix, !opts.NoRecursive)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNoFiles
	}

	files := filterExcluded(found, opts.Exclude, log)
	if len(files) == 0 {
		return nil, ErrAllExcluded
	}
	sort.Strings(files)

	if err := writeMerged(fsys, opts.Output, files, log); err != nil {
		return nil, err
	}
	return &Result{Files: files, Output: opts.Output}, nil
}

// filterExcluded drops paths whose base name is in exclude.
func filterExcluded(paths, exclude []string, log *slog.Logger) []string {
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := skip[path.Base(p)]; ok {
			log.Debug("excluded", "path", p)
			continue
		}
		log.Debug("matched", "path", p)
		kept = append(kept, p)
	}
	return kept
}

func writeMerged(fsys fs.FS, output string, files []string, log *slog.Logger) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return &OutputError{Path: output, Op: "creating", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &OutputError{Path: output, Op: "closing", Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, p := range files {
		text, encoding := readText(fsys, p)
		if encoding == "" {
			log.Warn("unreadable input", "path", p)
		}
		if err := writeEntry(w, path.Base(p), text); err != nil {
			return &OutputError{Path: output, Op: "writing", Err: err}
		}
		log.Debug("wrote", "path", p, "encoding", encoding, "bytes", len(text))
	}
	if err := w.Flush(); err != nil {
		return &OutputError{Path: output, Op: "writing", Err: err}
	}
	return nil
}

// writeEntry writes one block: the header line, the content and a newline.
func writeEntry(w io.Writer, name, content string) error {
	if _, err := fmt.Fprintf(w, "# %s\n", name); err != nil {
		return err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
