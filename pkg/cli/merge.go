package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mazeserver/devtools/pkg/cli/internal/flags"
	"github.com/mazeserver/devtools/pkg/logging"
	"github.com/mazeserver/devtools/pkg/merge"
	"github.com/spf13/cobra"
)

type mergeFlags struct {
	exclude     flags.StringSlice
	noRecursive bool
	dir         string
	verbose     bool
}

// NewMergeCommand returns the filemerge root command.
func NewMergeCommand() *cobra.Command {
	var f mergeFlags

	cmd := &cobra.Command{
		Use:   "filemerge <suffix> <output>",
		Short: "Concatenate files sharing a suffix into one output file",
		Long: `filemerge finds every file whose name ends with <suffix>, skips those whose
base name is excluded, sorts the rest by path and writes them to <output>,
each preceded by a "# <name>" header line.

Subdirectories are searched unless --no-recursive is given. Files that are
neither UTF-8 nor GBK text are replaced by a placeholder line.`,
		Example: `  # Merge every .txt file below the current directory
  filemerge .txt merged.txt

  # Skip two files, searching only the top directory
  filemerge .py all.py --no-recursive -e setup.py conftest.py`,
		Args:    mergeArgs,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments after the first two are further excluded names.
			f.exclude = append(f.exclude, args[2:]...)
			runMerge(cmd, args[0], args[1], &f)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.VarP(&f.exclude, "exclude", "e", "Base names to skip; repeatable, and any arguments after <output> are skipped too")
	fl.BoolVar(&f.noRecursive, "no-recursive", false, "Do not search subdirectories")
	fl.StringVarP(&f.dir, "dir", "C", ".", "Directory to search")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log each matched, excluded and written file to stderr")

	// "version" is a valid <suffix>, so there is no version subcommand here.
	return newRoot(cmd)
}

// mergeArgs requires <suffix> and <output>. Further arguments are only
// accepted as extra names for --exclude, so that -e a.txt b.txt works.
func mergeArgs(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("exclude") {
		return cobra.MinimumNArgs(2)(cmd, args)
	}
	return cobra.ExactArgs(2)(cmd, args)
}

// runMerge performs the merge and reports the outcome on stdout. None of the
// outcomes change the exit status.
func runMerge(cmd *cobra.Command, suffix, output string, f *mergeFlags) {
	out := cmd.OutOrStdout()

	res, err := merge.Merge(merge.Options{
		FS:          os.DirFS(f.dir),
		Suffix:      suffix,
		Output:      output,
		Exclude:     f.exclude,
		NoRecursive: f.noRecursive,
		Logger:      logging.ForCommand(cmd.ErrOrStderr(), f.verbose, "", ""),
	})

	var outErr *merge.OutputError
	switch {
	case errors.Is(err, merge.ErrNoFiles):
		fmt.Fprintf(out, "no files found with suffix %s\n", suffix)
	case errors.Is(err, merge.ErrAllExcluded):
		fmt.Fprintln(out, "all files were excluded")
	case errors.As(err, &outErr):
		fmt.Fprintf(out, "error writing output file: %v\n", outErr)
	case err != nil:
		fmt.Fprintf(out, "error: %v\n", err)
	default:
		fmt.Fprintf(out, "merged %d files into %s\n", res.Count(), res.Output)
	}
}
