// Package merge concatenates the text of files that share a name suffix into
// a single output file.
//
// A merge is a linear pipeline:
//
//  1. FindFiles enumerates regular files whose base name ends with the suffix,
//     either across the whole tree or only in the root directory.
//  2. Files whose base name appears in the exclusion list are dropped.
//  3. The remaining relative paths are sorted lexicographically.
//  4. Each file is written to the output as a "# <basename>" header line,
//     its decoded content and a single trailing newline.
//
// Finding nothing, or excluding everything, stops the pipeline before the
// output is created. See ErrNoFiles and ErrAllExcluded.
//
// # Decoding
//
// ReadFileContent tries strict UTF-8 first and strict GBK second. When both
// fail, or the file cannot be read at all, it returns a placeholder line
// naming the file instead of an error, so a single bad input never aborts a
// merge.
//
// # Usage
//
//	res, err := merge.Merge(merge.Options{
//	    Suffix:  ".go",
//	    Output:  "all.txt",
//	    Exclude: []string{"main.go"},
//	})
//	if errors.Is(err, merge.ErrNoFiles) {
//	    // nothing matched
//	}
package merge
