package merge

import "errors"

// Early-exit conditions. Neither leaves anything on disk.
var (
	ErrNoFiles     = errors.New("no matching files found")
	ErrAllExcluded = errors.New("all matching files were excluded")
)

// errInvalidEncoding reports that a byte sequence is not valid in an encoding.
var errInvalidEncoding = errors.New("invalid byte sequence")

// OutputError reports a failure to create or write the merged file. Bytes
// written before the failure stay on disk.
type OutputError struct {
	Path string
	Op   string
	Err  error
}

func (e *OutputError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
