package scaffold

import (
	"fmt"
	"io/fs"
)

const (
	OpResolve = "resolve"
	OpMkdir   = "mkdir"
	OpWrite   = "write"
	OpConfirm = "confirm"
)

// FilesystemError is returned for every failure while building a scaffold:
// permission denial, invalid or escaping paths, path components occupied by
// files, and I/O errors such as a full disk.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (f *FilesystemError) Error() string {
	cause := f.Err
	if pe, ok := cause.(*fs.PathError); ok && pe.Path == f.Path {
		cause = pe.Err
	}
	return fmt.Sprintf("%s %s: %s", f.Op, f.Path, cause)
}

func (f *FilesystemError) Unwrap() error {
	return f.Err
}
