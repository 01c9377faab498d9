package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/skiff-sh/scaffold/pkg/system"
)

const (
	DefaultFileMode = 0o644
	DefaultDirMode  = 0o755
)

// ProbeDir reports whether fp already exists as a directory. A missing fp is
// not an error as long as its closest existing ancestor is a directory, i.e.
// a later os.MkdirAll(fp) could succeed.
func ProbeDir(fp string) (bool, error) {
	for p := fp; ; {
		st, err := os.Stat(p)
		if err == nil {
			if !st.IsDir() {
				return false, &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
			}
			return p == fp, nil
		}

		// A file further up shows as ENOTDIR. Keep walking so the error names it.
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
			return false, err
		}

		parent := filepath.Dir(p)
		if parent == p {
			return false, nil
		}
		p = parent
	}
}

// MustAbs same as Abs but panics if an error is encountered.
func MustAbs(fp string) string {
	a, err := Abs(fp)
	if err != nil {
		panic(err)
	}
	return a
}

// Abs ensures fp is an absolute path. Uses the system.CWD variable (if set).
func Abs(fp string) (string, error) {
	if filepath.IsAbs(fp) {
		return filepath.Clean(fp), nil
	}

	wd, err := system.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, fp), nil
}
