package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/skiff-sh/scaffold/pkg/except"
	"github.com/skiff-sh/scaffold/pkg/fileutil"
)

// Filesystem is a directory tree rooted at a single base directory. Every name
// is resolved against the root and names that resolve outside of it are
// rejected.
type Filesystem interface {
	fs.FS
	fs.ReadFileFS
	fs.StatFS

	// Root the absolute path of the base directory.
	Root() string

	// WriteFile writes content to name, truncating any existing file. Missing
	// parent directories are created. The data is synced to disk before the
	// file is closed.
	WriteFile(name string, content []byte) error

	WriteFileFrom(name string, content io.Reader) error

	// AsRel returns the enforced relative path to the root. If name is absolute and not within the root, an error is returned.
	AsRel(name string) (string, error)

	Exists(name string) bool

	Abs(name string) (string, error)

	MkdirAll(name string, mode fs.FileMode) error
	OpenFile(name string, flag int, perm fs.FileMode) (*os.File, error)
}

func New(fp string) Filesystem {
	root := fileutil.MustAbs(fp)
	return &fsys{
		RootP:  root,
		RootFS: os.DirFS(root),
	}
}

type fsys struct {
	RootP  string
	RootFS fs.FS
}

func (f *fsys) Root() string {
	return f.RootP
}

func (f *fsys) WriteFileFrom(name string, content io.Reader) (err error) {
	target, err := f.Abs(name)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(target), fileutil.DefaultDirMode)
	if err != nil {
		return err
	}

	fi, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileutil.DefaultFileMode)
	if err != nil {
		return err
	}
	defer func() {
		cerr := fi.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(fi, content)
	if err != nil {
		return err
	}

	return fi.Sync()
}

func (f *fsys) WriteFile(name string, content []byte) error {
	return f.WriteFileFrom(name, strings.NewReader(string(content)))
}

func (f *fsys) Stat(name string) (fs.FileInfo, error) {
	rel, err := f.AsRel(name)
	if err != nil {
		return nil, err
	}
	return fs.Stat(f.RootFS, filepath.ToSlash(rel))
}

func (f *fsys) OpenFile(name string, flag int, perm fs.FileMode) (*os.File, error) {
	fp, err := f.Abs(name)
	if err != nil {
		return nil, err
	}

	return os.OpenFile(fp, flag, perm)
}

func (f *fsys) MkdirAll(name string, mode fs.FileMode) error {
	fp, err := f.Abs(name)
	if err != nil {
		return err
	}
	return os.MkdirAll(fp, mode)
}

func (f *fsys) Abs(name string) (string, error) {
	rel, err := f.AsRel(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.RootP, rel), nil
}

func (f *fsys) Exists(name string) bool {
	_, err := f.Stat(name)
	return err == nil
}

func (f *fsys) Open(name string) (fs.File, error) {
	rel, err := f.AsRel(name)
	if err != nil {
		return nil, err
	}
	return f.RootFS.Open(filepath.ToSlash(rel))
}

func (f *fsys) ReadFile(name string) ([]byte, error) {
	rel, err := f.AsRel(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(f.RootFS, filepath.ToSlash(rel))
}

func (f *fsys) AsRel(name string) (string, error) {
	abs := filepath.Clean(name)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(f.RootP, name)
	}

	rel, err := filepath.Rel(f.RootP, abs)
	if err != nil {
		return "", err
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside of the root %s: %w", name, f.RootP, except.ErrInvalid)
	}

	return rel, nil
}
