package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/suite"

	"github.com/skiff-sh/scaffold/pkg/system"
)

type Suite struct {
	suite.Suite
}

// EqualFile asserts that p exists in f as a regular file holding exactly
// expected.
func (s *Suite) EqualFile(f fs.FS, p, expected string) bool {
	st, err := fs.Stat(f, p)
	if !s.NoError(err) {
		return false
	}

	if !s.Truef(st.Mode().IsRegular(), "%s is not a regular file", p) {
		return false
	}

	actual, err := fs.ReadFile(f, p)
	if !s.NoError(err) {
		return false
	}

	return s.Equal(expected, string(actual))
}

func (s *Suite) IsDir(f fs.FS, p string) bool {
	st, err := fs.Stat(f, p)
	if !s.NoError(err) {
		return false
	}
	return s.Truef(st.IsDir(), "%s is not a directory", p)
}

func (s *Suite) NotExists(f fs.FS, p string) bool {
	_, err := fs.Stat(f, p)
	return s.Truef(errors.Is(err, fs.ErrNotExist), "expected %s to not exist, got %v", p, err)
}

// SetWd points the stored working directory at dir. Call the returned func to
// restore it.
func (s *Suite) SetWd(dir string) func() {
	cwd, _ := system.Getwd()
	system.Setwd(dir)
	return func() {
		system.Setwd(cwd)
	}
}

// WriteFiles writes files (slash separated path to content) under dir.
func (s *Suite) WriteFiles(dir string, files map[string]string) bool {
	for p, content := range files {
		fp := filepath.Join(dir, filepath.FromSlash(p))
		if !s.NoError(os.MkdirAll(filepath.Dir(fp), 0o755)) {
			return false
		}

		if !s.NoError(os.WriteFile(fp, []byte(content), 0o644)) {
			return false
		}
	}
	return true
}

// NoErrorOrContains checks that the error is nil. If contains is non-empty, it will check that the error exists and has
// contains. Returns false if there was an error.
func (s *Suite) NoErrorOrContains(err error, contains string) bool {
	if contains != "" || !s.NoError(err) {
		s.ErrorContains(err, contains)
		return false
	}
	return true
}

type File struct {
	Data  []byte
	IsDir bool
}

type MapFS map[string]File

// FlatMapFS converts a fs.FS into a map of flat paths to their contents. Similar to [fstest.MapFS].
// The root itself is left out.
func FlatMapFS(f fs.FS) MapFS {
	out := MapFS{}

	_ = fs.WalkDir(f, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		if d.IsDir() {
			out[path] = File{IsDir: true}
			return nil
		}

		b, err := fs.ReadFile(f, path)
		if err != nil {
			//nolint:nilerr // only testing.
			return nil
		}

		out[path] = File{Data: b}
		return nil
	})
	return out
}
