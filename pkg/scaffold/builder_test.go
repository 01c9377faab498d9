package scaffold

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/skiff-sh/scaffold/pkg/except"
	"github.com/skiff-sh/scaffold/pkg/filesystem"
	"github.com/skiff-sh/scaffold/pkg/testutil"
)

type BuilderTestSuite struct {
	testutil.Suite
}

func (b *BuilderTestSuite) TestBuild() {
	type test struct {
		Given         Manifest
		Existing      map[string]string
		Opts          []Option
		Expected      testutil.MapFS
		ExpectedDirs  []string
		ExpectedFiles []string
		ExpectedErr   string
	}

	tests := map[string]test{
		"single file": {
			Given: Manifest{{Path: "a/b.txt", Content: "hello"}},
			Expected: testutil.MapFS{
				"a":       {IsDir: true},
				"a/b.txt": {Data: []byte("hello")},
			},
			ExpectedDirs:  []string{"a"},
			ExpectedFiles: []string{"a/b.txt"},
		},
		"empty content is a zero byte file": {
			Given: Manifest{{Path: "a/empty.txt"}},
			Expected: testutil.MapFS{
				"a":           {IsDir: true},
				"a/empty.txt": {},
			},
			ExpectedDirs:  []string{"a"},
			ExpectedFiles: []string{"a/empty.txt"},
		},
		"shared parent is created once": {
			Given: Manifest{
				{Path: "a/x.txt", Content: "x"},
				{Path: "a/y.txt", Content: "y"},
			},
			Expected: testutil.MapFS{
				"a":       {IsDir: true},
				"a/x.txt": {Data: []byte("x")},
				"a/y.txt": {Data: []byte("y")},
			},
			ExpectedDirs:  []string{"a"},
			ExpectedFiles: []string{"a/x.txt", "a/y.txt"},
		},
		"root level and nested files": {
			Given: Manifest{
				{Path: "index.js", Content: "// Main entry point"},
				{Path: "assets/images/logo.svg", Content: "<!-- Default logo -->"},
			},
			Expected: testutil.MapFS{
				"index.js":               {Data: []byte("// Main entry point")},
				"assets":                 {IsDir: true},
				"assets/images":          {IsDir: true},
				"assets/images/logo.svg": {Data: []byte("<!-- Default logo -->")},
			},
			ExpectedDirs:  []string{"assets/images"},
			ExpectedFiles: []string{"index.js", "assets/images/logo.svg"},
		},
		"existing file is overwritten": {
			Given:    Manifest{{Path: "a/b.txt", Content: "new"}},
			Existing: map[string]string{"a/b.txt": "old content that is longer"},
			Expected: testutil.MapFS{
				"a":       {IsDir: true},
				"a/b.txt": {Data: []byte("new")},
			},
			ExpectedFiles: []string{"a/b.txt"},
		},
		"unrelated files are left alone": {
			Given:    Manifest{{Path: "a/b.txt", Content: "b"}},
			Existing: map[string]string{"a/keep.txt": "keep"},
			Expected: testutil.MapFS{
				"a":          {IsDir: true},
				"a/b.txt":    {Data: []byte("b")},
				"a/keep.txt": {Data: []byte("keep")},
			},
			ExpectedFiles: []string{"a/b.txt"},
		},
		"later entry wins": {
			Given: Manifest{
				{Path: "a.txt", Content: "first"},
				{Path: "a.txt", Content: "second"},
			},
			Expected: testutil.MapFS{
				"a.txt": {Data: []byte("second")},
			},
			ExpectedFiles: []string{"a.txt", "a.txt"},
		},
		"dry run writes nothing": {
			Given: Manifest{
				{Path: "a/x.txt", Content: "x"},
				{Path: "a/y.txt", Content: "y"},
			},
			Opts:          []Option{WithDryRun()},
			Expected:      testutil.MapFS{},
			ExpectedDirs:  []string{"a"},
			ExpectedFiles: []string{"a/x.txt", "a/y.txt"},
		},
		"parent occupied by a file": {
			Given:       Manifest{{Path: "a/b.txt", Content: "hello"}},
			Existing:    map[string]string{"a": "i am a file"},
			ExpectedErr: "not a directory",
		},
		"target is a directory": {
			Given:       Manifest{{Path: "a", Content: "hello"}},
			Existing:    map[string]string{"a/inner.txt": ""},
			ExpectedErr: "is a directory",
		},
		"file used as a parent": {
			Given: Manifest{
				{Path: "a", Content: "x"},
				{Path: "a/b.txt", Content: "y"},
			},
			ExpectedErr: "not a directory",
		},
		"dry run file used as a parent": {
			Given: Manifest{
				{Path: "a", Content: "x"},
				{Path: "a/b.txt", Content: "y"},
			},
			Opts:        []Option{WithDryRun()},
			ExpectedErr: "not a directory",
		},
		"dry run target is a directory": {
			Given:       Manifest{{Path: "a", Content: "hello"}},
			Existing:    map[string]string{"a/inner.txt": ""},
			Opts:        []Option{WithDryRun()},
			ExpectedErr: "is a directory",
		},
		"dry run target is a planned directory": {
			Given: Manifest{
				{Path: "a/b.txt", Content: "y"},
				{Path: "a", Content: "x"},
			},
			Opts:        []Option{WithDryRun()},
			ExpectedErr: "is a directory",
		},
		"escaping path": {
			Given:       Manifest{{Path: "../escape.txt", Content: "nope"}},
			ExpectedErr: "outside of the root",
		},
		"absolute path": {
			Given:       Manifest{{Path: "/etc/passwd", Content: "nope"}},
			ExpectedErr: "absolute path",
		},
		"empty path": {
			Given:       Manifest{{Path: " "}},
			ExpectedErr: "empty path",
		},
		"base directory as path": {
			Given:       Manifest{{Path: "a/.."}},
			ExpectedErr: "base directory",
		},
	}

	for desc, v := range tests {
		b.Run(desc, func() {
			ctx := b.T().Context()
			dir := filepath.Join(b.T().TempDir(), "out")
			if len(v.Existing) > 0 && !b.WriteFiles(dir, v.Existing) {
				return
			}

			report, err := Build(ctx, dir, v.Given, v.Opts...)
			if !b.NoErrorOrContains(err, v.ExpectedErr) {
				var fe *FilesystemError
				b.ErrorAs(err, &fe)
				return
			}

			b.Equal(dir, report.Base)
			b.Empty(testutil.Diff(v.ExpectedDirs, report.Directories))
			b.Empty(testutil.Diff(v.ExpectedFiles, report.Files))
			b.Empty(report.Skipped)

			if report.DryRun {
				b.NoDirExists(dir)
				return
			}

			b.Empty(testutil.Diff(v.Expected, testutil.FlatMapFS(os.DirFS(dir))))
		})
	}
}

func (b *BuilderTestSuite) TestDryRunMatchesBuild() {
	type test struct {
		Given    Manifest
		Existing map[string]string
	}

	tests := map[string]test{
		"clean": {
			Given: Manifest{
				{Path: "index.js"},
				{Path: "assets/images/logo.svg", Content: "<!-- Default logo -->"},
				{Path: "index.js", Content: "again"},
			},
		},
		"file used as a parent": {
			Given: Manifest{
				{Path: "a", Content: "x"},
				{Path: "a/b.txt", Content: "y"},
			},
		},
		"file used as a grandparent": {
			Given: Manifest{
				{Path: "a", Content: "x"},
				{Path: "a/b/c.txt", Content: "y"},
			},
		},
		"existing file used as a grandparent": {
			Given:    Manifest{{Path: "a/b/c.txt", Content: "y"}},
			Existing: map[string]string{"a": "x"},
		},
		"directory then file": {
			Given: Manifest{
				{Path: "a/b.txt", Content: "y"},
				{Path: "a", Content: "x"},
			},
		},
		"existing directory": {
			Given:    Manifest{{Path: "a", Content: "x"}},
			Existing: map[string]string{"a/inner.txt": ""},
		},
	}

	build := func(m Manifest, existing map[string]string, opts ...Option) (*Report, string) {
		dir := filepath.Join(b.T().TempDir(), "out")
		if len(existing) > 0 {
			b.Require().True(b.WriteFiles(dir, existing))
		}

		report, err := Build(b.T().Context(), dir, m, opts...)
		if err == nil {
			return report, ""
		}
		return report, strings.ReplaceAll(err.Error(), dir, "<base>")
	}

	for desc, v := range tests {
		b.Run(desc, func() {
			wet, wetErr := build(v.Given, v.Existing)
			dry, dryErr := build(v.Given, v.Existing, WithDryRun())

			b.Equal(wetErr, dryErr)
			b.Empty(testutil.Diff(wet.Files, dry.Files))
			b.Empty(testutil.Diff(wet.Directories, dry.Directories))
		})
	}
}

func (b *BuilderTestSuite) TestErrorMessage() {
	dir := b.T().TempDir()
	if !b.WriteFiles(dir, map[string]string{"a": "x"}) {
		return
	}

	_, err := Build(b.T().Context(), dir, Manifest{{Path: "a/b.txt"}})
	fp := filepath.Join(dir, "a")
	b.EqualError(err, "mkdir "+fp+": not a directory")
	b.ErrorIs(err, syscall.ENOTDIR)

	_, err = Build(b.T().Context(), dir, Manifest{{Path: "a/b/c.txt"}})
	b.EqualError(err, "mkdir "+filepath.Join(dir, "a", "b")+": mkdir "+fp+": not a directory")
}

func (b *BuilderTestSuite) TestBuildTwice() {
	ctx := b.T().Context()
	dir := filepath.Join(b.T().TempDir(), "out")
	m := Manifest{
		{Path: "routes/callback.js", Content: "// OAuth callback handler"},
		{Path: "routes/providers.js", Content: "// Get available providers"},
	}

	first, err := Build(ctx, dir, m)
	if !b.NoError(err) {
		return
	}
	b.True(first.BaseCreated)
	b.Equal([]string{"routes"}, first.Directories)

	err = os.WriteFile(filepath.Join(dir, "routes", "callback.js"), []byte("edited"), 0o644)
	if !b.NoError(err) {
		return
	}

	second, err := Build(ctx, dir, m)
	if !b.NoError(err) {
		return
	}

	b.False(second.BaseCreated)
	b.Empty(second.Directories)
	b.Equal(m.Paths(), second.Files)
	b.EqualFile(os.DirFS(dir), "routes/callback.js", "// OAuth callback handler")
}

func (b *BuilderTestSuite) TestAbortLeavesPartialState() {
	ctx := b.T().Context()
	dir := b.T().TempDir()
	if !b.WriteFiles(dir, map[string]string{"blocked": "file"}) {
		return
	}

	m := Manifest{
		{Path: "ok/first.txt", Content: "1"},
		{Path: "blocked/second.txt", Content: "2"},
		{Path: "ok/third.txt", Content: "3"},
	}

	report, err := Build(ctx, dir, m)
	var fe *FilesystemError
	if !b.ErrorAs(err, &fe) {
		return
	}

	b.Equal(OpMkdir, fe.Op)
	b.Equal(filepath.Join(dir, "blocked"), fe.Path)
	b.Equal([]string{"ok/first.txt"}, report.Files)

	out := os.DirFS(dir)
	b.EqualFile(out, "ok/first.txt", "1")
	b.NotExists(out, "ok/third.txt")
}

func (b *BuilderTestSuite) TestOverwriteConfirm() {
	type test struct {
		Answer          bool
		AnswerErr       error
		ExpectedContent string
		ExpectedSkipped []string
		ExpectedErr     string
	}

	tests := map[string]test{
		"accept": {
			Answer:          true,
			ExpectedContent: "new",
		},
		"decline": {
			Answer:          false,
			ExpectedContent: "old",
			ExpectedSkipped: []string{"a/b.txt"},
		},
		"prompt fails": {
			AnswerErr:   errors.New("user aborted"),
			ExpectedErr: "user aborted",
		},
	}

	for desc, v := range tests {
		b.Run(desc, func() {
			ctx := b.T().Context()
			dir := b.T().TempDir()
			if !b.WriteFiles(dir, map[string]string{"a/b.txt": "old"}) {
				return
			}

			var asked []string
			confirm := func(_ context.Context, name string) (bool, error) {
				asked = append(asked, name)
				return v.Answer, v.AnswerErr
			}

			m := Manifest{
				{Path: "a/b.txt", Content: "new"},
				{Path: "a/c.txt", Content: "c"},
			}
			report, err := Build(ctx, dir, m, WithOverwriteConfirm(confirm))
			b.Equal([]string{"a/b.txt"}, asked)
			if !b.NoErrorOrContains(err, v.ExpectedErr) {
				return
			}

			out := os.DirFS(dir)
			b.EqualFile(out, "a/b.txt", v.ExpectedContent)
			b.EqualFile(out, "a/c.txt", "c")
			b.Empty(testutil.Diff(v.ExpectedSkipped, report.Skipped))
		})
	}
}

func (b *BuilderTestSuite) TestOverwriteConfirmRepeatedEntry() {
	dir := b.T().TempDir()
	var asked []string
	confirm := func(_ context.Context, name string) (bool, error) {
		asked = append(asked, name)
		return false, nil
	}

	m := Manifest{
		{Path: "a/b.txt", Content: "first"},
		{Path: "a/b.txt", Content: "second"},
	}
	report, err := Build(b.T().Context(), dir, m, WithOverwriteConfirm(confirm))
	if !b.NoError(err) {
		return
	}

	b.Empty(asked)
	b.Empty(report.Skipped)
	b.EqualFile(os.DirFS(dir), "a/b.txt", "second")
}

func (b *BuilderTestSuite) TestEnsureDirectory() {
	dir := b.T().TempDir()
	if !b.WriteFiles(dir, map[string]string{"file": "x"}) {
		return
	}

	builder := NewBuilder(filesystem.New(dir))

	b.NoError(builder.EnsureDirectory("a/b/c"))
	b.NoError(builder.EnsureDirectory("a/b/c"))
	b.IsDir(os.DirFS(dir), "a/b/c")

	err := builder.EnsureDirectory("file/sub")
	var fe *FilesystemError
	if b.ErrorAs(err, &fe) {
		b.Equal(OpMkdir, fe.Op)
	}

	err = builder.EnsureDirectory("../outside")
	b.True(IsInvalidPath(err))
	b.ErrorIs(err, except.ErrInvalid)
}

func (b *BuilderTestSuite) TestWriteFile() {
	dir := b.T().TempDir()
	builder := NewBuilder(filesystem.New(dir))

	b.NoError(builder.WriteFile("new/file.txt", "content"))
	b.NoError(builder.WriteFile("new/file.txt", "c"))
	b.EqualFile(os.DirFS(dir), "new/file.txt", "c")

	st, err := os.Stat(filepath.Join(dir, "new", "file.txt"))
	if b.NoError(err) {
		b.Equal(fs.FileMode(0o644), st.Mode().Perm()&0o644)
	}

	err = builder.WriteFile("new", "directory")
	var fe *FilesystemError
	if b.ErrorAs(err, &fe) {
		b.Equal(OpWrite, fe.Op)
	}
}

func (b *BuilderTestSuite) TestPermissionDenied() {
	if os.Geteuid() == 0 {
		b.T().Skip("root ignores directory permissions")
	}

	dir := b.T().TempDir()
	locked := filepath.Join(dir, "locked")
	if !b.NoError(os.Mkdir(locked, 0o555)) {
		return
	}
	defer func() {
		_ = os.Chmod(locked, 0o755)
	}()

	_, err := Build(b.T().Context(), locked, Manifest{{Path: "sub/file.txt"}})
	var fe *FilesystemError
	if b.ErrorAs(err, &fe) {
		b.ErrorIs(err, fs.ErrPermission)
	}
}

func (b *BuilderTestSuite) TestManifestDirs() {
	m := Manifest{
		{Path: "theme.json"},
		{Path: "assets/images/logo.svg"},
		{Path: "assets/fonts/inter-var.woff2"},
		{Path: "assets/images/star.svg"},
		{Path: "layouts/default.tsx"},
	}

	b.Equal([]string{"assets", "assets/images", "assets/fonts", "layouts"}, m.Dirs())
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}
