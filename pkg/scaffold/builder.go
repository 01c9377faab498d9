package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/skiff-sh/scaffold/pkg/except"
	"github.com/skiff-sh/scaffold/pkg/filesystem"
	"github.com/skiff-sh/scaffold/pkg/fileutil"
)

// ConfirmFunc is asked before an existing file is overwritten. Returning false
// skips the entry.
type ConfirmFunc func(ctx context.Context, name string) (bool, error)

type Option func(b *Builder)

// WithDryRun resolves every entry and reports what would happen without
// touching the filesystem.
func WithDryRun() Option {
	return func(b *Builder) {
		b.DryRun = true
	}
}

// WithOverwriteConfirm asks f before overwriting files that already exist.
func WithOverwriteConfirm(f ConfirmFunc) Option {
	return func(b *Builder) {
		b.Confirm = f
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.Logger = l
	}
}

// Report what a Build did. All paths are relative to Base and use forward
// slashes.
type Report struct {
	Base   string
	DryRun bool
	// BaseCreated true if the base directory did not exist beforehand.
	BaseCreated bool
	// Directories created by the build, each listed once.
	Directories []string
	Files       []string
	// Skipped existing files the ConfirmFunc declined to overwrite.
	Skipped []string
}

// Builder writes manifests into a single base directory.
type Builder struct {
	FS      filesystem.Filesystem
	DryRun  bool
	Confirm ConfirmFunc
	Logger  *slog.Logger

	// Directories already created or planned during the current build.
	known map[string]struct{}
	// Files a dry run would have written.
	planned map[string]struct{}
}

func NewBuilder(fsys filesystem.Filesystem, opts ...Option) *Builder {
	out := &Builder{
		FS:     fsys,
		Logger: slog.Default(),
	}

	for _, o := range opts {
		o(out)
	}

	return out
}

// Build writes m into baseDir. See Builder.Build.
func Build(ctx context.Context, baseDir string, m Manifest, opts ...Option) (*Report, error) {
	abs, err := fileutil.Abs(baseDir)
	if err != nil {
		return nil, &FilesystemError{Op: OpResolve, Path: baseDir, Err: err}
	}

	return NewBuilder(filesystem.New(abs), opts...).Build(ctx, m)
}

// Build creates the base directory and then, in manifest order, the parent
// directory and content of every entry. Existing files are truncated. The
// first failure aborts the build and whatever was written so far is left in
// place.
func (b *Builder) Build(ctx context.Context, m Manifest) (*Report, error) {
	b.known = map[string]struct{}{}
	b.planned = map[string]struct{}{}
	out := &Report{
		Base:   b.FS.Root(),
		DryRun: b.DryRun,
	}

	created, err := b.ensureDirectory(".")
	if err != nil {
		return out, err
	}
	out.BaseCreated = created

	written := map[string]struct{}{}
	for _, e := range m {
		name, err := b.resolve(e.Path)
		if err != nil {
			return out, err
		}

		if dir := path.Dir(name); dir != "." {
			created, err = b.ensureDirectory(dir)
			if err != nil {
				return out, err
			}

			if created {
				out.Directories = append(out.Directories, dir)
			}
		}

		_, again := written[name]
		if b.Confirm != nil && !b.DryRun && !again && b.FS.Exists(name) {
			ok, err := b.Confirm(ctx, name)
			if err != nil {
				return out, &FilesystemError{Op: OpConfirm, Path: name, Err: err}
			}

			if !ok {
				b.Logger.DebugContext(ctx, "Skipped existing file.", "path", name)
				out.Skipped = append(out.Skipped, name)
				continue
			}
		}

		err = b.WriteFile(name, e.Content)
		if err != nil {
			return out, err
		}

		written[name] = struct{}{}
		b.Logger.DebugContext(ctx, "Wrote file.", "path", name, "bytes", len(e.Content), "dry_run", b.DryRun)
		out.Files = append(out.Files, name)
	}

	return out, nil
}

// EnsureDirectory creates name and all missing ancestors. An existing
// directory is not an error, a path component that exists as a file is.
func (b *Builder) EnsureDirectory(name string) error {
	_, err := b.ensureDirectory(name)
	return err
}

// WriteFile truncates or creates name, writes content and syncs it before
// closing the file. On a dry run only the checks a real write would fail on
// are made.
func (b *Builder) WriteFile(name, content string) error {
	fp, err := b.FS.Abs(name)
	if err != nil {
		return &FilesystemError{Op: OpResolve, Path: name, Err: err}
	}

	if b.DryRun {
		return b.planFile(fp)
	}

	err = b.FS.WriteFile(name, []byte(content))
	if err != nil {
		return &FilesystemError{Op: OpWrite, Path: fp, Err: err}
	}

	return nil
}

func (b *Builder) ensureDirectory(name string) (bool, error) {
	fp, err := b.FS.Abs(name)
	if err != nil {
		return false, &FilesystemError{Op: OpResolve, Path: name, Err: err}
	}

	if _, ok := b.known[fp]; ok {
		return false, nil
	}

	if b.DryRun {
		if p, ok := b.plannedAncestor(fp); ok {
			return false, &FilesystemError{Op: OpMkdir, Path: fp, Err: &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}}
		}
	}

	exists, err := fileutil.ProbeDir(fp)
	if err != nil {
		return false, &FilesystemError{Op: OpMkdir, Path: fp, Err: err}
	}

	if b.known != nil {
		b.known[fp] = struct{}{}
	}

	if exists {
		return false, nil
	}

	if !b.DryRun {
		err = b.FS.MkdirAll(name, fileutil.DefaultDirMode)
		if err != nil {
			return false, &FilesystemError{Op: OpMkdir, Path: fp, Err: err}
		}
	}

	b.Logger.Debug("Created directory.", "path", fp, "dry_run", b.DryRun)
	return true, nil
}

func (b *Builder) planFile(fp string) error {
	_, isDir := b.known[fp]
	if st, err := os.Stat(fp); err == nil && st.IsDir() {
		isDir = true
	}

	if isDir {
		return &FilesystemError{Op: OpWrite, Path: fp, Err: &fs.PathError{Op: "open", Path: fp, Err: syscall.EISDIR}}
	}

	if b.planned != nil {
		b.planned[fp] = struct{}{}
	}
	return nil
}

// plannedAncestor returns fp or the closest ancestor of fp a dry run already
// planned as a file.
func (b *Builder) plannedAncestor(fp string) (string, bool) {
	root := b.FS.Root()
	for p := fp; p != root; {
		if _, ok := b.planned[p]; ok {
			return p, true
		}

		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	return "", false
}

// resolve validates an entry path and returns it cleaned, relative to the
// base directory.
func (b *Builder) resolve(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", &FilesystemError{Op: OpResolve, Path: p, Err: fmt.Errorf("empty path: %w", except.ErrInvalid)}
	}

	native := filepath.FromSlash(p)
	if filepath.IsAbs(native) || strings.HasPrefix(p, "/") {
		return "", &FilesystemError{Op: OpResolve, Path: p, Err: fmt.Errorf("absolute path: %w", except.ErrInvalid)}
	}

	rel, err := b.FS.AsRel(native)
	if err != nil {
		return "", &FilesystemError{Op: OpResolve, Path: p, Err: err}
	}

	if rel == "." {
		return "", &FilesystemError{Op: OpResolve, Path: p, Err: fmt.Errorf("path is the base directory: %w", except.ErrInvalid)}
	}

	return filepath.ToSlash(rel), nil
}

// IsInvalidPath true if err was caused by an entry path that is empty,
// absolute or outside of the base directory.
func IsInvalidPath(err error) bool {
	var fe *FilesystemError
	return errors.As(err, &fe) && fe.Op == OpResolve && errors.Is(err, except.ErrInvalid)
}
