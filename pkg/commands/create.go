package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/skiff-sh/scaffold/pkg/catalog"
	"github.com/skiff-sh/scaffold/pkg/fileutil"
	"github.com/skiff-sh/scaffold/pkg/interact"
	"github.com/skiff-sh/scaffold/pkg/scaffold"
)

// BuildArgs shared by every command that writes a scaffold.
type BuildArgs struct {
	// Root project root. Relative roots are resolved against the cwd.
	Root string
	// Base overrides the definition's base directory, relative to Root.
	Base        string
	DryRun      bool
	Interactive bool
}

type CreateArgs struct {
	BuildArgs
	Names []string
}

type CreateAction struct {
	Catalog *catalog.Catalog
}

func NewCreateAction(c *catalog.Catalog) *CreateAction {
	return &CreateAction{Catalog: c}
}

func (c *CreateAction) Act(ctx context.Context, args *CreateArgs) error {
	if len(args.Names) == 0 {
		return errors.New("at least one scaffold name is required")
	}

	if args.Base != "" && len(args.Names) > 1 {
		return errors.New("--base can only be used with a single scaffold")
	}

	defs := make([]*catalog.Definition, 0, len(args.Names))
	for _, name := range args.Names {
		def, err := c.Catalog.Get(name)
		if err != nil {
			return err
		}
		defs = append(defs, def)
	}

	for _, def := range defs {
		_, err := BuildDefinition(ctx, def, &args.BuildArgs)
		if err != nil {
			return err
		}
	}

	return nil
}

// BuildDefinition writes def under args.Root and prints the outcome. The
// definition's success message is printed once everything is written.
func BuildDefinition(ctx context.Context, def *catalog.Definition, args *BuildArgs) (*scaffold.Report, error) {
	root, err := fileutil.Abs(args.Root)
	if err != nil {
		return nil, err
	}

	base := args.Base
	if base == "" {
		base = def.Base
	}

	opts := []scaffold.Option{scaffold.WithLogger(slog.Default())}
	if args.DryRun {
		opts = append(opts, scaffold.WithDryRun())
	}

	if args.Interactive {
		opts = append(opts, scaffold.WithOverwriteConfirm(interact.ConfirmOverwrite))
	}

	slog.DebugContext(ctx, "Building scaffold.", "name", def.Name, "root", root, "base", base)
	report, err := scaffold.Build(ctx, filepath.Join(root, filepath.FromSlash(base)), def.Files, opts...)
	if err != nil {
		return report, fmt.Errorf("scaffold %s: %w", def.Name, err)
	}

	for _, v := range report.Skipped {
		interact.Warnf("Skipped existing file %s", v)
	}

	if report.DryRun {
		interact.Infof("Would write %d files to %s", len(report.Files), report.Base)
		interact.Print(interact.Tree(base, report.Files))
		return report, nil
	}

	interact.Success(def.SuccessMessage())
	return report, nil
}
