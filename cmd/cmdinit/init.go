package cmdinit

import (
	"context"
	"log/slog"

	skiffconfig "github.com/skiff-sh/config"

	"github.com/skiff-sh/scaffold/cmd/config"
	"github.com/skiff-sh/scaffold/pkg/catalog"
	"github.com/skiff-sh/scaffold/pkg/commands"
)

// Init loads the config and installs the default logger.
func Init() (*config.Config, error) {
	conf, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	logger, err := skiffconfig.NewLogger(conf.Log)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)
	return conf, nil
}

func NewCommand() (*commands.RootCommand, error) {
	conf, err := Init()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	return commands.NewCommand(conf.Root, cat), nil
}

// RunScaffold writes the named catalog scaffold into the configured root with
// its default base directory, overwriting existing files.
func RunScaffold(ctx context.Context, name string) error {
	conf, err := Init()
	if err != nil {
		return err
	}

	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	return commands.NewCreateAction(cat).Act(ctx, &commands.CreateArgs{
		BuildArgs: commands.BuildArgs{Root: conf.Root},
		Names:     []string{name},
	})
}
