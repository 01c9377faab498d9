package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/skiff-sh/scaffold/pkg/catalog"
)

const AppName = "scaffold"

type RootCommand struct {
	ProjectRoot string
	Catalog     *catalog.Catalog
	CLI         *cli.Command
}

func NewCommand(projectRoot string, cat *catalog.Catalog) *RootCommand {
	cmd := &cli.Command{
		Name:  AppName,
		Usage: "Generate project skeletons from predefined scaffolds.",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the available scaffolds.",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return NewListAction(cat).Act(ctx)
				},
			},
			{
				Name:  "show",
				Usage: "Print the files a scaffold creates.",
				Arguments: []cli.Argument{
					ShowArgName,
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					return NewShowAction(cat).Act(ctx, command.StringArg(ShowArgName.Name))
				},
			},
			{
				Name:      "create",
				Usage:     "Write one or more scaffolds into your project.",
				ArgsUsage: "<name> [name...]",
				Flags:     buildFlags(),
				Action: func(ctx context.Context, command *cli.Command) error {
					return NewCreateAction(cat).Act(ctx, &CreateArgs{
						BuildArgs: *buildArgsFrom(command, projectRoot),
						Names:     command.Args().Slice(),
					})
				},
			},
			{
				Name:  "apply",
				Usage: "Write a scaffold from a definition file.",
				Flags: buildFlags(),
				Arguments: []cli.Argument{
					ApplyArgDefinition,
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					return NewApplyAction().Act(ctx, &ApplyArgs{
						BuildArgs:      *buildArgsFrom(command, projectRoot),
						DefinitionPath: command.StringArg(ApplyArgDefinition.Name),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Check scaffold definition files.",
				ArgsUsage: "<file> [file...]",
				Action: func(ctx context.Context, command *cli.Command) error {
					return NewValidateAction().Act(ctx, &ValidateArgs{
						Paths: command.Args().Slice(),
					})
				},
			},
		},
	}

	return &RootCommand{
		ProjectRoot: projectRoot,
		Catalog:     cat,
		CLI:         cmd,
	}
}

func (r *RootCommand) Run(ctx context.Context, args []string) error {
	return r.CLI.Run(ctx, args)
}
