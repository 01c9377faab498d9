package commands

import "github.com/urfave/cli/v3"

var FlagRoot = &cli.StringFlag{
	Name:     "root",
	Category: "scaffold",
	Usage:    "The root of your project. Scaffolds are written relative to the root. Defaults to the cwd.",
	Aliases:  []string{"r"},
}

var FlagBase = &cli.StringFlag{
	Name:     "base",
	Category: "scaffold",
	Usage:    "Write into this directory (relative to the root) instead of the scaffold's default.",
	Aliases:  []string{"b"},
}

var FlagDryRun = &cli.BoolFlag{
	Name:     "dry-run",
	Category: "scaffold",
	Usage:    "Print what would be created without writing anything.",
	Aliases:  []string{"n"},
}

var FlagInteractive = &cli.BoolFlag{
	Name:     "interactive",
	Category: "scaffold",
	Usage:    "Prompt before overwriting files that already exist.",
	Aliases:  []string{"i"},
}

var ApplyArgDefinition = &cli.StringArg{
	Name:      "definition",
	UsageText: "path to a scaffold definition file (YAML or JSON)",
}

var ShowArgName = &cli.StringArg{
	Name:      "name",
	UsageText: "name of a scaffold",
}

func buildFlags() []cli.Flag {
	return []cli.Flag{FlagRoot, FlagBase, FlagDryRun, FlagInteractive}
}

func buildArgsFrom(command *cli.Command, root string) *BuildArgs {
	if r := command.String(FlagRoot.Name); r != "" {
		root = r
	}

	return &BuildArgs{
		Root:        root,
		Base:        command.String(FlagBase.Name),
		DryRun:      command.Bool(FlagDryRun.Name),
		Interactive: command.Bool(FlagInteractive.Name),
	}
}
