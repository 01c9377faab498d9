package commands

import (
	"context"
	"errors"

	"github.com/skiff-sh/scaffold/pkg/catalog"
)

type ApplyArgs struct {
	BuildArgs
	DefinitionPath string
}

// ApplyAction builds a scaffold from a definition file rather than the
// catalog.
type ApplyAction struct{}

func NewApplyAction() *ApplyAction {
	return &ApplyAction{}
}

func (a *ApplyAction) Act(ctx context.Context, args *ApplyArgs) error {
	if args.DefinitionPath == "" {
		return errors.New("definition path is required")
	}

	def, err := catalog.LoadFile(args.DefinitionPath)
	if err != nil {
		return err
	}

	_, err = BuildDefinition(ctx, def, &args.BuildArgs)
	return err
}
