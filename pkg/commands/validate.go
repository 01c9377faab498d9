package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/skiff-sh/scaffold/pkg/catalog"
	"github.com/skiff-sh/scaffold/pkg/except"
	"github.com/skiff-sh/scaffold/pkg/interact"
)

type ValidateArgs struct {
	Paths []string
}

type ValidateAction struct{}

func NewValidateAction() *ValidateAction {
	return &ValidateAction{}
}

func (v *ValidateAction) Act(_ context.Context, args *ValidateArgs) error {
	if len(args.Paths) == 0 {
		return errors.New("at least one definition path is required")
	}

	invalid := 0
	for _, fp := range args.Paths {
		_, err := catalog.LoadFile(fp)
		if err == nil {
			interact.Successf("%s is valid", fp)
			continue
		}

		invalid++
		res, verr := catalog.ValidateFile(fp)
		if verr != nil || res.Valid {
			interact.Errorf("%s", err.Error())
			continue
		}

		interact.Errorf("%s is invalid:", fp)
		for _, iss := range res.Issues {
			interact.Errorf("  %s", iss.String())
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d definitions: %w", invalid, len(args.Paths), except.ErrInvalid)
	}
	return nil
}
