package interact

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

var Input io.Reader = os.Stdin

// FormRunner runs every form created by this package. Swapped out in tests.
var FormRunner = func(ctx context.Context, f *huh.Form) error {
	return f.RunWithContext(ctx)
}

func NewHuhForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithOutput(Writer).WithInput(Input).WithAccessible(!IsTerminal())
}

func NewHuhGroup(fields ...huh.Field) *huh.Group {
	return huh.NewGroup(fields...).
		WithShowHelp(true).
		WithShowErrors(true)
}

func IsTerminal() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

func Confirm(ctx context.Context, prompt string) (bool, error) {
	var val bool
	err := FormRunner(ctx, NewHuhForm(NewHuhGroup(huh.NewConfirm().Title(prompt).Value(&val))))
	if err != nil {
		return false, err
	}

	return val, nil
}

// ConfirmOverwrite asks whether the existing file name may be overwritten.
func ConfirmOverwrite(ctx context.Context, name string) (bool, error) {
	return Confirm(ctx, fmt.Sprintf("Overwrite file %s", name))
}
