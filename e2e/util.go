package e2e

import (
	"bytes"
	"os"

	"github.com/skiff-sh/scaffold/cmd/cmdinit"
	"github.com/skiff-sh/scaffold/pkg/commands"
	"github.com/skiff-sh/scaffold/pkg/interact"
)

type CLI struct {
	Command *commands.RootCommand
	// Output everything the CLI printed for the user.
	Output *bytes.Buffer
}

// New builds the CLI exactly as the scaffold binary does and redirects its
// output into a buffer. Call Close to restore the output.
func New() (*CLI, error) {
	cmd, err := cmdinit.NewCommand()
	if err != nil {
		return nil, err
	}

	out := &CLI{
		Command: cmd,
		Output:  bytes.NewBuffer(nil),
	}
	cmd.CLI.Writer = out.Output
	cmd.CLI.ErrWriter = out.Output
	interact.Writer = out.Output
	return out, nil
}

func (c *CLI) Close() {
	interact.Writer = os.Stdout
}
