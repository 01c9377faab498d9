// Command oauth-plugin writes the OAuth plugin skeleton into ./oauth-plugin.
package main

import (
	"context"
	"os"

	"github.com/skiff-sh/scaffold/cmd/cmdinit"
	"github.com/skiff-sh/scaffold/pkg/interact"
)

func main() {
	err := cmdinit.RunScaffold(context.Background(), "oauth-plugin")
	if err != nil {
		interact.Error(err.Error())
		os.Exit(1)
	}
}
