// Command default-theme writes the default theme skeleton into
// ./themes/installed/default.
package main

import (
	"context"
	"os"

	"github.com/skiff-sh/scaffold/cmd/cmdinit"
	"github.com/skiff-sh/scaffold/pkg/interact"
)

func main() {
	err := cmdinit.RunScaffold(context.Background(), "default-theme")
	if err != nil {
		interact.Error(err.Error())
		os.Exit(1)
	}
}
