// Package main provides the vmap CLI for inspecting batch-dim helpers.
package main

import (
	"context"

	"github.com/spf13/cobra"
)

const version = "v0.0.1-dev"

func main() {
	cobra.CheckErr(NewCLI().ExecuteContext(context.Background()))
}
