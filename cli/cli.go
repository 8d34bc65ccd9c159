// Package cli assembles the driftline commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// CmdFactory builds one subcommand against the shared provider.
type CmdFactory func(ctx context.Context, p *Provider) *cobra.Command

// Registered holds the functions to retrieve the subcommands.
var Registered map[string]CmdFactory

func Register(name string, f CmdFactory) {
	if Registered == nil {
		Registered = make(map[string]CmdFactory)
	}
	Registered[name] = f
}
