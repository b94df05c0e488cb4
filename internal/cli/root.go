package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the graphforge CLI. The --verbose flag switches the
// context logger from info to debug level before any command runs.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphforge",
		Short:        "graphforge answers structural questions about graphs",
		Long:         `graphforge loads a graph from an interchange JSON document and runs connectivity, shortest-path, spanning-tree, coloring, and traversal analyses over it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("graphforge %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newPairsCmd())
	root.AddCommand(newMSTCmd())
	root.AddCommand(newColorCmd())
	root.AddCommand(newEulerCmd())
	root.AddCommand(newHamiltonCmd())
	root.AddCommand(newConvertCmd())

	return root.ExecuteContext(ctx)
}
