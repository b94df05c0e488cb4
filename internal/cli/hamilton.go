package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/hamiltonian"
)

func newHamiltonCmd() *cobra.Command {
	var maxVertices int

	cmd := &cobra.Command{
		Use:   "hamilton FILE",
		Short: "Search for a Hamiltonian path or cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)
			res, err := hamiltonian.FindPath(g, hamiltonian.WithMaxVertices(maxVertices))
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("explored %d nodes, %d backtracks",
				res.Stats.NodesExplored, res.Stats.Backtracks))

			out := cmd.OutOrStdout()
			if !res.Found {
				fmt.Fprintf(out, "no Hamiltonian path: %s\n", res.Reason)
				return nil
			}
			kind := "path"
			if res.Cycle {
				kind = "cycle"
			}
			fmt.Fprintf(out, "Hamiltonian %s: %s\n", kind, strings.Join(res.Path, " -> "))
			if res.Reason != "" {
				fmt.Fprintf(out, "note: %s\n", res.Reason)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxVertices, "max-vertices", hamiltonian.DefaultMaxVertices,
		"refuse to search graphs larger than this")
	return cmd
}
