package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/shortest"
)

func newPathCmd() *cobra.Command {
	var (
		algorithm string
		unit      bool
	)

	cmd := &cobra.Command{
		Use:   "path FILE SOURCE TARGET",
		Short: "Find the shortest path between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			source, target := args[1], args[2]

			var opts []shortest.Option
			if unit {
				opts = append(opts, shortest.WithUnitWeights())
			}

			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			var res *shortest.Result
			switch algorithm {
			case "dijkstra":
				res, err = shortest.Dijkstra(g, source, target, opts...)
			case "bellman-ford":
				res, err = shortest.BellmanFord(g, source, target, opts...)
			default:
				return fmt.Errorf("unknown algorithm %q (want dijkstra or bellman-ford)", algorithm)
			}
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("%s finished", algorithm))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:     %s\n", strings.Join(res.Path, " -> "))
			fmt.Fprintf(out, "distance: %g\n", res.TotalDistance)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "dijkstra", "dijkstra or bellman-ford")
	cmd.Flags().BoolVar(&unit, "unit", false, "treat every edge as weight 1")
	return cmd
}
