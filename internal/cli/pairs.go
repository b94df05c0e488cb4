package cli

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/allpairs"
)

func newPairsCmd() *cobra.Command {
	var (
		algorithm string
		unit      bool
	)

	cmd := &cobra.Command{
		Use:   "pairs FILE",
		Short: "Compute all-pairs shortest distances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			var alg allpairs.Algorithm
			switch algorithm {
			case "floyd-warshall":
				alg = allpairs.FloydWarshall
			case "johnson":
				alg = allpairs.Johnson
			default:
				return fmt.Errorf("unknown algorithm %q (want floyd-warshall or johnson)", algorithm)
			}

			var opts []allpairs.Option
			if unit {
				opts = append(opts, allpairs.WithUnitWeights())
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			res, err := allpairs.Run(g, alg, opts...)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("%s finished", alg))

			sources := make([]string, 0, len(res.Distances))
			for id := range res.Distances {
				sources = append(sources, id)
			}
			sort.Strings(sources)

			out := cmd.OutOrStdout()
			for _, u := range sources {
				for _, v := range sources {
					if u == v {
						continue
					}
					d := res.Distances[u][v]
					if math.IsInf(d, 1) {
						fmt.Fprintf(out, "%s -> %s: unreachable\n", u, v)
						continue
					}
					fmt.Fprintf(out, "%s -> %s: %g\n", u, v, d)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "floyd-warshall", "floyd-warshall or johnson")
	cmd.Flags().BoolVar(&unit, "unit", false, "treat every edge as weight 1")
	return cmd
}
