package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/mst"
)

func newMSTCmd() *cobra.Command {
	var (
		algorithm string
		root      string
	)

	cmd := &cobra.Command{
		Use:   "mst FILE",
		Short: "Compute a minimum spanning tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			var alg mst.Algorithm
			switch algorithm {
			case "kruskal":
				alg = mst.Kruskal
			case "prim":
				alg = mst.Prim
			default:
				return fmt.Errorf("unknown algorithm %q (want kruskal or prim)", algorithm)
			}

			var opts []mst.Option
			if root != "" {
				opts = append(opts, mst.WithRoot(root))
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			res, err := mst.Run(g, alg, opts...)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("%s finished", alg))

			out := cmd.OutOrStdout()
			for _, e := range res.Edges {
				fmt.Fprintf(out, "%s  %s -- %s  %g\n", e.ID, e.From, e.To, e.Weight)
			}
			fmt.Fprintf(out, "total: %g\n", res.TotalWeight)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "kruskal", "kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "start vertex for prim (default: first vertex)")
	return cmd
}
