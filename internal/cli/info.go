package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/connectivity"
	"github.com/graphforge/graphforge/core"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Summarize a graph: size, type, degrees, connectivity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			kind := "undirected"
			if g.Directed() {
				kind = "directed"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type:     %s\n", kind)
			fmt.Fprintf(out, "vertices: %d\n", g.VertexCount())
			fmt.Fprintf(out, "edges:    %d\n", g.EdgeCount())

			degrees := core.DegreeMap(g)
			minDeg, maxDeg := -1, 0
			for _, d := range degrees {
				if minDeg < 0 || d < minDeg {
					minDeg = d
				}
				if d > maxDeg {
					maxDeg = d
				}
			}
			if minDeg >= 0 {
				fmt.Fprintf(out, "degree:   min %d, max %d\n", minDeg, maxDeg)
			}

			fmt.Fprintf(out, "weakly connected: %v\n", connectivity.IsWeaklyConnected(g))
			if g.Directed() {
				strong, err := connectivity.IsStronglyConnected(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "strongly connected: %v\n", strong)
			}
			return nil
		},
	}
}
