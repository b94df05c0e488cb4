package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/eulerian"
)

func newEulerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "euler FILE",
		Short: "Find an Eulerian path or circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			res, err := eulerian.FindPath(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Exists {
				fmt.Fprintf(out, "no Eulerian path: %s\n", res.Reason)
				if len(res.OddVertices) > 0 {
					fmt.Fprintf(out, "odd-degree vertices: %s\n", strings.Join(res.OddVertices, ", "))
				}
				return nil
			}
			kind := "path"
			if res.Circuit {
				kind = "circuit"
			}
			fmt.Fprintf(out, "Eulerian %s: %s\n", kind, strings.Join(res.Path, " -> "))
			return nil
		},
	}
}
