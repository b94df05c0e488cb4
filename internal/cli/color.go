package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/coloring"
)

func newColorCmd() *cobra.Command {
	var bounds bool

	cmd := &cobra.Command{
		Use:   "color FILE",
		Short: "Color the graph with the DSatur heuristic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			res, err := coloring.ColorGraph(g)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("colored %d vertices with %d colors", len(res.Coloring), res.NumColors))

			out := cmd.OutOrStdout()
			for c, class := range res.ColorClasses {
				fmt.Fprintf(out, "color %d: %s\n", c, strings.Join(class, ", "))
			}

			if bounds {
				b, err := coloring.ChromaticBounds(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "chromatic number between %d and %d\n", b.Lower, b.Upper)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&bounds, "bounds", false, "also print chromatic number bounds")
	return cmd
}
