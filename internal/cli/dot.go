package cli

import (
	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/interchange"
)

func newDotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Render a graph in Graphviz dot notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			rendered, err := interchange.DOT(g)
			if err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), []byte(rendered))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
