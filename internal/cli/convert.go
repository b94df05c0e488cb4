package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/interchange"
	"github.com/graphforge/graphforge/transition"
)

func newConvertCmd() *cobra.Command {
	var (
		merge  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert FILE (directed|undirected)",
		Short: "Flip a graph between directed and undirected form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			var directed bool
			switch args[1] {
			case "directed":
				directed = true
			case "undirected":
				directed = false
			default:
				return fmt.Errorf("unknown target type %q (want directed or undirected)", args[1])
			}

			var policy transition.MergePolicy
			switch merge {
			case "first":
				policy = transition.First
			case "min":
				policy = transition.Min
			case "max":
				policy = transition.Max
			default:
				return fmt.Errorf("unknown merge policy %q (want first, min, or max)", merge)
			}

			converted, mapping, err := transition.To(g, directed, transition.WithMergePolicy(policy))
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debugf("mapped %d edges", len(mapping.Edges))

			raw, err := interchange.Encode(converted)
			if err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), append(raw, '\n'))
		},
	}
	cmd.Flags().StringVar(&merge, "merge", "first", "weight policy when merging arcs: first, min, or max")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
