package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafik-go/grafik/attrgraph"
	"github.com/grafik-go/grafik/graphio"
)

func newConvertCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <edge-list-file>",
		Short: "Convert a graph to edgelist, gml, or dl output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			var opts []graphio.Option
			if labels {
				opts = append(opts, graphio.WithLabels())
			}

			out := cmd.OutOrStdout()
			switch format {
			case "edgelist":
				return graphio.WriteEdgeList(out, g, opts...)
			case "gml":
				return graphio.WriteGML(out, attrgraph.FromGraph(g))
			case "dl":
				return graphio.WriteDL(out, g, opts...)
			default:
				return fmt.Errorf("grafik: unknown format %q (want edgelist, gml, or dl)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "edgelist", "output format: edgelist, gml, or dl")

	return cmd
}
