package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafik-go/grafik/core"
	"github.com/grafik-go/grafik/metrics"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <edge-list-file>",
		Short: "Print structural statistics of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices:\t%d\n", g.VertexCount())
			fmt.Fprintf(out, "edges:\t%d\n", g.EdgeCount())
			fmt.Fprintf(out, "directed:\t%v\n", g.Directed())
			fmt.Fprintf(out, "max degree:\t%d\n", g.MaxDegree())
			fmt.Fprintf(out, "avg degree:\t%.4f\n", g.AvgDegree())

			avgCC, err := metrics.AverageClusteringCoefficient(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "avg clustering:\t%.4f\n", avgCC)

			switch d := g.Diameter(); d {
			case core.DiameterUnsupported:
				fmt.Fprintf(out, "diameter:\tn/a (directed)\n")
			case core.DiameterUndefined:
				fmt.Fprintf(out, "diameter:\tundefined (empty graph)\n")
			case core.DiameterInfinite:
				fmt.Fprintf(out, "diameter:\tinfinite (disconnected)\n")
			default:
				fmt.Fprintf(out, "diameter:\t>=%d\n", d)
			}

			return nil
		},
	}
}
