// Command grafik inspects and converts edge-list graphs: structural
// statistics, connected components, Louvain communities, and format
// conversion to edge-list, GML, or DL output.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grafik-go/grafik/core"
	"github.com/grafik-go/grafik/graphio"
)

var (
	directed bool
	labels   bool
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "grafik",
		Short:        "Inspect and convert edge-list graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("grafik: bad log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)

			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&directed, "directed", false, "treat the input as a directed graph")
	rootCmd.PersistentFlags().BoolVar(&labels, "labels", false, "print vertex labels instead of indices")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newStatsCmd(), newComponentsCmd(), newCommunitiesCmd(), newConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadGraph reads the edge-list file given as the command's positional
// argument.
func loadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graphio.ReadEdgeList(f, graphio.WithDirected(directed))
}

// vertexName renders v honoring the --labels flag.
func vertexName(g *core.Graph, v int) string {
	if labels {
		if name, ok := g.Label(v); ok {
			return name
		}
	}

	return strconv.Itoa(v)
}
