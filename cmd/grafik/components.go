package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components <edge-list-file>",
		Short: "List connected components, largest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, comp := range g.ComponentsVertices() {
				names := make([]string, len(comp))
				for j, v := range comp {
					names[j] = vertexName(g, v)
				}
				fmt.Fprintf(out, "component %d (size %d): %s\n",
					i, len(comp), strings.Join(names, " "))
			}

			return nil
		},
	}
}
