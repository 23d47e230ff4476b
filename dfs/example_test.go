package dfs_test

import (
	"fmt"

	"github.com/grafik-go/grafik/core"
	"github.com/grafik-go/grafik/dfs"
)

// ExampleDFS walks a path graph and prints each visited vertex with its
// parent.
func ExampleDFS() {
	g, _ := core.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	dfs.DFS(g, 0, dfs.WithOnVisit(func(v, parent int) (bool, error) {
		fmt.Printf("%d via %d\n", v, parent)
		return true, nil
	}))
	// Output:
	// 1 via 0
	// 2 via 1
	// 3 via 2
}
