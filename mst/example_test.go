// Runnable examples for the spanning-tree solvers.
package mst_test

import (
	"fmt"

	"github.com/graphforge/graphforge/core"
	"github.com/graphforge/graphforge/mst"
)

// ExampleKruskalMST spans the weighted square A-B-C-D, dropping the two
// most expensive edges.
func ExampleKruskalMST() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("C", "D", 2)
	_, _ = g.AddEdge("D", "A", 3)
	_, _ = g.AddEdge("A", "C", 5)

	res, err := mst.KruskalMST(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range res.Edges {
		fmt.Printf("%s (%g)\n", e.ID, e.Weight)
	}
	fmt.Printf("total: %g\n", res.TotalWeight)
	// Output:
	// A-B (1)
	// C-D (2)
	// A-D (3)
	// total: 6
}
