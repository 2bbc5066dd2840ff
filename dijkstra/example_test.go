package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dijkstra"
)

// ExampleDijkstra routes across a small weighted city map: the direct
// road is expensive, the two-leg detour wins.
func ExampleDijkstra() {
	g := core.New[string, float64]()
	home := g.AddNode("home")
	office := g.AddNode("office")
	park := g.AddNode("park")
	g.AddEdge(home, office, 10) // direct but slow
	g.AddEdge(home, park, 2)
	g.AddEdge(park, office, 3)

	dist, parent, err := dijkstra.Dijkstra(g, home,
		func(_ core.EdgeID, w float64) float64 { return w })
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Walk the parent chain back from the destination.
	path := []core.NodeID{office}
	for cur := parent[office]; cur != core.NoNode; cur = parent[cur] {
		path = append([]core.NodeID{cur}, path...)
	}
	for _, id := range path {
		w, _ := g.NodeWeight(id)
		fmt.Println(w)
	}
	fmt.Println("cost:", dist[office])
	// Output:
	// home
	// park
	// office
	// cost: 5
}
