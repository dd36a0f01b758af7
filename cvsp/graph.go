package cvsp

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// nodeIDs returns the graph's node IDs in ascending order. Variable and
// constraint creation always iterates this slice: gonum's map-backed graphs
// iterate in random order, and models must be reproducible across runs.
func nodeIDs(g graph.Undirected) []int64 {
	var ids []int64
	it := g.Nodes()
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// graphEdges returns each undirected edge once as an ordered (low, high)
// pair, sorted lexicographically.
func graphEdges(g graph.Undirected) [][2]int64 {
	var edges [][2]int64
	for _, u := range nodeIDs(g) {
		var next []int64
		it := g.From(u)
		for it.Next() {
			if w := it.Node().ID(); w > u {
				next = append(next, w)
			}
		}
		sort.Slice(next, func(a, b int) bool { return next[a] < next[b] })
		for _, w := range next {
			edges = append(edges, [2]int64{u, w})
		}
	}
	return edges
}

// induced builds the subgraph of g induced by the given nodes.
func induced(g graph.Undirected, nodes []int64) *simple.UndirectedGraph {
	sub := simple.NewUndirectedGraph()
	in := make(map[int64]bool, len(nodes))
	for _, id := range nodes {
		in[id] = true
		sub.AddNode(simple.Node(id))
	}
	for _, id := range nodes {
		it := g.From(id)
		for it.Next() {
			if w := it.Node().ID(); w > id && in[w] {
				sub.SetEdge(simple.Edge{F: simple.Node(id), T: simple.Node(w)})
			}
		}
	}
	return sub
}

// componentsOf returns the connected components of the subgraph of g induced
// by nodes, members ascending, components ordered by smallest member.
func componentsOf(g graph.Undirected, nodes []int64) [][]int64 {
	if len(nodes) == 0 {
		return nil
	}
	return sortGroups(topo.ConnectedComponents(induced(g, nodes)))
}

// maximalCliques returns the maximal cliques of g with the same ordering
// rules as componentsOf. Isolated nodes count as single-node cliques, so
// every node and every edge is covered by some clique.
func maximalCliques(g graph.Undirected) [][]int64 {
	return sortGroups(topo.BronKerbosch(g))
}

func sortGroups(groups [][]graph.Node) [][]int64 {
	res := make([][]int64, len(groups))
	for i, grp := range groups {
		ids := make([]int64, len(grp))
		for j, n := range grp {
			ids[j] = n.ID()
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		res[i] = ids
	}
	sort.Slice(res, func(a, b int) bool { return res[a][0] < res[b][0] })
	return res
}
