/*
Package cvsp solves the Capacitated Vertex Separator Problem: remove a node
set S (the separator) from a graph so that the remaining nodes split into at
most K parts of at most B nodes each, either maximizing the retained nodes
for a fixed K (formulations F1 and F2) or minimizing |S| under cover
constraints (formulations F3 and F4).

Two solver families are available. The gophersat family encodes the
formulations as pseudo-boolean problems and carries eight variants,
including alternative adjacency encodings and lazy constraint generation
driven through the solver's incremental interface. The HiGHS family encodes
four of them as mixed-integer programs.

A solve takes any gonum undirected graph:

	g := simple.NewUndirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	sol, err := cvsp.Solve(g, cvsp.Options{
		Library:     cvsp.Gophersat,
		Formulation: 1,
		K:           2,
		B:           1,
	})

F1 and F2 return the partition form: sol.Separator plus sol.Shores, one
node list per shore. F3 and F4 return the bare separator; the shores are
whatever components remain. A solve that ends without proven optimality
returns an error matching ErrNoSolution.

The subset-cover formulations enumerate every node subset in their eager
mode and are only tractable for small graphs; their lazy variants generate
cover constraints from incumbents instead and scale considerably further.
*/
package cvsp
