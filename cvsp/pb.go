package cvsp

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/crillab/cvsep/packing"
)

// Variable naming shared by the pseudo-boolean encoders and the lazy
// handlers: x_i_v assigns node v to shore i, y_i_q claims clique q for
// shore i, x_v puts node v into the separator.
func shoreVar(i int, v int64) string { return fmt.Sprintf("x_%d_%d", i, v) }

func cliqueVar(i, q int) string { return fmt.Sprintf("y_%d_%d", i, q) }

func nodeVar(v int64) string { return fmt.Sprintf("x_%d", v) }

// pbFormulation solves one of the pseudo-boolean encodings with gophersat.
type pbFormulation struct {
	code Code
}

func (f pbFormulation) Code() Code { return f.code }

func (f pbFormulation) Solve(g graph.Undirected, k, b int, verbose bool) (*Solution, error) {
	switch f.code {
	case F1, F1AltB, F1AltC, F2:
		return pbShoreSolve(g, k, b, f.code, verbose)
	case F3, F4:
		return pbCoverSolve(g, k, b, f.code, verbose)
	case F3Lazy, F4Lazy:
		return pbLazySolve(g, k, b, f.code, verbose)
	default:
		return nil, errors.Wrapf(ErrInvalidFormulation, "%s", f.code)
	}
}

// pbShoreSolve encodes the fixed-K formulations. Retained nodes are
// maximized by minimizing the count of unset assignment literals.
func pbShoreSolve(g graph.Undirected, k, b int, code Code, verbose bool) (*Solution, error) {
	ids := nodeIDs(g)
	idx := indexOf(ids)
	m := newPBModel()
	xi := make([][]int, k) // xi[i][vi] assigns ids[vi] to shore i
	for i := 0; i < k; i++ {
		xi[i] = make([]int, len(ids))
		for vi, v := range ids {
			xi[i][vi] = m.lit(shoreVar(i, v))
		}
	}
	for vi := range ids {
		col := make([]int, k)
		for i := 0; i < k; i++ {
			col[i] = xi[i][vi]
		}
		m.atMost(col, 1)
	}
	edges := graphEdges(g)
	switch code {
	case F1:
		// w in shore i forbids v in any other shore; one row per edge and
		// shore covers both orientations.
		for _, e := range edges {
			w, v := idx[e[0]], idx[e[1]]
			for i := 0; i < k; i++ {
				lits := make([]int, 0, k)
				lits = append(lits, xi[i][w])
				for j := 0; j < k; j++ {
					if j != i {
						lits = append(lits, xi[j][v])
					}
				}
				m.atMost(lits, 1)
			}
		}
	case F1AltB:
		for _, e := range edges {
			w, v := idx[e[0]], idx[e[1]]
			for i := 0; i < k; i++ {
				for j := 0; j < k; j++ {
					if i != j {
						m.atMost([]int{xi[i][w], xi[j][v]}, 1)
					}
				}
			}
		}
	case F1AltC:
		for _, e := range edges {
			w, v := idx[e[0]], idx[e[1]]
			for size := 1; size <= k; size++ {
				for _, sel := range combin.Combinations(k, size) {
					in := make([]bool, k)
					for _, i := range sel {
						in[i] = true
					}
					lits := make([]int, 0, k)
					for i := 0; i < k; i++ {
						if in[i] {
							lits = append(lits, xi[i][w])
						} else {
							lits = append(lits, xi[i][v])
						}
					}
					m.atMost(lits, 1)
				}
			}
		}
	case F2:
		for qi, q := range maximalCliques(g) {
			owners := make([]int, k)
			for i := 0; i < k; i++ {
				owners[i] = m.lit(cliqueVar(i, qi))
			}
			m.atMost(owners, 1)
			for i := 0; i < k; i++ {
				for _, v := range q {
					m.addClause(-xi[i][idx[v]], owners[i])
				}
			}
		}
	}
	for i := 0; i < k; i++ {
		m.atMost(xi[i], b)
	}
	neg := make([]int, 0, k*len(ids))
	for i := 0; i < k; i++ {
		for vi := range ids {
			neg = append(neg, -xi[i][vi])
		}
	}
	m.minimize(neg...)
	vals, err := m.solve(verbose)
	if err != nil {
		return nil, err
	}
	return extractPartition(ids, k, vals), nil
}

// pbCoverSolve encodes the subset-cover formulations, generating every
// violated cover constraint up front. Exponential in the node count.
func pbCoverSolve(g graph.Undirected, k, b int, code Code, verbose bool) (*Solution, error) {
	ids := nodeIDs(g)
	idx := indexOf(ids)
	m := newPBModel()
	x := make([]int, len(ids))
	for vi, v := range ids {
		x[vi] = m.lit(nodeVar(v))
	}
	nCovers := 0
	for _, w := range subsetsUpTo(ids, len(ids)) {
		switch code {
		case F3:
			if minShores(g, w, b, packing.MinBins) > k {
				lits := make([]int, len(w))
				for i, v := range w {
					lits[i] = x[idx[v]]
				}
				m.addClause(lits...)
				nCovers++
			}
		case F4:
			for _, comp := range componentsOf(g, w) {
				if len(comp) == b+1 {
					lits := make([]int, len(comp))
					for i, v := range comp {
						lits[i] = x[idx[v]]
					}
					m.addClause(lits...)
					nCovers++
				}
			}
		}
	}
	if verbose {
		fmt.Printf("c %s: %d cover constraints\n", code, nCovers)
	}
	m.minimize(x...)
	vals, err := m.solve(verbose)
	if err != nil {
		return nil, err
	}
	return extractSeparator(ids, vals), nil
}

// minShores returns the number of capacity-b shores needed by the subgraph
// induced on w, or packing.Infinite when a component alone exceeds b.
func minShores(g graph.Undirected, w []int64, b int, bins func([]int, int) int) int {
	comps := componentsOf(g, w)
	weights := make([]int, len(comps))
	for i, comp := range comps {
		if len(comp) > b {
			return packing.Infinite
		}
		weights[i] = len(comp)
	}
	return bins(weights, b)
}

func indexOf(ids []int64) map[int64]int {
	idx := make(map[int64]int, len(ids))
	for vi, v := range ids {
		idx[v] = vi
	}
	return idx
}

// extractPartition reads shore assignments back from named values; nodes
// claimed by no shore form the separator. ids are sorted, so the resulting
// node lists are too.
func extractPartition(ids []int64, k int, vals map[string]bool) *Solution {
	sol := &Solution{Shores: make([][]int64, k)}
	for _, v := range ids {
		assigned := false
		for i := 0; i < k; i++ {
			if vals[shoreVar(i, v)] {
				sol.Shores[i] = append(sol.Shores[i], v)
				assigned = true
				break
			}
		}
		if !assigned {
			sol.Separator = append(sol.Separator, v)
		}
	}
	return sol
}

// extractSeparator reads the bare separator form back from named values.
func extractSeparator(ids []int64, vals map[string]bool) *Solution {
	sol := &Solution{}
	for _, v := range ids {
		if vals[nodeVar(v)] {
			sol.Separator = append(sol.Separator, v)
		}
	}
	return sol
}
