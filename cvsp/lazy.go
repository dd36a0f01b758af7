package cvsp

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
	"gonum.org/v1/gonum/graph"

	"github.com/crillab/cvsep/packing"
)

// Assignment holds one incumbent's variable values, keyed by name.
type Assignment map[string]bool

// A LazyHandler inspects each integer-feasible incumbent found during
// search. Returned cuts are added to the live model and the incumbent is
// rejected; accept reports that the incumbent satisfies the full problem.
// A handler must return at least one cut when it rejects, otherwise the
// same incumbent recurs forever.
type LazyHandler interface {
	OnIncumbent(values Assignment) (cuts []solver.PBConstr, accept bool)
}

// runLazy drives the incremental solver: solve, hand the incumbent to the
// handler, inject its cuts, and after each accepted incumbent demand a
// strictly smaller objective, until the model becomes unsatisfiable. The
// last accepted incumbent is optimal. This is the solver's own minimization
// loop with a cut hook added between iterations.
func runLazy(m *pbModel, h LazyHandler, verbose bool) (Assignment, error) {
	s := m.newSolver(verbose)
	maxCost := len(m.objLits)
	var best Assignment
	for s.Solve() == solver.Sat {
		model := s.Model()
		cuts, accept := h.OnIncumbent(m.values(model))
		if !accept {
			if verbose {
				fmt.Printf("c %d lazy cuts\n", len(cuts))
			}
			for _, c := range cuts {
				s.AppendClause(c.Clause())
			}
			continue
		}
		best = m.values(model)
		cost := m.cost(model)
		if verbose {
			fmt.Printf("o %d\n", cost)
		}
		if cost == 0 {
			break
		}
		neg := make([]int, len(m.objLits))
		weights := make([]int, len(m.objLits))
		for i, l := range m.objLits {
			neg[i] = -l
			weights[i] = 1
		}
		s.AppendClause(solver.GtEq(neg, weights, maxCost-cost+1).Clause())
	}
	if best == nil {
		return nil, ErrNoSolution
	}
	return best, nil
}

// coverHandler generates cover cuts from each incumbent's separator
// complement, realizing the lazy modes of the subset-cover formulations.
type coverHandler struct {
	g    graph.Undirected
	ids  []int64
	vars map[int64]int // node -> separator literal
	k, b int
	code Code
	bins func([]int, int) int
}

func (h *coverHandler) OnIncumbent(values Assignment) ([]solver.PBConstr, bool) {
	// The candidate subset is the separator's complement: every node the
	// incumbent left out of S.
	w := make([]int64, 0, len(h.ids))
	for _, v := range h.ids {
		if !values[nodeVar(v)] {
			w = append(w, v)
		}
	}
	switch h.code {
	case F3Lazy:
		if minShores(h.g, w, h.b, h.bins) > h.k {
			lits := make([]int, len(w))
			for i, v := range w {
				lits[i] = h.vars[v]
			}
			return []solver.PBConstr{solver.PropClause(lits...)}, false
		}
	case F4Lazy:
		var cuts []solver.PBConstr
		for _, comp := range componentsOf(h.g, w) {
			if len(comp) > h.b {
				lits := make([]int, len(comp))
				for i, v := range comp {
					lits[i] = h.vars[v]
				}
				cuts = append(cuts, solver.PropClause(lits...))
			}
		}
		if len(cuts) > 0 {
			return cuts, false
		}
	}
	return nil, true
}

// pbLazySolve builds the bare cover model (objective only) and lets the
// handler grow it from incumbents.
func pbLazySolve(g graph.Undirected, k, b int, code Code, verbose bool) (*Solution, error) {
	ids := nodeIDs(g)
	m := newPBModel()
	vars := make(map[int64]int, len(ids))
	x := make([]int, len(ids))
	for vi, v := range ids {
		x[vi] = m.lit(nodeVar(v))
		vars[v] = x[vi]
	}
	m.minimize(x...)
	h := &coverHandler{g: g, ids: ids, vars: vars, k: k, b: b, code: code, bins: packing.MinBins}
	vals, err := runLazy(m, h, verbose)
	if err != nil {
		return nil, err
	}
	return extractSeparator(ids, vals), nil
}
