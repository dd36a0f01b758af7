// Package packing computes minimum bin counts for weighted items.
// It is the feasibility oracle behind the subset-cover separator
// formulations: the items are the connected components left over by a
// candidate separator and the bins are the shores they must fit into.
package packing

import (
	"math"

	"github.com/crillab/gophersat/solver"
)

// Infinite is the bin count reported when no packing exists at all,
// e.g. when a single item exceeds the bin capacity.
const Infinite = math.MaxInt

// MinBins returns the minimum number of bins of the given capacity needed to
// hold all items, each item going to exactly one bin. It returns 0 for an
// empty item set and Infinite when the instance cannot be packed.
//
// The instance is solved as a small pseudo-boolean problem: one assignment
// variable per item/bin pair plus one used indicator per bin, with one bin
// slot per item as a safe upper bound. The sub-solver always runs silently.
func MinBins(weights []int, capacity int) int {
	m := len(weights)
	if m == 0 {
		return 0
	}
	// Vars 1..m*m assign item i to bin j; vars m*m+1..m*m+m mark used bins.
	x := func(i, j int) int { return i*m + j + 1 }
	y := func(j int) int { return m*m + j + 1 }
	constrs := make([]solver.PBConstr, 0, 3*m)
	for i := 0; i < m; i++ {
		lits := make([]int, m)
		for j := 0; j < m; j++ {
			lits[j] = x(i, j)
		}
		most := make([]int, m)
		copy(most, lits)
		constrs = append(constrs, solver.PropClause(lits...), solver.AtMost(most, 1))
	}
	for j := 0; j < m; j++ {
		// sum of w(i)*x(i,j) cannot exceed capacity*y(j).
		lits := make([]int, m+1)
		coeffs := make([]int, m+1)
		for i := 0; i < m; i++ {
			lits[i] = x(i, j)
			coeffs[i] = weights[i]
		}
		lits[m] = y(j)
		coeffs[m] = -capacity
		constrs = append(constrs, solver.LtEq(lits, coeffs, 0))
	}
	prob := solver.ParsePBConstrs(constrs)
	costLits := make([]solver.Lit, m)
	costWeights := make([]int, m)
	for j := 0; j < m; j++ {
		costLits[j] = solver.IntToLit(int32(y(j)))
		costWeights[j] = 1
	}
	prob.SetCostFunc(costLits, costWeights)
	cost := solver.New(prob).Minimize()
	if cost < 0 {
		return Infinite
	}
	return cost
}
