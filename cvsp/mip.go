package cvsp

import (
	"fmt"
	"math"

	"github.com/lanl/highs"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"

	"github.com/crillab/cvsep/packing"
)

// intTol decides integrality when reading float column values back from the
// MIP solver: a binary counts as set when its value is at least 1-intTol.
// The pseudo-boolean side returns exact booleans and never consults it.
const intTol = 0.1

// mipFormulation solves one of the mixed-integer encodings with HiGHS.
type mipFormulation struct {
	code Code
}

func (f mipFormulation) Code() Code { return f.code }

func (f mipFormulation) Solve(g graph.Undirected, k, b int, verbose bool) (*Solution, error) {
	switch f.code {
	case F1, F2:
		return mipShoreSolve(g, k, b, f.code, verbose)
	case F3, F4:
		return mipCoverSolve(g, k, b, f.code, verbose)
	default:
		return nil, errors.Wrapf(ErrInvalidFormulation, "%s", f.code)
	}
}

// newBinaryModel returns a model of nCols binary integer columns with zero
// costs.
func newBinaryModel(nCols int) *highs.Model {
	lp := new(highs.Model)
	lp.VarTypes = make([]highs.VariableType, nCols)
	lp.ColLower = make([]float64, nCols)
	lp.ColUpper = make([]float64, nCols)
	lp.ColCosts = make([]float64, nCols)
	for c := 0; c < nCols; c++ {
		lp.VarTypes[c] = highs.IntegerType
		lp.ColUpper[c] = 1
	}
	return lp
}

// solveMIP runs the model and returns its column values, mapping anything
// short of proven optimality to ErrNoSolution.
func solveMIP(lp *highs.Model) ([]float64, error) {
	sol, err := lp.Solve()
	if err != nil {
		return nil, errors.Wrap(ErrNoSolution, err.Error())
	}
	if sol.Status != highs.Optimal {
		return nil, errors.Wrap(ErrNoSolution, sol.Status.String())
	}
	return sol.ColumnPrimal, nil
}

// mipShoreSolve encodes F1 and F2. Assignment columns are laid out shore
// major (i*n + vi), clique ownership columns follow them for F2. HiGHS
// minimizes, so negated unit costs on the assignment columns maximize the
// retained nodes.
func mipShoreSolve(g graph.Undirected, k, b int, code Code, verbose bool) (*Solution, error) {
	ids := nodeIDs(g)
	n := len(ids)
	idx := indexOf(ids)
	var cliques [][]int64
	nCols := k * n
	if code == F2 {
		cliques = maximalCliques(g)
		nCols += k * len(cliques)
	}
	col := func(i, vi int) int { return i*n + vi }
	colQ := func(i, qi int) int { return k*n + i*len(cliques) + qi }
	lp := newBinaryModel(nCols)
	for i := 0; i < k; i++ {
		for vi := 0; vi < n; vi++ {
			lp.ColCosts[col(i, vi)] = -1
		}
	}
	for vi := 0; vi < n; vi++ {
		row := make([]float64, nCols)
		for i := 0; i < k; i++ {
			row[col(i, vi)] = 1
		}
		lp.AddDenseRow(0, row, 1)
	}
	switch code {
	case F1:
		for _, e := range graphEdges(g) {
			w, v := idx[e[0]], idx[e[1]]
			for i := 0; i < k; i++ {
				row := make([]float64, nCols)
				row[col(i, w)] = 1
				for j := 0; j < k; j++ {
					if j != i {
						row[col(j, v)] = 1
					}
				}
				lp.AddDenseRow(0, row, 1)
			}
		}
	case F2:
		for qi := range cliques {
			row := make([]float64, nCols)
			for i := 0; i < k; i++ {
				row[colQ(i, qi)] = 1
			}
			lp.AddDenseRow(0, row, 1)
			for i := 0; i < k; i++ {
				for _, v := range cliques[qi] {
					link := make([]float64, nCols)
					link[col(i, idx[v])] = 1
					link[colQ(i, qi)] = -1
					lp.AddDenseRow(math.Inf(-1), link, 0)
				}
			}
		}
	}
	for i := 0; i < k; i++ {
		row := make([]float64, nCols)
		for vi := 0; vi < n; vi++ {
			row[col(i, vi)] = 1
		}
		lp.AddDenseRow(0, row, float64(b))
	}
	if verbose {
		fmt.Printf("c %s/highs: %d columns\n", code, nCols)
	}
	prim, err := solveMIP(lp)
	if err != nil {
		return nil, err
	}
	sol := &Solution{Shores: make([][]int64, k)}
	for _, v := range ids {
		assigned := false
		for i := 0; i < k; i++ {
			if prim[col(i, idx[v])] >= 1-intTol {
				sol.Shores[i] = append(sol.Shores[i], v)
				assigned = true
				break
			}
		}
		if !assigned {
			sol.Separator = append(sol.Separator, v)
		}
	}
	return sol, nil
}

// mipCoverSolve encodes F3 and F4: one binary column per node, all violated
// cover rows generated up front.
func mipCoverSolve(g graph.Undirected, k, b int, code Code, verbose bool) (*Solution, error) {
	ids := nodeIDs(g)
	n := len(ids)
	idx := indexOf(ids)
	lp := newBinaryModel(n)
	for c := 0; c < n; c++ {
		lp.ColCosts[c] = 1
	}
	nCovers := 0
	for _, w := range subsetsUpTo(ids, n) {
		switch code {
		case F3:
			if minShores(g, w, b, packing.MinBinsMIP) > k {
				row := make([]float64, n)
				for _, v := range w {
					row[idx[v]] = 1
				}
				lp.AddDenseRow(1, row, math.Inf(1))
				nCovers++
			}
		case F4:
			for _, comp := range componentsOf(g, w) {
				if len(comp) == b+1 {
					row := make([]float64, n)
					for _, v := range comp {
						row[idx[v]] = 1
					}
					lp.AddDenseRow(1, row, math.Inf(1))
					nCovers++
				}
			}
		}
	}
	if verbose {
		fmt.Printf("c %s/highs: %d cover constraints\n", code, nCovers)
	}
	prim, err := solveMIP(lp)
	if err != nil {
		return nil, err
	}
	sol := &Solution{}
	for _, v := range ids {
		if prim[idx[v]] >= 1-intTol {
			sol.Separator = append(sol.Separator, v)
		}
	}
	return sol, nil
}
