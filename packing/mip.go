package packing

import (
	"math"

	"github.com/lanl/highs"
)

// MinBinsMIP behaves like MinBins but models the instance as a mixed-integer
// program solved by HiGHS. Column layout: m*m assignment variables followed
// by m bin-used indicators.
func MinBinsMIP(weights []int, capacity int) int {
	m := len(weights)
	if m == 0 {
		return 0
	}
	nCols := m*m + m
	lp := new(highs.Model)
	lp.VarTypes = make([]highs.VariableType, nCols)
	lp.ColLower = make([]float64, nCols)
	lp.ColUpper = make([]float64, nCols)
	lp.ColCosts = make([]float64, nCols)
	for c := 0; c < nCols; c++ {
		lp.VarTypes[c] = highs.IntegerType
		lp.ColUpper[c] = 1
	}
	for j := 0; j < m; j++ {
		lp.ColCosts[m*m+j] = 1
	}
	for i := 0; i < m; i++ {
		row := make([]float64, nCols)
		for j := 0; j < m; j++ {
			row[i*m+j] = 1
		}
		lp.AddDenseRow(1, row, 1)
	}
	for j := 0; j < m; j++ {
		row := make([]float64, nCols)
		for i := 0; i < m; i++ {
			row[i*m+j] = float64(weights[i])
		}
		row[m*m+j] = float64(-capacity)
		lp.AddDenseRow(math.Inf(-1), row, 0)
	}
	sol, err := lp.Solve()
	if err != nil || sol.Status != highs.Optimal {
		return Infinite
	}
	return int(math.Round(sol.Objective))
}
