package cvsp

import "gonum.org/v1/gonum/stat/combin"

// subsetsUpTo materializes the non-empty subsets of ids having at most
// maxSize elements, by ascending size and lexicographically within a size.
// With maxSize == len(ids) it yields all 2^n - 1 non-empty subsets. The
// order is fixed so that constraint generation is reproducible.
func subsetsUpTo(ids []int64, maxSize int) [][]int64 {
	n := len(ids)
	if maxSize > n {
		maxSize = n
	}
	var subsets [][]int64
	for k := 1; k <= maxSize; k++ {
		for _, combo := range combin.Combinations(n, k) {
			sub := make([]int64, k)
			for i, idx := range combo {
				sub[i] = ids[idx]
			}
			subsets = append(subsets, sub)
		}
	}
	return subsets
}
