package graphio

import (
	"fmt"
	"math/rand"
)

// Random returns an undirected instance with n nodes labeled v0..v{n-1}
// and m distinct edges sampled uniformly without replacement, deterministic
// per seed. m is capped at n(n-1)/2.
func Random(n, m int, seed int64) *Instance {
	in := newInstance(false)
	for i := 0; i < n; i++ {
		in.node(fmt.Sprintf("v%d", i))
	}
	var all [][2]int64
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			all = append(all, [2]int64{int64(u), int64(v)})
		}
	}
	if m > len(all) {
		m = len(all)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	for _, e := range all[:m] {
		in.addEdge(e[0], e[1])
	}
	return in
}

// Grid returns the rows x cols grid graph with nodes labeled v0..v{rc-1}
// in row-major order and edges between horizontal and vertical neighbors.
func Grid(rows, cols int) *Instance {
	in := newInstance(false)
	id := func(r, c int) int64 { return int64(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			in.node(fmt.Sprintf("v%d", id(r, c)))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				in.addEdge(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				in.addEdge(id(r, c), id(r+1, c))
			}
		}
	}
	return in
}
