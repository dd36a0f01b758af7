package cvsp

import (
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func TestF1Path(t *testing.T) {
	g := path(3)
	sol, err := Solve(g, Options{Library: Gophersat, Formulation: 1, K: 2, B: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(sol.Separator, []int64{1}) {
		t.Errorf("expected separator [1], got %v", sol.Separator)
	}
	if got := sol.Retained(); got != 2 {
		t.Errorf("expected 2 retained nodes, got %d", got)
	}
	if !sol.Partitioned() {
		t.Error("expected a partitioned solution")
	}
	if err := sol.Validate(g, 1); err != nil {
		t.Errorf("invalid solution: %v", err)
	}
}

func TestF1Hub(t *testing.T) {
	g := hubGraph()
	sol, err := Solve(g, Options{Library: Gophersat, Formulation: 1, K: 3, B: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(sol.Separator, []int64{8, 9}) {
		t.Errorf("expected separator [8 9], got %v", sol.Separator)
	}
	sizes := shoreSizes(sol)
	if len(sizes) != 3 || sizes[0] != 2 || sizes[1] != 3 || sizes[2] != 3 {
		t.Errorf("expected shore sizes [2 3 3], got %v", sizes)
	}
	if err := sol.Validate(g, 3); err != nil {
		t.Errorf("invalid solution: %v", err)
	}
}

func TestAssignmentVariantsAgree(t *testing.T) {
	fixtures := []struct {
		name     string
		g        *simple.UndirectedGraph
		k, b     int
		retained int
	}{
		{"path5", path(5), 2, 2, 4},
		{"twoTriangles", twoTriangles(), 2, 3, 5},
		{"hub", hubGraph(), 3, 3, 8},
	}
	for _, fx := range fixtures {
		for _, idx := range []int{1, 2, 3, 4} {
			sol, err := Solve(fx.g, Options{Library: Gophersat, Formulation: idx, K: fx.k, B: fx.b})
			if err != nil {
				t.Fatalf("%s/%d: %v", fx.name, idx, err)
			}
			if got := sol.Retained(); got != fx.retained {
				t.Errorf("%s/%d: expected %d retained nodes, got %d", fx.name, idx, fx.retained, got)
			}
			if err := sol.Validate(fx.g, fx.b); err != nil {
				t.Errorf("%s/%d: invalid solution: %v", fx.name, idx, err)
			}
		}
	}
}

func TestF2TwoTriangles(t *testing.T) {
	g := twoTriangles()
	sol, err := Solve(g, Options{Library: Gophersat, Formulation: 4, K: 2, B: 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := sol.Retained(); got != 5 {
		t.Errorf("expected 5 retained nodes, got %d", got)
	}
	if len(sol.Separator) != 1 || (sol.Separator[0] != 2 && sol.Separator[0] != 3) {
		t.Errorf("expected separator {2} or {3}, got %v", sol.Separator)
	}
	if err := sol.Validate(g, 3); err != nil {
		t.Errorf("invalid solution: %v", err)
	}
}

func TestF3Hub(t *testing.T) {
	g := hubGraph()
	sol, err := Solve(g, Options{Library: Gophersat, Formulation: 5, K: 3, B: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(sol.Separator, []int64{8, 9}) {
		t.Errorf("expected separator [8 9], got %v", sol.Separator)
	}
	if sol.Partitioned() {
		t.Error("expected a bare solution")
	}
	if err := sol.Validate(g, 3); err != nil {
		t.Errorf("invalid solution: %v", err)
	}
}

func TestF4Path(t *testing.T) {
	g := path(5)
	sol, err := Solve(g, Options{Library: Gophersat, Formulation: 7, K: 2, B: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(sol.Separator, []int64{2}) {
		t.Errorf("expected separator [2], got %v", sol.Separator)
	}
	if err := sol.Validate(g, 2); err != nil {
		t.Errorf("invalid solution: %v", err)
	}
}

func TestF4IgnoresShoreCount(t *testing.T) {
	// Five isolated nodes fit b=1 whatever k is, so F4 keeps everything
	// while F3 still pays for the bin limit.
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 5; i++ {
		g.AddNode(simple.Node(i))
	}
	f4, err := Solve(g, Options{Library: Gophersat, Formulation: 7, K: 2, B: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(f4.Separator) != 0 {
		t.Errorf("expected empty separator from F4, got %v", f4.Separator)
	}
	f3, err := Solve(g, Options{Library: Gophersat, Formulation: 5, K: 2, B: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(f3.Separator) != 3 {
		t.Errorf("expected |S|=3 from F3, got %v", f3.Separator)
	}
}
