package cvsp

import (
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func TestMIPHub(t *testing.T) {
	if testing.Short() {
		t.Skip("needs the native HiGHS library")
	}
	g := hubGraph()
	sol, err := Solve(g, Options{Library: HiGHS, Formulation: 1, K: 3, B: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(sol.Separator, []int64{8, 9}) {
		t.Errorf("expected separator [8 9], got %v", sol.Separator)
	}
	if err := sol.Validate(g, 3); err != nil {
		t.Errorf("invalid solution: %v", err)
	}
}

func TestMIPMatchesPB(t *testing.T) {
	if testing.Short() {
		t.Skip("needs the native HiGHS library")
	}
	fixtures := []struct {
		name string
		g    *simple.UndirectedGraph
		k, b int
	}{
		{"path5", path(5), 2, 2},
		{"path6", path(6), 2, 2},
		{"twoTriangles", twoTriangles(), 2, 3},
	}
	// HiGHS index -> gophersat index for the same formulation.
	pairs := []struct {
		mip, pb int
		shores  bool
	}{
		{1, 1, true},  // F1
		{2, 4, true},  // F2
		{3, 5, false}, // F3
		{4, 7, false}, // F4
	}
	for _, fx := range fixtures {
		for _, p := range pairs {
			mip, err := Solve(fx.g, Options{Library: HiGHS, Formulation: p.mip, K: fx.k, B: fx.b})
			if err != nil {
				t.Fatalf("%s/highs %d: %v", fx.name, p.mip, err)
			}
			pb, err := Solve(fx.g, Options{Library: Gophersat, Formulation: p.pb, K: fx.k, B: fx.b})
			if err != nil {
				t.Fatalf("%s/gophersat %d: %v", fx.name, p.pb, err)
			}
			if p.shores {
				if mip.Retained() != pb.Retained() {
					t.Errorf("%s/%d: highs retained %d, gophersat %d",
						fx.name, p.mip, mip.Retained(), pb.Retained())
				}
			} else if len(mip.Separator) != len(pb.Separator) {
				t.Errorf("%s/%d: highs |S|=%d, gophersat |S|=%d",
					fx.name, p.mip, len(mip.Separator), len(pb.Separator))
			}
			if err := mip.Validate(fx.g, fx.b); err != nil {
				t.Errorf("%s/highs %d: invalid solution: %v", fx.name, p.mip, err)
			}
		}
	}
}
