package cvsp

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func TestNodeIDsSorted(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for _, id := range []int64{7, 2, 9, 0, 4} {
		g.AddNode(simple.Node(id))
	}
	want := []int64{0, 2, 4, 7, 9}
	for i := 0; i < 5; i++ {
		if got := nodeIDs(g); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestGraphEdges(t *testing.T) {
	g := path(4)
	want := [][2]int64{{0, 1}, {1, 2}, {2, 3}}
	for i := 0; i < 5; i++ {
		if got := graphEdges(g); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestComponentsOf(t *testing.T) {
	g := path(5)
	tests := []struct {
		nodes []int64
		want  [][]int64
	}{
		{nil, nil},
		{[]int64{2}, [][]int64{{2}}},
		{[]int64{0, 1, 2, 3, 4}, [][]int64{{0, 1, 2, 3, 4}}},
		{[]int64{0, 1, 3, 4}, [][]int64{{0, 1}, {3, 4}}},
		{[]int64{0, 2, 4}, [][]int64{{0}, {2}, {4}}},
	}
	for _, tt := range tests {
		if got := componentsOf(g, tt.nodes); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("componentsOf(%v): expected %v, got %v", tt.nodes, tt.want, got)
		}
	}
}

func TestMaximalCliques(t *testing.T) {
	// Triangle {0,1,2} with the tail 2-3 and the isolated node 4.
	g := simple.NewUndirectedGraph()
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {0, 2}, {2, 3}} {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	g.AddNode(simple.Node(4))
	want := [][]int64{{0, 1, 2}, {2, 3}, {4}}
	if got := maximalCliques(g); !reflect.DeepEqual(got, want) {
		t.Errorf("expected cliques %v, got %v", want, got)
	}
}

func TestInduced(t *testing.T) {
	g := twoTriangles()
	sub := induced(g, []int64{0, 1, 2, 4})
	want := [][2]int64{{0, 1}, {0, 2}, {1, 2}}
	if got := graphEdges(sub); !reflect.DeepEqual(got, want) {
		t.Errorf("expected edges %v, got %v", want, got)
	}
	if got := nodeIDs(sub); !reflect.DeepEqual(got, []int64{0, 1, 2, 4}) {
		t.Errorf("expected nodes [0 1 2 4], got %v", got)
	}
}
