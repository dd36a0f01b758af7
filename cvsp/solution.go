package cvsp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
)

// Solution is a solved separator. Separator holds the removed nodes, sorted
// by ID. For the fixed-K formulations Shores holds the K shore node sets,
// some possibly empty; for the subset-cover formulations Shores is nil and
// the solution is the bare separator form.
type Solution struct {
	Separator []int64
	Shores    [][]int64
}

// Partitioned reports whether the solution carries explicit shores.
func (s *Solution) Partitioned() bool { return s.Shores != nil }

// Retained returns the number of nodes kept outside the separator.
func (s *Solution) Retained() int {
	n := 0
	for _, shore := range s.Shores {
		n += len(shore)
	}
	return n
}

// Validate checks s against the graph it was computed from. In partition
// form the separator and shores must cover every node exactly once, no
// shore may exceed b nodes and no edge may join two different shores. In
// bare form no component left after removing the separator may exceed b
// nodes.
func (s *Solution) Validate(g graph.Undirected, b int) error {
	ids := nodeIDs(g)
	assigned := make(map[int64]int, len(ids)) // node -> shore index + 1, 0 for separator
	for _, v := range s.Separator {
		if _, ok := assigned[v]; ok {
			return errors.Errorf("node %d assigned twice", v)
		}
		assigned[v] = 0
	}
	for i, shore := range s.Shores {
		if len(shore) > b {
			return errors.Errorf("shore %d holds %d nodes, capacity is %d", i, len(shore), b)
		}
		for _, v := range shore {
			if _, ok := assigned[v]; ok {
				return errors.Errorf("node %d assigned twice", v)
			}
			assigned[v] = i + 1
		}
	}
	if s.Partitioned() {
		if len(assigned) != len(ids) {
			return errors.Errorf("%d nodes assigned, graph has %d", len(assigned), len(ids))
		}
		for _, e := range graphEdges(g) {
			su, sv := assigned[e[0]], assigned[e[1]]
			if su > 0 && sv > 0 && su != sv {
				return errors.Errorf("edge (%d,%d) joins shores %d and %d", e[0], e[1], su-1, sv-1)
			}
		}
		return nil
	}
	var rest []int64
	for _, v := range ids {
		if _, ok := assigned[v]; !ok {
			rest = append(rest, v)
		}
	}
	for _, comp := range componentsOf(g, rest) {
		if len(comp) > b {
			return errors.Errorf("leftover component holds %d nodes, capacity is %d", len(comp), b)
		}
	}
	return nil
}
