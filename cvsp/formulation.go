package cvsp

import (
	"gonum.org/v1/gonum/graph"

	"github.com/pkg/errors"
)

// Code identifies one of the known formulations.
type Code int

const (
	// F1 assigns each node directly to a shore, maximizing retained nodes.
	F1 Code = iota
	// F1AltB expands F1's adjacency constraint into one row per ordered
	// shore pair and edge.
	F1AltB
	// F1AltC restructures the adjacency constraint over every non-empty
	// sub-collection of shore indices.
	F1AltC
	// F2 replaces pairwise adjacency rows with maximal-clique ownership.
	F2
	// F3 minimizes the separator under subset covers backed by the
	// bin-packing oracle.
	F3
	// F3Lazy is F3 with covers generated from incumbents during search.
	F3Lazy
	// F4 minimizes the separator under component-size covers; it ignores K.
	F4
	// F4Lazy is F4 with covers generated from incumbents during search.
	F4Lazy
)

func (c Code) String() string {
	switch c {
	case F1:
		return "F1"
	case F1AltB:
		return "F1-alt-b"
	case F1AltC:
		return "F1-alt-c"
	case F2:
		return "F2"
	case F3:
		return "F3"
	case F3Lazy:
		return "F3-lazy"
	case F4:
		return "F4"
	case F4Lazy:
		return "F4-lazy"
	default:
		return "unknown"
	}
}

// A Formulation encodes the separator problem over a graph and solves it.
// Implementations are selected by Code through Formulations; they are
// stateless and safe for concurrent use on distinct graphs.
type Formulation interface {
	Code() Code
	Solve(g graph.Undirected, k, b int, verbose bool) (*Solution, error)
}

// Library selects the solver family a formulation is encoded for.
type Library int

const (
	// Gophersat solves the pseudo-boolean encodings, including the lazy
	// variants driven through the solver's incremental interface.
	Gophersat Library = iota
	// HiGHS solves the mixed-integer encodings. The binding exposes no
	// incumbent callback, so only the eager variants are available.
	HiGHS
)

func (l Library) String() string {
	switch l {
	case Gophersat:
		return "gophersat"
	case HiGHS:
		return "highs"
	default:
		return "unknown"
	}
}

// ParseLibrary maps a command-line name to a Library.
func ParseLibrary(name string) (Library, error) {
	switch name {
	case "gophersat":
		return Gophersat, nil
	case "highs":
		return HiGHS, nil
	default:
		return 0, errors.Wrapf(ErrInvalidFormulation, "unknown library %q", name)
	}
}

// Formulations lists the formulations available for the given library in
// index order; callers select them with a 1-based index.
func Formulations(lib Library) []Formulation {
	switch lib {
	case Gophersat:
		return []Formulation{
			pbFormulation{F1},
			pbFormulation{F1AltB},
			pbFormulation{F1AltC},
			pbFormulation{F2},
			pbFormulation{F3},
			pbFormulation{F3Lazy},
			pbFormulation{F4},
			pbFormulation{F4Lazy},
		}
	case HiGHS:
		return []Formulation{
			mipFormulation{F1},
			mipFormulation{F2},
			mipFormulation{F3},
			mipFormulation{F4},
		}
	default:
		return nil
	}
}
