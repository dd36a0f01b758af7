package cvsp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
)

var (
	// ErrInvalidFormulation reports an unknown library or an out-of-range
	// formulation index.
	ErrInvalidFormulation = errors.New("invalid formulation")
	// ErrNoSolution reports that the solver terminated without a proven
	// optimal solution.
	ErrNoSolution = errors.New("no optimal solution found")
)

// Options configures a single Solve call.
type Options struct {
	Library     Library
	Formulation int  // 1-based index into Formulations(Library)
	K           int  // number of shores, at least 2
	B           int  // shore capacity, at least 1
	Verbose     bool // solver diagnostics; no effect on results
}

// Solve runs the selected formulation on g. The fixed-K formulations return
// the partition form (separator plus K shores), the subset-cover ones the
// bare separator form. A solve ending without proven optimality yields an
// error matching ErrNoSolution; callers decide how to report it.
func Solve(g graph.Undirected, opts Options) (*Solution, error) {
	fs := Formulations(opts.Library)
	if fs == nil {
		return nil, errors.Wrapf(ErrInvalidFormulation, "unknown library %d", int(opts.Library))
	}
	if opts.Formulation < 1 || opts.Formulation > len(fs) {
		return nil, errors.Wrapf(ErrInvalidFormulation, "index %d not in 1..%d for %s",
			opts.Formulation, len(fs), opts.Library)
	}
	if opts.K < 2 {
		return nil, errors.Errorf("k must be at least 2, got %d", opts.K)
	}
	if opts.B < 1 {
		return nil, errors.Errorf("b must be at least 1, got %d", opts.B)
	}
	if len(nodeIDs(g)) == 0 {
		return &Solution{}, nil
	}
	f := fs[opts.Formulation-1]
	sol, err := f.Solve(g, opts.K, opts.B, opts.Verbose)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", f.Code())
	}
	return sol, nil
}
