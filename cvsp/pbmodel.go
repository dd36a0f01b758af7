package cvsp

import (
	"github.com/crillab/gophersat/solver"
)

// pbModel accumulates pseudo-boolean constraints over named variables and
// hands them to the gophersat solver, mapping names to integer literals the
// way the maxsat layer does.
type pbModel struct {
	intVars map[string]int // for each var, its integer counterpart
	varInts []string       // for each int value, the associated variable
	constrs []solver.PBConstr
	objLits []int // minimize the number of true literals among these
}

func newPBModel() *pbModel {
	return &pbModel{intVars: make(map[string]int)}
}

// lit returns the solver literal for the named variable, creating the
// variable on first use.
func (m *pbModel) lit(name string) int {
	v, ok := m.intVars[name]
	if !ok {
		m.varInts = append(m.varInts, name)
		v = len(m.varInts)
		m.intVars[name] = v
	}
	return v
}

// addClause adds a propositional clause: at least one lit must be true.
func (m *pbModel) addClause(lits ...int) {
	m.constrs = append(m.constrs, solver.PropClause(lits...))
}

// atMost adds sum(lits) <= n. The slice is copied first: the solver
// constructor negates its argument in place.
func (m *pbModel) atMost(lits []int, n int) {
	cp := make([]int, len(lits))
	copy(cp, lits)
	m.constrs = append(m.constrs, solver.AtMost(cp, n))
}

// minimize declares the cost function as the number of true literals among
// lits. Negated literals count when false.
func (m *pbModel) minimize(lits ...int) {
	m.objLits = lits
}

// problem builds the solver problem. The parser derives the variable count
// from constraint literals only, so a trivially-satisfied constraint over
// every variable is prepended: it is scanned for the count, then dropped,
// which keeps cost-only variables visible in the model.
func (m *pbModel) problem() *solver.Problem {
	all := make([]int, len(m.varInts))
	for i := range all {
		all[i] = i + 1
	}
	constrs := make([]solver.PBConstr, 0, len(m.constrs)+1)
	constrs = append(constrs, solver.AtLeast(all, 0))
	constrs = append(constrs, m.constrs...)
	prob := solver.ParsePBConstrs(constrs)
	if len(m.objLits) > 0 {
		lits := make([]solver.Lit, len(m.objLits))
		weights := make([]int, len(m.objLits))
		for i, l := range m.objLits {
			lits[i] = solver.IntToLit(int32(l))
			weights[i] = 1
		}
		prob.SetCostFunc(lits, weights)
	}
	return prob
}

func (m *pbModel) newSolver(verbose bool) *solver.Solver {
	s := solver.New(m.problem())
	s.Verbose = verbose
	return s
}

// solve minimizes the declared objective and returns the optimal assignment
// by variable name, or ErrNoSolution if the model is unsatisfiable.
func (m *pbModel) solve(verbose bool) (map[string]bool, error) {
	s := m.newSolver(verbose)
	if s.Minimize() < 0 {
		return nil, ErrNoSolution
	}
	return m.values(s.Model()), nil
}

// values maps a solver model back to variable names.
func (m *pbModel) values(model []bool) map[string]bool {
	res := make(map[string]bool, len(m.varInts))
	for i, name := range m.varInts {
		res[name] = model[i]
	}
	return res
}

// cost counts the satisfied objective literals in a model.
func (m *pbModel) cost(model []bool) int {
	n := 0
	for _, l := range m.objLits {
		v := l
		if v < 0 {
			v = -v
		}
		if model[v-1] == (l > 0) {
			n++
		}
	}
	return n
}
