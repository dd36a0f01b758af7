// Package graphio reads and writes separator problem instances in the
// comma-separated text format: a "nodes, edges, directed" header line
// followed by one labeled edge per line. Nodes are implied by edge
// endpoints and numbered by first appearance, so parsing the same file
// always yields the same graph.
package graphio

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrMismatch reports a header whose node or edge count disagrees with the
// edges actually listed.
var ErrMismatch = errors.New("structure does not match header")

// Instance is a parsed or generated problem instance: the graph plus the
// label tables mapping node IDs back to the input names.
type Instance struct {
	Directed bool

	labels []string
	ids    map[string]int64
	und    *simple.UndirectedGraph
	dir    *simple.DirectedGraph
}

func newInstance(directed bool) *Instance {
	in := &Instance{Directed: directed, ids: make(map[string]int64)}
	if directed {
		in.dir = simple.NewDirectedGraph()
	} else {
		in.und = simple.NewUndirectedGraph()
	}
	return in
}

// node returns the ID for label, creating the node on first use.
func (in *Instance) node(label string) int64 {
	if id, ok := in.ids[label]; ok {
		return id
	}
	id := int64(len(in.labels))
	in.labels = append(in.labels, label)
	in.ids[label] = id
	if in.Directed {
		in.dir.AddNode(simple.Node(id))
	} else {
		in.und.AddNode(simple.Node(id))
	}
	return id
}

// addEdge inserts the edge and reports whether it was new.
func (in *Instance) addEdge(u, v int64) bool {
	if in.Directed {
		if in.dir.HasEdgeFromTo(u, v) {
			return false
		}
		in.dir.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		return true
	}
	if in.und.HasEdgeBetween(u, v) {
		return false
	}
	in.und.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	return true
}

// Graph returns the instance as an undirected graph, collapsing arc
// directions when the instance is directed.
func (in *Instance) Graph() graph.Undirected {
	if in.Directed {
		return graph.Undirect{G: in.dir}
	}
	return in.und
}

// Label returns the input name of a node ID, or "" for an unknown ID.
func (in *Instance) Label(id int64) string {
	if id < 0 || id >= int64(len(in.labels)) {
		return ""
	}
	return in.labels[id]
}

// ID returns the node ID of an input name.
func (in *Instance) ID(label string) (int64, bool) {
	id, ok := in.ids[label]
	return id, ok
}

// Order returns the number of nodes.
func (in *Instance) Order() int { return len(in.labels) }

// edgeList returns the edges as ID pairs in deterministic order. IDs are
// dense by construction, so a plain scan suffices; undirected edges appear
// once, as (low, high).
func (in *Instance) edgeList() [][2]int64 {
	var pairs [][2]int64
	for u := int64(0); u < int64(in.Order()); u++ {
		var targets []int64
		var it graph.Nodes
		if in.Directed {
			it = in.dir.From(u)
		} else {
			it = in.und.From(u)
		}
		for it.Next() {
			if w := it.Node().ID(); in.Directed || w > u {
				targets = append(targets, w)
			}
		}
		sort.Slice(targets, func(a, b int) bool { return targets[a] < targets[b] })
		for _, w := range targets {
			pairs = append(pairs, [2]int64{u, w})
		}
	}
	return pairs
}

// Parse reads an instance from r. The first line must be the header
// "nodes, edges, directed" with directed 0 or 1; every further non-blank
// line is an edge "u, v" over arbitrary labels. A leading UTF-8 BOM is
// stripped and surrounding whitespace is ignored. Self-loops are rejected,
// and the header counts must match the distinct nodes and edges listed,
// otherwise an error wrapping ErrMismatch is returned.
func Parse(r io.Reader) (*Instance, error) {
	var (
		in           *Instance
		wantN, wantM int
		edges        int
		lineno       int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if lineno == 1 {
			line = strings.TrimPrefix(line, "﻿")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if in == nil {
			if len(fields) != 3 {
				return nil, errors.Errorf("line %d: expected 3 header fields, got %d", lineno, len(fields))
			}
			nums := make([]int, 3)
			for i, f := range fields {
				v, err := strconv.Atoi(f)
				if err != nil || v < 0 {
					return nil, errors.Errorf("line %d: invalid header value %q", lineno, f)
				}
				nums[i] = v
			}
			if nums[2] > 1 {
				return nil, errors.Errorf("line %d: directed flag must be 0 or 1, got %d", lineno, nums[2])
			}
			wantN, wantM = nums[0], nums[1]
			in = newInstance(nums[2] == 1)
			continue
		}
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected 2 edge fields, got %d", lineno, len(fields))
		}
		if fields[0] == fields[1] {
			return nil, errors.Errorf("line %d: self-loop on %q", lineno, fields[0])
		}
		if in.addEdge(in.node(fields[0]), in.node(fields[1])) {
			edges++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, errors.New("missing header")
	}
	if in.Order() != wantN {
		return nil, errors.Wrapf(ErrMismatch, "header declares %d nodes, found %d", wantN, in.Order())
	}
	if edges != wantM {
		return nil, errors.Wrapf(ErrMismatch, "header declares %d edges, found %d", wantM, edges)
	}
	return in, nil
}

// ParseFile reads an instance from a file.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	in, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return in, nil
}
