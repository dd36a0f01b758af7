package graphio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/crillab/cvsep/cvsp"
)

// WriteInstance emits the instance in the input text format. Parsing the
// output reproduces the instance, labels included.
func WriteInstance(w io.Writer, in *Instance) error {
	bw := bufio.NewWriter(w)
	pairs := in.edgeList()
	d := 0
	if in.Directed {
		d = 1
	}
	fmt.Fprintf(bw, "%d, %d, %d\n", in.Order(), len(pairs), d)
	for _, p := range pairs {
		fmt.Fprintf(bw, "%s, %s\n", in.labels[p[0]], in.labels[p[1]])
	}
	return bw.Flush()
}

// WriteSolution emits the solution with the instance's labels: the
// separator on an "S:" line, then one "Vi:" line per shore when the
// solution carries the partition. Each list is in ascending ID order.
func WriteSolution(w io.Writer, in *Instance, sol *cvsp.Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, labeledLine("S", in, sol.Separator))
	for i, shore := range sol.Shores {
		fmt.Fprintln(bw, labeledLine(fmt.Sprintf("V%d", i), in, shore))
	}
	return bw.Flush()
}

func labeledLine(prefix string, in *Instance, ids []int64) string {
	cp := append([]int64(nil), ids...)
	sort.Slice(cp, func(a, b int) bool { return cp[a] < cp[b] })
	parts := make([]string, len(cp))
	for i, id := range cp {
		parts[i] = in.Label(id)
	}
	if len(parts) == 0 {
		return prefix + ":"
	}
	return prefix + ": " + strings.Join(parts, ", ")
}
