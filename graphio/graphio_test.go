package graphio

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/crillab/cvsep/cvsp"
)

func TestParse(t *testing.T) {
	input := "﻿3, 2, 0\n\n a , b \nb, c\n\n"
	in, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.False(t, in.Directed)
	require.Equal(t, 3, in.Order())
	require.Equal(t, "a", in.Label(0))
	require.Equal(t, "c", in.Label(2))
	id, ok := in.ID("b")
	require.True(t, ok)
	require.Equal(t, int64(1), id)
	_, ok = in.ID("z")
	require.False(t, ok)
	g := in.Graph()
	require.True(t, g.HasEdgeBetween(0, 1))
	require.True(t, g.HasEdgeBetween(1, 2))
	require.False(t, g.HasEdgeBetween(0, 2))
}

func TestParseDirected(t *testing.T) {
	in, err := Parse(strings.NewReader("2, 2, 1\na, b\nb, a\n"))
	require.NoError(t, err)
	require.True(t, in.Directed)
	require.Equal(t, 2, in.Order())
	require.True(t, in.Graph().HasEdgeBetween(0, 1))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mismatch bool
	}{
		{"empty", "", false},
		{"short header", "3, 2\na, b\n", false},
		{"bad count", "x, 2, 0\na, b\n", false},
		{"bad flag", "2, 1, 2\na, b\n", false},
		{"one edge field", "2, 1, 0\nab\n", false},
		{"self loop", "2, 1, 0\na, a\n", false},
		{"node undercount", "4, 2, 0\na, b\nb, c\n", true},
		{"edge undercount", "2, 2, 0\na, b\n", true},
		{"duplicate edge", "2, 2, 0\na, b\nb, a\n", true},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.input))
		require.Error(t, err, tt.name)
		require.Equal(t, tt.mismatch, errors.Is(err, ErrMismatch), tt.name)
	}
}

func TestWriteInstanceRoundTrip(t *testing.T) {
	in := Random(8, 12, 1)
	var buf bytes.Buffer
	require.NoError(t, WriteInstance(&buf, in))

	back, err := Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, in.Order(), back.Order())
	require.Equal(t, in.edgeList(), back.edgeList())
	for id := int64(0); id < int64(in.Order()); id++ {
		require.Equal(t, in.Label(id), back.Label(id))
	}
}

func TestRandomDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteInstance(&a, Random(10, 15, 7)))
	require.NoError(t, WriteInstance(&b, Random(10, 15, 7)))
	require.Equal(t, a.String(), b.String())
	require.Len(t, Random(4, 99, 7).edgeList(), 6)
}

func TestGrid(t *testing.T) {
	in := Grid(3, 4)
	require.Equal(t, 12, in.Order())
	require.Len(t, in.edgeList(), 17)

	var buf bytes.Buffer
	require.NoError(t, WriteInstance(&buf, in))
	back, err := Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, in.edgeList(), back.edgeList())
}

func TestWriteSolution(t *testing.T) {
	in, err := Parse(strings.NewReader("3, 2, 0\na, b\nb, c\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	sol := &cvsp.Solution{Separator: []int64{1}, Shores: [][]int64{{2, 0}, {}}}
	require.NoError(t, WriteSolution(&buf, in, sol))
	require.Equal(t, "S: b\nV0: a, c\nV1:\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSolution(&buf, in, &cvsp.Solution{Separator: []int64{0, 2}}))
	require.Equal(t, "S: a, c\n", buf.String())
}

func TestHubEndToEnd(t *testing.T) {
	in, err := ParseFile("testdata/hub.txt")
	require.NoError(t, err)
	require.Equal(t, 10, in.Order())

	sol, err := cvsp.Solve(in.Graph(), cvsp.Options{
		Library: cvsp.Gophersat, Formulation: 1, K: 3, B: 3,
	})
	require.NoError(t, err)
	require.NoError(t, sol.Validate(in.Graph(), 3))

	var sep []string
	for _, id := range sol.Separator {
		sep = append(sep, in.Label(id))
	}
	require.Equal(t, []string{"v8", "v9"}, sep)

	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, in, sol))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "S: v8, v9", lines[0])

	var sizes []int
	for _, line := range lines[1:] {
		_, list, ok := strings.Cut(line, ": ")
		require.True(t, ok)
		sizes = append(sizes, len(strings.Split(list, ", ")))
	}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 3, 3}, sizes)
}
