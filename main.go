package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/crillab/cvsep/cvsp"
	"github.com/crillab/cvsep/graphio"
)

func main() {
	debug.SetGCPercent(300)
	var (
		input   string
		output  string
		libName string
		form    int
		k, b    int
		quiet   bool
		gen     string
		sweep   bool
	)
	flag.StringVar(&input, "i", "", "input graph file")
	flag.StringVar(&output, "o", "", "output file; defaults to <input stem>_solution_<timestamp>.txt")
	flag.StringVar(&libName, "l", "gophersat", "solver library: gophersat or highs")
	flag.IntVar(&form, "f", 1, "formulation index within the library, 1-based")
	flag.IntVar(&k, "k", 3, "number of shores")
	flag.IntVar(&b, "b", 3, "shore capacity")
	flag.BoolVar(&quiet, "q", false, "suppresses solver diagnostics")
	flag.StringVar(&gen, "gen", "", "generate an instance instead of solving: random:n,m[,seed] or grid:rows,cols")
	flag.BoolVar(&sweep, "sweep", false, "solve over a grid of (k,b) pairs and print one timed row each")
	flag.Parse()

	if gen != "" {
		if err := generate(gen, output); err != nil {
			fatal("could not generate instance", err, quiet)
		}
		return
	}
	if input == "" {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] -i file.txt\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	lib, err := cvsp.ParseLibrary(libName)
	if err != nil {
		fatal("invalid arguments", err, quiet)
	}
	in, err := graphio.ParseFile(input)
	if err != nil {
		fatal("could not parse graph", err, quiet)
	}
	fmt.Printf("c solving %s: %d nodes\n", input, in.Order())
	if sweep {
		if err := runSweep(in, lib, form); err != nil {
			fatal("could not solve", err, quiet)
		}
		return
	}
	if output == "" {
		stem := strings.TrimSuffix(input, filepath.Ext(input))
		output = fmt.Sprintf("%s_solution_%s.txt", stem, time.Now().Format("20060102_150405"))
	}
	opts := cvsp.Options{Library: lib, Formulation: form, K: k, B: b, Verbose: !quiet}
	if err := solveOne(in, opts, output); err != nil {
		fatal("could not solve", err, quiet)
	}
}

// fatal reports the error on stderr and exits; verbose runs include the
// wrapped stack trace.
func fatal(msg string, err error, quiet bool) {
	if quiet {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "%s: %+v\n", msg, err)
	}
	os.Exit(1)
}

func solveOne(in *graphio.Instance, opts cvsp.Options, outPath string) error {
	start := time.Now()
	sol, err := cvsp.Solve(in.Graph(), opts)
	if err != nil {
		return err
	}
	if err := sol.Validate(in.Graph(), opts.B); err != nil {
		return fmt.Errorf("solution check failed: %v", err)
	}
	fmt.Printf("c solved in %v: %d separator nodes\n",
		time.Since(start).Round(time.Millisecond), len(sol.Separator))
	if err := graphio.WriteSolution(os.Stdout, in, sol); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("could not create %q: %v", outPath, err)
	}
	defer f.Close()
	if err := graphio.WriteSolution(f, in, sol); err != nil {
		return err
	}
	fmt.Printf("c solution written to %s\n", outPath)
	return nil
}

// runSweep solves every (k, b) pair with k from 2 to n/2 and b around the
// even-split size n/k, printing one row per pair.
func runSweep(in *graphio.Instance, lib cvsp.Library, form int) error {
	n := in.Order()
	for k := 2; k <= n/2; k++ {
		base := n / k
		for _, b := range []int{base - 1, base, base + 1} {
			if b < 1 {
				continue
			}
			start := time.Now()
			sol, err := cvsp.Solve(in.Graph(), cvsp.Options{Library: lib, Formulation: form, K: k, B: b})
			if err != nil {
				return fmt.Errorf("k=%d b=%d: %v", k, b, err)
			}
			fmt.Printf("k=%d b=%d separator=%d time=%v\n",
				k, b, len(sol.Separator), time.Since(start).Round(time.Millisecond))
		}
	}
	return nil
}

func generate(spec, outPath string) error {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return fmt.Errorf("invalid generator spec %q", spec)
	}
	fields := strings.Split(rest, ",")
	nums := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid generator spec %q: %v", spec, err)
		}
		nums[i] = v
	}
	var in *graphio.Instance
	switch {
	case kind == "random" && len(nums) == 2:
		in = graphio.Random(int(nums[0]), int(nums[1]), time.Now().UnixNano())
	case kind == "random" && len(nums) == 3:
		in = graphio.Random(int(nums[0]), int(nums[1]), nums[2])
	case kind == "grid" && len(nums) == 2:
		in = graphio.Grid(int(nums[0]), int(nums[1]))
	default:
		return fmt.Errorf("invalid generator spec %q", spec)
	}
	if outPath == "" {
		outPath = fmt.Sprintf("%s_%d_%d.txt", kind, nums[0], nums[1])
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("could not create %q: %v", outPath, err)
	}
	defer f.Close()
	if err := graphio.WriteInstance(f, in); err != nil {
		return err
	}
	fmt.Printf("c instance written to %s\n", outPath)
	return nil
}
