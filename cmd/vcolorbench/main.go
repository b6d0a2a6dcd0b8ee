// Command vcolorbench runs every coloring algorithm, on both graph
// representations, against every .col instance in a directory and prints
// a TSV timing report (optionally also an SVG scatter plot of colors used
// vs. microseconds elapsed).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/katalvlaran/vcolor/color"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/dimacs"
	"github.com/katalvlaran/vcolor/graph"
)

type run struct {
	algo     string
	colors   int
	micros   int64
	instance string
}

type namedAlgo struct {
	name string
	fn   func(graph.Graph) coloring.Coloring
}

var algorithms = []namedAlgo{
	{"naive", color.ColorNaive},
	{"by-degree", color.ColorByDegree},
	{"dsatur", color.ColorDSATUR},
	{"rlf", color.ColorRLF},
}

func main() {
	dir := flag.String("dir", "instances", "directory containing .col instance files")
	plotPath := flag.String("plot", "", "optional path to write an SVG scatter plot of colors vs. microseconds")
	flag.Parse()

	paths, err := collectInstances(*dir)
	if err != nil {
		log.Fatalf("vcolorbench: %v", err)
	}

	fmt.Println("colors\tmicros\tname\tpath")
	var runs []run
	for _, path := range paths {
		instanceRuns, err := benchmarkInstance(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vcolorbench: skipping %s: %v\n", path, err)
			continue
		}
		for _, r := range instanceRuns {
			fmt.Printf("%d\t%d\t%s\t%s\n", r.colors, r.micros, r.algo, r.instance)
		}
		runs = append(runs, instanceRuns...)
	}

	if *plotPath != "" {
		if err := writeScatterPlot(*plotPath, runs); err != nil {
			log.Fatalf("vcolorbench: writing plot: %v", err)
		}
	}
}

// collectInstances returns every *.col file directly under dir, sorted by
// path for deterministic report ordering.
func collectInstances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".col" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// benchmarkInstance parses one .col file and times every algorithm against
// both the AdjacencyList it parses into and the CSR built from it,
// validating each resulting coloring before recording the run.
func benchmarkInstance(path string) ([]run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := dimacs.Parse(f)
	if err != nil {
		return nil, err
	}
	csr := graph.NewCSR(g)
	name := filepath.Base(path)

	var out []run
	for _, a := range algorithms {
		for _, rep := range []struct {
			label string
			g     graph.Graph
		}{
			{"", g},
			{" csr", csr},
		} {
			start := time.Now()
			c := a.fn(rep.g)
			elapsed := time.Since(start)
			coloring.ValidateColoring(rep.g, c)
			out = append(out, run{
				algo:     a.name + rep.label,
				colors:   coloring.CountColors(c),
				micros:   elapsed.Microseconds(),
				instance: name,
			})
		}
	}
	return out, nil
}
