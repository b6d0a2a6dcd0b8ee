package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vcolor/graph"
)

// Parse reads a DIMACS edge-format graph from r and returns the equivalent
// AdjacencyList. It stops at the first malformed line or, on success,
// after the stream is exhausted.
func Parse(r io.Reader) (*graph.AdjacencyList, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var g *graph.AdjacencyList
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // blank line: ignored, same as c/n/x/d/v
		}

		switch fields[0] {
		case "c", "n", "x", "d", "v":
			// comment or ignored auxiliary-data line

		case "p":
			if g != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: ErrDuplicateProblemLine}
			}
			parsed, err := parseProblemLine(fields)
			if err != nil {
				return nil, malformed(lineNo, line, err)
			}
			g = parsed

		case "e":
			if g == nil {
				return nil, malformed(lineNo, line, fmt.Errorf("edge line before problem line"))
			}
			if err := applyEdgeLine(g, fields); err != nil {
				return nil, malformed(lineNo, line, err)
			}

		default:
			return nil, malformed(lineNo, line, fmt.Errorf("unrecognized line kind %q", fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNoProblemLine
	}
	return g, nil
}

// parseProblemLine parses "p edge N M"; M is accepted but not validated
// against the actual edge count, matching the format's advisory role.
func parseProblemLine(fields []string) (*graph.AdjacencyList, error) {
	if len(fields) != 4 || fields[1] != "edge" {
		return nil, fmt.Errorf("expected \"p edge <n> <m>\"")
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid vertex count %q", fields[2])
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return nil, fmt.Errorf("invalid edge count %q", fields[3])
	}
	return graph.NewAdjacencyList(n), nil
}

// applyEdgeLine parses "e U V" (1-based) and adds the 0-based edge to g,
// silently dropping self-loops.
func applyEdgeLine(g *graph.AdjacencyList, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("expected \"e <u> <v>\"")
	}
	u, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid vertex id %q", fields[1])
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("invalid vertex id %q", fields[2])
	}
	u, v = u-1, v-1
	n := g.NumVertices()
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("vertex out of range [1, %d]", n)
	}
	if u == v {
		return nil
	}
	g.AddEdge(u, v)
	return nil
}

func malformed(line int, text string, cause error) *ParseError {
	err := ErrMalformedLine
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedLine, cause)
	}
	return &ParseError{Line: line, Text: text, Err: err}
}
