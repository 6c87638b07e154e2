// Package parser reads edge lists and writes paths in the text format used by
// the longpath command.
//
// An edge list has one edge per line in the form "u, v, w" where u and v are
// base-10 integer vertex identifiers and w is a real number. Blank lines are
// ignored and malformed lines are silently dropped.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rhartert/longpath/graph"
)

// maxLineSize is the size of the longest line that can be read.
const maxLineSize = 1 << 20

// Record is an edge as read from an edge list.
type Record struct {
	From   int64
	To     int64
	Weight float64
}

// Summary counts the lines read from an edge list.
type Summary struct {
	Lines   int // all lines, including blank and dropped ones
	Blank   int
	Dropped int
}

// ParseRecord parses a single line of an edge list. It returns an error if the
// line does not have exactly three comma-separated fields, if the vertex
// identifiers are not base-10 integers, or if the weight is not a finite
// decimal real number.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Record{}, fmt.Errorf("invalid edge: want 3 fields, got %d", len(parts))
	}
	from, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid edge: %w", err)
	}
	to, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid edge: %w", err)
	}
	w, err := parseWeight(strings.TrimSpace(parts[2]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid edge: %w", err)
	}
	return Record{From: from, To: to, Weight: w}, nil
}

// parseWeight parses a finite decimal real number. Hexadecimal literals, which
// strconv.ParseFloat also accepts, are rejected.
func parseWeight(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("weight %q is not a decimal number", s)
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, fmt.Errorf("weight %q is not finite", s)
	}
	return w, nil
}

// ParseEdges reads r until EOF and returns the edges of all well-formed
// lines, in order. Malformed lines are dropped and only counted in the
// returned Summary. The returned error is only non-nil if reading r failed.
func ParseEdges(r io.Reader) ([]Record, Summary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	records := []Record{}
	summary := Summary{}
	for scanner.Scan() {
		summary.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			summary.Blank++
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			summary.Dropped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, summary, fmt.Errorf("error reading edges: %w", err)
	}

	return records, summary, nil
}

// ReadGraph reads an edge list from r and builds the corresponding graph.
func ReadGraph(r io.Reader) (*graph.Digraph, Summary, error) {
	records, summary, err := ParseEdges(r)
	if err != nil {
		return nil, summary, err
	}
	b := graph.NewBuilder()
	for _, rec := range records {
		b.AddEdge(rec.From, rec.To, rec.Weight)
	}
	return b.Build(), summary, nil
}
