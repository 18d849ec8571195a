// Package ingest loads weighted edge lists from CSV into a graph. The
// expected format is the character-interaction export used by the dashboard:
// a header row containing Source, Target, and Weight columns, one undirected
// edge per row.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cfoyle/percolate/pkg/graph"
)

// Common sentinel errors
var (
	ErrMissingColumns = errors.New("CSV must contain Source, Target, and Weight columns")
	ErrEmptyEndpoint  = errors.New("edge endpoint is empty")
)

// ParseError reports a malformed row with its 1-based line number.
type ParseError struct {
	Line  int
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("edge list line %d: %v", e.Line, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Options configures an edge-list load.
type Options struct {
	// MaxEdges caps the number of edge rows read; 0 means no limit. The
	// dashboard uses this for its fast-preview mode.
	MaxEdges int
}

// LoadEdgeList reads a CSV edge list and builds an undirected weighted graph.
// Returns the graph and the number of edge rows consumed. Rows repeating an
// existing edge update its weight, matching edge-list semantics where the
// last occurrence wins.
func LoadEdgeList(r io.Reader, opts Options) (*graph.Graph, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, ErrMissingColumns
		}
		return nil, 0, fmt.Errorf("read edge list header: %w", err)
	}

	sourceCol, targetCol, weightCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Source":
			sourceCol = i
		case "Target":
			targetCol = i
		case "Weight":
			weightCol = i
		}
	}
	if sourceCol < 0 || targetCol < 0 || weightCol < 0 {
		return nil, 0, ErrMissingColumns
	}

	g := graph.New()
	rows := 0
	line := 1

	for {
		if opts.MaxEdges > 0 && rows >= opts.MaxEdges {
			break
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, rows, &ParseError{Line: line, Cause: err}
		}

		source := strings.TrimSpace(record[sourceCol])
		target := strings.TrimSpace(record[targetCol])
		if source == "" || target == "" {
			return nil, rows, &ParseError{Line: line, Cause: ErrEmptyEndpoint}
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(record[weightCol]), 64)
		if err != nil {
			return nil, rows, &ParseError{Line: line, Cause: fmt.Errorf("parse weight: %w", err)}
		}

		if err := g.AddEdge(source, target, weight); err != nil {
			return nil, rows, &ParseError{Line: line, Cause: err}
		}
		rows++
	}

	return g, rows, nil
}

// LoadEdgeListFile opens path and loads it with LoadEdgeList.
func LoadEdgeListFile(path string, opts Options) (*graph.Graph, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()
	return LoadEdgeList(f, opts)
}
