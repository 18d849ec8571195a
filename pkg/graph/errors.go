package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrEdgeNotFound  = errors.New("edge not found")
	ErrInvalidWeight = errors.New("edge weight must be positive")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op     string // Operation that failed (e.g., "add", "remove")
	Entity string // Entity type ("node" or "edge")
	ID     string // Node ID, or "u-v" for edges
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// NodeNotFoundError creates a node not found error for the given operation.
func NodeNotFoundError(op, id string) error {
	return &GraphError{Op: op, Entity: "node", ID: id, Cause: ErrNodeNotFound}
}

// EdgeNotFoundError creates an edge not found error for the given operation.
func EdgeNotFoundError(op, a, b string) error {
	key := NewEdgeKey(a, b)
	return &GraphError{Op: op, Entity: "edge", ID: key.U + "-" + key.V, Cause: ErrEdgeNotFound}
}

// EdgeError creates a structured error for an edge operation.
func EdgeError(op, a, b string, cause error) error {
	key := NewEdgeKey(a, b)
	return &GraphError{Op: op, Entity: "edge", ID: key.U + "-" + key.V, Cause: cause}
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrEdgeNotFound)
}
