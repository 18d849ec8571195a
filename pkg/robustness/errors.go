package robustness

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidStrategy   = errors.New("strategy incompatible with target kind")
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrUnknownTargetKind = errors.New("unknown target kind")
	ErrEmptyGraph        = errors.New("graph has no elements of the requested kind")
	ErrInvalidFraction   = errors.New("fraction must be in (0, 1]")
	ErrNilRandSource     = errors.New("random strategy requires a rand source")
	ErrNilPlan           = errors.New("removal plan is nil")
)

// StrategyError provides structured error information for plan computation.
type StrategyError struct {
	Strategy string // Requested strategy name
	Kind     string // Requested target kind name
	Cause    error  // Underlying error
}

// Error implements the error interface.
func (e *StrategyError) Error() string {
	switch {
	case e.Strategy != "" && e.Kind != "":
		return fmt.Sprintf("strategy %q with target kind %q: %v", e.Strategy, e.Kind, e.Cause)
	case e.Strategy != "":
		return fmt.Sprintf("strategy %q: %v", e.Strategy, e.Cause)
	case e.Kind != "":
		return fmt.Sprintf("target kind %q: %v", e.Kind, e.Cause)
	default:
		return e.Cause.Error()
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *StrategyError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *StrategyError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// invalidStrategyError creates an error for a strategy/kind mismatch.
func invalidStrategyError(s Strategy, k TargetKind) error {
	return &StrategyError{Strategy: s.String(), Kind: k.String(), Cause: ErrInvalidStrategy}
}
