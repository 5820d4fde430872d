package reactive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCycleDetected is matched by every *CycleError.
	ErrCycleDetected = errors.New("reactive: cycle detected")

	// ErrDisposed is reported to hooks when a disposed handle is read or
	// written. Reads still return the last value and writes are dropped.
	ErrDisposed = errors.New("reactive: node disposed")

	// ErrWriteInComputed is returned when a computed body writes a signal.
	// Only effects and plain callers may write.
	ErrWriteInComputed = errors.New("reactive: signal written inside a computed")

	// ErrFlushLimit is returned when effects keep writing signals for more
	// passes than the system allows.
	ErrFlushLimit = errors.New("reactive: flush pass limit exceeded")

	// ErrNoOwner is returned when an owner-scoped operation runs outside of
	// any computed, effect or scope.
	ErrNoOwner = errors.New("reactive: no owner")
)

// CycleError is raised when resolving a node requires resolving itself.
type CycleError struct {
	// Node is the node that was re-entered.
	Node NodeID
	// Path lists the in-progress nodes from the re-entered one to the reader.
	Path []NodeID
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s: node %d via [%s]", ErrCycleDetected, e.Node, strings.Join(parts, " -> "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// EvaluationError wraps the failure of one computed or effect body.
type EvaluationError struct {
	Node  NodeID
	Kind  Kind
	Label string
	Err   error
}

func (e *EvaluationError) Error() string {
	name := fmt.Sprintf("%s %d", e.Kind, e.Node)
	if e.Label != "" {
		name = fmt.Sprintf("%s %d (%s)", e.Kind, e.Node, e.Label)
	}
	return fmt.Sprintf("reactive: %s failed: %v", name, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking node body.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
