package scriptgraph

import (
	"errors"
	"strconv"
)

// ErrEntryNotFound is returned by Start when the named entry point is not
// registered in the graph.
var ErrEntryNotFound = errors.New("scriptgraph: entry point not found")

// ErrDuplicateNodeID is returned by Graph.AddNode when the id collides with
// an existing node.
var ErrDuplicateNodeID = errors.New("scriptgraph: duplicate node id")

// ErrDanglingRef is returned by Graph.Validate when a non-sentinel ref does
// not resolve to an existing node id.
var ErrDanglingRef = errors.New("scriptgraph: reference does not resolve to an existing node")

// ErrUnknownNodeType is returned by the catalog when asked to construct or
// load a type_name that was never registered.
var ErrUnknownNodeType = errors.New("scriptgraph: unknown node type")

// ErrTruncatedPayload is returned by the codec when a node's declared
// payload_size cannot be fully read from the container.
var ErrTruncatedPayload = errors.New("scriptgraph: truncated node payload")

// ErrMaxStepsExceeded is returned by Run when it hits the engine's
// WithMaxSteps guard without the instance halting on its own. It protects a
// host driving Run to completion against a misauthored unconditional loop;
// it never affects Start/Step, which always perform exactly one step.
var ErrMaxStepsExceeded = errors.New("scriptgraph: run exceeded maximum step count")

// NodeError wraps a failure attributable to a specific node, for
// errors.Is/errors.As chains that want to know which node misbehaved.
type NodeError struct {
	// NodeID identifies the node that produced this error.
	NodeID uint32

	// TypeName is the node's registered type, for diagnostics.
	TypeName string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return "scriptgraph: node " + strconv.FormatUint(uint64(e.NodeID), 10) + " (" + e.TypeName + "): " + e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *NodeError) Unwrap() error { return e.Cause }

// uintToStr formats a node id for use as an emitted event's NodeID field,
// which is a string so emitters need not know the id type.
func uintToStr(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
