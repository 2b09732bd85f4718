package core

import "errors"

// Sentinel errors for representation-level operations.
// All higher layers surface these unchanged (optionally wrapped with
// fmt.Errorf("...: %w", err)) so callers can dispatch via errors.Is.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex identifier.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an edge between the pair already exists where the
	// storage shape (set-backed list, matrix cell) admits at most one.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrUnknownStrategy indicates an unrecognized StrategyKind at construction.
	ErrUnknownStrategy = errors.New("core: unknown representation strategy")

	// ErrInvalidAttrValue indicates an attribute value outside the supported
	// kinds (string, number, boolean, nested map).
	ErrInvalidAttrValue = errors.New("core: invalid attribute value")

	// ErrNoMembers indicates a hyperedge was given an empty member set.
	ErrNoMembers = errors.New("core: hyperedge has no members")
)
