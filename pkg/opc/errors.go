package opc

import "errors"

// Common errors.
var (
	// ErrPartNotFound is returned when a walk resolves to a part that is not
	// present in the package.
	ErrPartNotFound = errors.New("part not found")

	// ErrRelationshipNotFound is returned when a relationship id does not
	// exist in the table that was asked for it.
	ErrRelationshipNotFound = errors.New("relationship not found")

	// ErrMissingContentType aborts a save when a part does not resolve to a
	// content type. Omitting the manifest entry instead would produce an
	// archive that consumers cannot open.
	ErrMissingContentType = errors.New("missing content type")
)
