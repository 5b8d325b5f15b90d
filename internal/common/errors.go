// Package common defines sentinel errors shared across application
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Persistence failures surfaced past the repository carry no
	// detail beyond this sentinel; the cause is logged at the store.
	ErrorInternal = errors.New("internal error")
)
