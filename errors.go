// Package surfacebridge error values and helpers, with cause chain support.
package surfacebridge

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminated is returned by operations attempted after the bridge has
	// been terminated. Termination is one-way; callers receiving this error
	// should release their references to the bridge and its capabilities.
	ErrTerminated = errors.New("surfacebridge: bridge terminated")

	// ErrUnsupported is returned (wrapped, with a descriptive message) by
	// window operations the hosting environment cannot perform, such as
	// icon assignment. Use [errors.Is] to detect it.
	ErrUnsupported = errors.New("surfacebridge: unsupported in this environment")

	// ErrSurfaceNotFound is returned by [Attach] when the hosting surface
	// cannot be resolved by its identifier.
	ErrSurfaceNotFound = errors.New("surfacebridge: surface not found")

	// ErrRendererCreate is returned by [Attach] when the renderer factory
	// fails. The factory's error is attached to the cause chain.
	ErrRendererCreate = errors.New("surfacebridge: failed to create renderer")
)

// WrapError wraps an error with a message, preserving the cause chain.
//
// The result satisfies errors.Is(result, cause) == true.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}
