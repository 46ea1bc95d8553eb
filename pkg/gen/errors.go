package gen

import "errors"

// ErrInvalidArgument is returned for a malformed generation request, such as
// a negative parameter count.
var ErrInvalidArgument = errors.New("invalid generation request")

// ErrEmptyCatalog is returned when a node must be selected from an empty
// catalog. It signals a configuration mismatch between the generation policy
// and the supplied sets, not a transient fault.
var ErrEmptyCatalog = errors.New("empty catalog")

// ErrUnknownFunction is returned when a function name has no registered
// constructor.
var ErrUnknownFunction = errors.New("unknown function")
