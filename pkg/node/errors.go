package node

import "errors"

// ErrIndexOutOfRange is returned when a Param node's index is not covered by
// the context supplied at evaluation time.
var ErrIndexOutOfRange = errors.New("context index out of range")
