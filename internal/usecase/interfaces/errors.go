package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write
// (compare-and-swap on status, insert-if-absent) does not hold.
var ErrConditionFailed = errors.New("conditional write failed")
