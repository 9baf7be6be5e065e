package shmalloc

import "errors"

// ErrTooSmall is returned by Open when the existing segment file is smaller
// than the size the caller expects to find.
var ErrTooSmall = errors.New("shmalloc: segment smaller than requested size")
