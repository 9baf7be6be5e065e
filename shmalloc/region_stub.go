//go:build !unix

package shmalloc

import "errors"

// ErrUnsupported is returned on platforms with no POSIX shared memory
// support wired up (only unix is implemented; see region_unix.go).
var ErrUnsupported = errors.New("shmalloc: shared memory segments are not supported on this platform")

type Region struct {
	Mem  []byte
	Path string
}

func Create(name string, size int) (*Region, error) {
	return nil, ErrUnsupported
}

func Open(name string, size int) (*Region, error) {
	return nil, ErrUnsupported
}

func (r *Region) Close() error {
	return ErrUnsupported
}

func (r *Region) Remove() error {
	return ErrUnsupported
}
