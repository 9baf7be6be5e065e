//go:build unix

package shmalloc

import (
	"fmt"
	"os"
	"syscall"
)

// Region is a byte slice backed by a file under /dev/shm (or, if /dev/shm
// isn't available, the OS temp directory), mapped MAP_SHARED so every
// process that opens the same name sees the same bytes. Mmap'd pages are
// always page-aligned, well past any Region.TotalAlign ring.Layout could
// compute for a realistic element type.
type Region struct {
	file *os.File
	Mem  []byte
	Path string
}

// Create allocates a new segment of size bytes and maps it. It fails if a
// segment with this name already exists; the creator is expected to be the
// single owner responsible for eventually calling Remove.
func Create(name string, size int) (*Region, error) {
	path := segmentPath(name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("shmalloc: create %s: %w", path, err)
	}

	if err := file.Truncate(int64(size)); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("shmalloc: truncate %s: %w", path, err)
	}

	mem, err := mmapFile(file, size)
	if err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("shmalloc: mmap %s: %w", path, err)
	}

	return &Region{file: file, Mem: mem, Path: path}, nil
}

// Open maps an existing segment created by Create in another process. size
// must match (or be smaller than) what Create allocated.
func Open(name string, size int) (*Region, error) {
	path := segmentPath(name)

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("shmalloc: open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("shmalloc: stat %s: %w", path, err)
	}
	if info.Size() < int64(size) {
		file.Close()
		return nil, ErrTooSmall
	}

	mem, err := mmapFile(file, size)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("shmalloc: mmap %s: %w", path, err)
	}

	return &Region{file: file, Mem: mem, Path: path}, nil
}

// Close unmaps the region and closes the file descriptor, but leaves the
// backing file in place so the peer can still have it mapped. Call Remove
// instead (or in addition, from whichever side is the owner) to delete it.
func (r *Region) Close() error {
	if err := syscall.Munmap(r.Mem); err != nil {
		return fmt.Errorf("shmalloc: munmap: %w", err)
	}
	return r.file.Close()
}

// Remove deletes the backing file. Safe to call after both sides have
// closed their mapping, or from the creator once it knows the peer has
// opened its own mapping (mmap keeps the pages alive after unlink on Unix).
func (r *Region) Remove() error {
	return os.Remove(r.Path)
}

func mmapFile(file *os.File, size int) ([]byte, error) {
	return syscall.Mmap(int(file.Fd()), 0, size, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
}
