package shmalloc

import (
	"os"
	"path/filepath"
)

func segmentPath(name string) string {
	if devShmAvailable() {
		return filepath.Join("/dev/shm", "shmring_"+name)
	}
	return filepath.Join(os.TempDir(), "shmring_"+name)
}

func devShmAvailable() bool {
	info, err := os.Stat("/dev/shm")
	if err != nil {
		return false
	}
	return info.IsDir()
}
