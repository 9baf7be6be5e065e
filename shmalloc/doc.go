// Package shmalloc allocates and maps the backing byte region ring.Init
// needs, using POSIX shared memory (/dev/shm) so the region is visible
// across process boundaries. ring and wakeup are deliberately agnostic to
// where their region comes from; shmalloc is one concrete answer, not the
// only one a caller could use.
package shmalloc
