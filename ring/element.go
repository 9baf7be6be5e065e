package ring

import "unsafe"

// T, the type parameter accepted by LayoutFor, Init, Producer and Consumer,
// must be bit-copyable: assigning or copying a value of T must be equivalent
// to copying its raw bytes, with no side effects, no finalizers, and no
// pointers into memory that outlives the region or is private to one
// process. Go's generics have no constraint that expresses this mechanically
// (unlike, say, a `Copy`/`bytemuck::Pod`-style trait bound in a language
// with one); satisfying it is the caller's responsibility.
//
// Concretely: T must not contain a slice, map, channel, interface, function
// value, or pointer, unless that pointer is valid and equally meaningful in
// every process that will read the region. Fixed-size arrays of such
// primitive fields, and structs composed entirely of them, are fine.
// Violating this does not corrupt the ring's own bookkeeping, but it will
// corrupt or crash whatever reads the element back.
func sizeOf[T any](zero T) uintptr {
	return unsafe.Sizeof(zero)
}

func alignOf[T any](zero T) uintptr {
	return unsafe.Alignof(zero)
}
