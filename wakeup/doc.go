// Package wakeup layers fd-based blocking and edge-triggered notification on
// top of a ring channel. Neither ring.Producer nor ring.Consumer ever
// blocks or performs a syscall; wakeup adds exactly that, using a pair of
// Descriptors so a caller with its own event loop (epoll, mio, kqueue) can
// multiplex a wakeup.Consumer or wakeup.Producer's readiness alongside
// everything else it watches.
//
// The protocol arms a descriptor only on the transition that actually
// matters to the peer: a Send that moves the channel from empty to
// non-empty arms the descriptor the consumer waits on; a Recv that moves it
// from full to non-full arms the one the producer waits on. A Send into a
// non-empty channel, or a Recv from a non-full one, makes no descriptor call
// at all; a transition arms the descriptor whether or not the peer is
// actually waiting.
package wakeup
