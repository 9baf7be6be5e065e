package wakeup

import "sync/atomic"

type runState uint32

const (
	stateRunning runState = iota
	stateWaiting
)

// side tracks whether one endpoint is currently blocked in Wait, purely for
// observability (see metrics.Observer); it has no bearing on correctness,
// which rests entirely on the arm/drain protocol in producer.go/consumer.go.
type side struct {
	state atomic.Uint32
}

func (s *side) setWaiting() {
	s.state.Store(uint32(stateWaiting))
}

func (s *side) setRunning() {
	s.state.Store(uint32(stateRunning))
}

func (s *side) waiting() bool {
	return runState(s.state.Load()) == stateWaiting
}
