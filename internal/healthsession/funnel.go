package healthsession

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// stateFunnel serializes recorder state callbacks, which can arrive
// from any goroutine, onto a single consumer. Publishing never blocks:
// when the buffer is full the oldest event is dropped, so the freshest
// transitions always get through. Events that do fit are delivered in
// publish order.
type stateFunnel struct {
	mu     sync.Mutex
	closed bool
	events chan State
}

func newStateFunnel(buffer int) *stateFunnel {
	return &stateFunnel{
		events: make(chan State, buffer),
	}
}

func (f *stateFunnel) publish(state State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		log.Warnf("session state funnel closed, dropping event [%s]", state)
		return
	}
	for {
		select {
		case f.events <- state:
			return
		default:
		}
		select {
		case dropped := <-f.events:
			log.Warnf("session state funnel full, dropping oldest event [%s]", dropped)
		default:
		}
	}
}

// run consumes events until close is called. Intended to be run in
// exactly one goroutine.
func (f *stateFunnel) run(handle func(State)) {
	for state := range f.events {
		handle(state)
	}
}

func (f *stateFunnel) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.events)
}
