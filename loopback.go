package canmsg

import (
	"sync"
)

// LoopbackBus is an in-memory CAN bus for tests and simulations.
// Multiple endpoints opened from the same bus can exchange messages.
type LoopbackBus struct {
	mu        sync.RWMutex
	closed    bool
	endpoints map[*Endpoint]struct{}
}

// NewLoopbackBus creates a new loopback bus.
func NewLoopbackBus() *LoopbackBus {
	return &LoopbackBus{endpoints: make(map[*Endpoint]struct{})}
}

// Open creates a new endpoint attached to the bus. Endpoints opened after
// the bus is closed are already closed.
func (b *LoopbackBus) Open() *Endpoint {
	ep := &Endpoint{
		bus:    b,
		ch:     make(chan Message, 64),
		closed: make(chan struct{}),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		ep.dead = true
		close(ep.closed)
		return ep
	}
	b.endpoints[ep] = struct{}{}
	return ep
}

// Close closes the bus and detaches all endpoints.
func (b *LoopbackBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for ep := range b.endpoints {
		ep.closeNoLock()
	}
	b.endpoints = nil
	return nil
}

// Endpoint is one participant on a LoopbackBus. It implements Bus and
// io.Closer.
type Endpoint struct {
	bus    *LoopbackBus
	ch     chan Message
	mu     sync.Mutex
	dead   bool
	closed chan struct{}
}

// Send broadcasts the message to all other endpoints on the same bus.
func (e *Endpoint) Send(m Message) error {
	e.mu.Lock()
	if e.dead {
		e.mu.Unlock()
		return ErrClosed
	}
	e.mu.Unlock()
	// Snapshot endpoints so the bus lock is not held while delivering.
	e.bus.mu.RLock()
	if e.bus.closed {
		e.bus.mu.RUnlock()
		return ErrClosed
	}
	targets := make([]*Endpoint, 0, len(e.bus.endpoints))
	for ep := range e.bus.endpoints {
		if ep != e {
			targets = append(targets, ep)
		}
	}
	e.bus.mu.RUnlock()

	for _, t := range targets {
		select {
		case t.ch <- m:
		case <-t.closed:
		}
	}
	return nil
}

// Receive waits for the next message. It returns ErrClosed once the
// endpoint or its bus is closed, even if messages were still queued.
func (e *Endpoint) Receive() (Message, error) {
	select {
	case <-e.closed:
		return Message{}, ErrClosed
	default:
	}
	select {
	case m := <-e.ch:
		return m, nil
	case <-e.closed:
		return Message{}, ErrClosed
	}
}

// Close detaches the endpoint from the bus. Pending messages are dropped.
func (e *Endpoint) Close() error {
	e.bus.mu.Lock()
	e.closeNoLock()
	e.bus.mu.Unlock()
	return nil
}

func (e *Endpoint) closeNoLock() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dead {
		return
	}
	e.dead = true
	close(e.closed)
	if e.bus.endpoints != nil {
		delete(e.bus.endpoints, e)
	}
}
