package canmsg

import (
	"io"
	"sync"
)

// Mux multiplexes messages from a Bus to any number of subscribers via
// filters.
//
// It owns the provided Bus for receiving and runs a single background
// goroutine that reads from Receive and fans messages out to subscribers,
// so several consumers never compete on Receive.
//
// Send is not proxied; callers keep using the original Bus to Send.
type Mux struct {
	bus  Bus
	stop chan struct{}
	once sync.Once

	mu   sync.RWMutex
	dead bool
	subs map[uint64]*subscriber
	next uint64
}

type subscriber struct {
	filter Filter
	ch     chan Message
}

// NewMux creates and starts a multiplexer bound to bus.
func NewMux(bus Bus) *Mux {
	m := &Mux{
		bus:  bus,
		stop: make(chan struct{}),
		subs: make(map[uint64]*subscriber),
	}
	go m.run()
	return m
}

// Close stops the background reader and closes all subscriber channels.
// If the bus implements io.Closer it is closed too, which unblocks the
// reader.
func (m *Mux) Close() error {
	var err error
	m.once.Do(func() {
		close(m.stop)
		m.closeSubs()
		if c, ok := m.bus.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}

// Subscribe registers a subscriber with the given filter and channel
// buffer. A nil filter matches everything. The cancel function closes the
// returned channel. Once the mux is closed or its bus has failed, the
// returned channel is already closed.
func (m *Mux) Subscribe(filter Filter, buffer int) (<-chan Message, func()) {
	if buffer < 0 {
		buffer = 0
	}
	s := &subscriber{filter: filter, ch: make(chan Message, buffer)}
	m.mu.Lock()
	if m.dead {
		m.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	id := m.next
	m.next++
	m.subs[id] = s
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		if cur, ok := m.subs[id]; ok && cur == s {
			close(cur.ch)
			delete(m.subs, id)
		}
		m.mu.Unlock()
	}
	return s.ch, cancel
}

// closeSubs marks the mux dead and closes every subscriber channel.
// Subscribe on a dead mux returns an already closed channel.
func (m *Mux) closeSubs() {
	m.mu.Lock()
	m.dead = true
	for id, s := range m.subs {
		close(s.ch)
		delete(m.subs, id)
	}
	m.mu.Unlock()
}

func (m *Mux) run() {
	for {
		select {
		case <-m.stop:
			return
		default:
		}
		msg, err := m.bus.Receive()
		if err != nil {
			m.closeSubs()
			return
		}
		m.mu.RLock()
		for _, s := range m.subs {
			if s.filter == nil || s.filter(msg) {
				select {
				case s.ch <- msg:
				default:
					// Slow subscriber; drop.
				}
			}
		}
		m.mu.RUnlock()
	}
}
