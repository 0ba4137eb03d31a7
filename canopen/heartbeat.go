package canopen

import (
	"fmt"
	"sync"

	"github.com/notnil/canmsg"
)

// HeartbeatMessage is an NMT error control heartbeat from a node.
type HeartbeatMessage struct {
	Node  NodeID
	State NMTState
}

// MarshalCANMessage encodes the heartbeat. A heartbeat carries a single
// byte with the current NMTState.
func (h HeartbeatMessage) MarshalCANMessage() (canmsg.Message, error) {
	if err := h.Node.Validate(); err != nil {
		return canmsg.Message{}, err
	}
	return canmsg.New(COBID(FC_NMT_ERRCTRL, h.Node), []byte{byte(h.State)})
}

// UnmarshalCANMessage decodes the heartbeat.
func (h *HeartbeatMessage) UnmarshalCANMessage(m canmsg.Message) error {
	if m.Len() < 1 {
		return fmt.Errorf("canopen: heartbeat too short: %d", m.Len())
	}
	fc, node, err := ParseCOBID(m.ID())
	if err != nil {
		return err
	}
	if fc != FC_NMT_ERRCTRL {
		return fmt.Errorf("canopen: not a heartbeat message (id=%v)", m.ID())
	}
	h.Node = node
	h.State = NMTState(m.Data()[0])
	return nil
}

// SubscribeHeartbeats subscribes to heartbeats via mux and delivers parsed
// events. If nodeFilter is non-nil, only heartbeats from that node are
// delivered. The channel is closed on cancel or when the mux closes; after
// cancel the caller does not need to keep draining it.
func SubscribeHeartbeats(mux *canmsg.Mux, nodeFilter *NodeID, buffer int) (<-chan HeartbeatMessage, func()) {
	filter := HeartbeatAny()
	if nodeFilter != nil {
		filter = Heartbeat(*nodeFilter)
	}
	msgs, cancel := mux.Subscribe(canmsg.And(filter, canmsg.Not(canmsg.LenExactly(0))), buffer)

	out := make(chan HeartbeatMessage, buffer)
	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			cancel()
		})
	}
	go func() {
		defer close(out)
		for m := range msgs {
			var h HeartbeatMessage
			if err := h.UnmarshalCANMessage(m); err != nil {
				continue
			}
			select {
			case out <- h:
			case <-done:
				return
			}
		}
	}()
	return out, stop
}
