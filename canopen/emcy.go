package canopen

import (
	"encoding/binary"
	"fmt"

	"github.com/notnil/canmsg"
)

// Emergency is an EMCY message including its source node id.
// Payload layout (8 bytes):
//
//	0..1: error code (little-endian)
//	2:    error register
//	3..7: manufacturer specific data
type Emergency struct {
	Node          NodeID
	ErrorCode     uint16
	ErrorRegister uint8
	Manufacturer  [5]byte
}

// MarshalCANMessage encodes the EMCY event.
func (e Emergency) MarshalCANMessage() (canmsg.Message, error) {
	if err := e.Node.Validate(); err != nil {
		return canmsg.Message{}, err
	}
	var payload [8]byte
	binary.LittleEndian.PutUint16(payload[0:2], e.ErrorCode)
	payload[2] = e.ErrorRegister
	copy(payload[3:8], e.Manufacturer[:])
	return canmsg.New(COBID(FC_EMCY, e.Node), payload[:])
}

// UnmarshalCANMessage decodes the EMCY event.
func (e *Emergency) UnmarshalCANMessage(m canmsg.Message) error {
	if m.Len() < 8 {
		return fmt.Errorf("canopen: emcy too short: %d", m.Len())
	}
	fc, node, err := ParseCOBID(m.ID())
	if err != nil {
		return err
	}
	if fc != FC_EMCY {
		return fmt.Errorf("canopen: not an emcy message (id=%v)", m.ID())
	}
	d := m.Data()
	e.Node = node
	e.ErrorCode = binary.LittleEndian.Uint16(d[0:2])
	e.ErrorRegister = d[2]
	copy(e.Manufacturer[:], d[3:8])
	return nil
}
