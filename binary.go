package canmsg

import (
	"encoding/binary"
	"fmt"
)

// SocketCAN can_id flags and masks.
const (
	canEffFlag = 0x80000000
	canRtrFlag = 0x40000000
	canErrFlag = 0x20000000
)

// FrameSize is the length of the SocketCAN struct can_frame encoding.
const FrameSize = 16

// MarshalBinary encodes the message to the Linux SocketCAN "struct
// can_frame" layout (16 bytes). This layout is widely used and suitable
// for capture or transport.
//
// Layout (little-endian):
//
//	0..3  can_id (EFF flag set for extended identifiers)
//	4     can_dlc
//	5..7  padding (zero)
//	8..15 data bytes, zero past can_dlc
func (m Message) MarshalBinary() ([]byte, error) {
	buf := make([]byte, FrameSize)
	m.put(buf)
	return buf, nil
}

// AppendBinary appends the can_frame encoding of m to b.
func (m Message) AppendBinary(b []byte) ([]byte, error) {
	var buf [FrameSize]byte
	m.put(buf[:])
	return append(b, buf[:]...), nil
}

func (m Message) put(buf []byte) {
	id := m.id.Widen()
	if m.id.IsExtended() {
		id |= canEffFlag
	}
	binary.LittleEndian.PutUint32(buf[0:4], id)
	buf[4] = m.length
	copy(buf[8:8+m.length], m.data[:m.length])
}

// UnmarshalBinary decodes a message from the SocketCAN can_frame layout.
// Remote and error frames are rejected with ErrUnsupportedFrame. The
// result is validated as by New.
func (m *Message) UnmarshalBinary(data []byte) error {
	if len(data) < FrameSize {
		return fmt.Errorf("canmsg: need %d bytes, got %d", FrameSize, len(data))
	}
	raw := binary.LittleEndian.Uint32(data[0:4])
	if raw&(canRtrFlag|canErrFlag) != 0 {
		return ErrUnsupportedFrame
	}
	dlc := int(data[4])
	if dlc > MaxDataLen {
		return ErrDataLength
	}
	var id ID
	if raw&canEffFlag != 0 {
		id = ExtendedID(raw &^ canEffFlag)
	} else if raw > 0xFFFF {
		return ErrIDLength
	} else {
		id = ShortID(uint16(raw))
	}
	decoded, err := New(id, data[8:8+dlc])
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}
