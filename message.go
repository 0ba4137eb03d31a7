package canmsg

// MaxDataLen is the payload capacity of a classical CAN message.
const MaxDataLen = 8

// Message is a classical CAN data message: one identifier and up to 8
// payload bytes held in an inline buffer.
//
// Bytes past Len are always zero, except that shrinking with SetLen leaves
// the trimmed bytes in place until a later growth zeroes them again. They
// are never visible through Data or DataMut.
//
// The zero Message has ShortID(0) and an empty payload.
type Message struct {
	id     ID
	length uint8
	data   [MaxDataLen]byte
}

// New builds a message from id and data. The payload is copied.
//
// It returns ErrDataLength if data is longer than 8 bytes, otherwise
// ErrIDLength if id does not fit its width.
func New(id ID, data []byte) (Message, error) {
	if len(data) > MaxDataLen {
		return Message{}, ErrDataLength
	}
	if !id.IsValid() {
		return Message{}, ErrIDLength
	}
	m := Message{id: id, length: uint8(len(data))}
	copy(m.data[:], data)
	return m, nil
}

// WithShortID is New(ShortID(id), data).
func WithShortID(id uint16, data []byte) (Message, error) {
	return New(ShortID(id), data)
}

// WithExtendedID is New(ExtendedID(id), data).
func WithExtendedID(id uint32, data []byte) (Message, error) {
	return New(ExtendedID(id), data)
}

// MustNew is like New but panics on error. Convenience for tests and
// examples.
func MustNew(id ID, data []byte) Message {
	m, err := New(id, data)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the message identifier.
func (m Message) ID() ID {
	return m.id
}

// Len returns the number of payload bytes.
func (m Message) Len() uint8 {
	return m.length
}

// SetLen resizes the payload window. Bytes newly exposed by growing are
// zeroed; shrinking clears nothing. It returns ErrDataLength and leaves the
// message unchanged if n is greater than 8.
func (m *Message) SetLen(n uint8) error {
	if n > MaxDataLen {
		return ErrDataLength
	}
	for i := m.length; i < n; i++ {
		m.data[i] = 0
	}
	m.length = n
	return nil
}

// Data returns a copy of the payload.
func (m Message) Data() []byte {
	out := make([]byte, m.length)
	copy(out, m.data[:m.length])
	return out
}

// DataMut returns the payload window of m's own buffer. Its capacity is
// capped at Len, so appending to it reallocates instead of writing past
// the window.
func (m *Message) DataMut() []byte {
	return m.data[:m.length:m.length]
}

// Equal reports whether both messages have equal identifiers, the same
// length and the same backing buffer. Bytes hidden by a shrinking SetLen
// take part in the comparison.
func (m Message) Equal(other Message) bool {
	return m.id.Equal(other.id) &&
		m.length == other.length &&
		m.data == other.data
}
