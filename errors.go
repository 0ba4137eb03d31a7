package canmsg

import "errors"

// RangeError reports a value that does not fit a CAN 2.0 message.
type RangeError uint8

const (
	// ErrDataLength means a payload or requested length exceeds 8 bytes.
	ErrDataLength RangeError = iota + 1
	// ErrIDLength means an identifier does not fit its declared bit width.
	ErrIDLength
)

func (e RangeError) Error() string {
	switch e {
	case ErrDataLength:
		return "canmsg: data length exceeds 8 bytes"
	case ErrIDLength:
		return "canmsg: identifier exceeds its bit width"
	default:
		return "canmsg: range error"
	}
}

var (
	// ErrClosed indicates the bus or endpoint has been closed.
	ErrClosed = errors.New("canmsg: closed")
	// ErrUnsupportedFrame is returned when decoding remote or error frames.
	ErrUnsupportedFrame = errors.New("canmsg: unsupported frame type")
)
