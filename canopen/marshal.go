package canopen

import "github.com/notnil/canmsg"

// MessageMarshaler encodes a typed CANopen entity into a CAN message.
type MessageMarshaler interface {
	MarshalCANMessage() (canmsg.Message, error)
}

// MessageUnmarshaler decodes a typed CANopen entity from a CAN message.
type MessageUnmarshaler interface {
	UnmarshalCANMessage(canmsg.Message) error
}
