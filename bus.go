package canmsg

// Bus is the contract a CAN transport implements to move messages. The
// error values are transport specific. Implementations that hold resources
// also implement io.Closer.
type Bus interface {
	// Send transmits a message. It may block until the message is queued
	// or sent.
	Send(Message) error

	// Receive blocks until the next message is available.
	Receive() (Message, error)
}
