// Package canmsg provides the data model for classical CAN (2.0A/2.0B)
// messages: short and extended identifiers, fixed-capacity 0-8 byte
// payloads, and the range checks that keep both inside CAN 2.0.
//
// It includes:
//   - ID, a short (11-bit) or extended (29-bit) arbitration identifier
//     compared by its widened 32-bit value
//   - Message, an identifier plus an inline 8-byte payload buffer
//   - The Bus Send/Receive contract that transports implement
//   - SocketCAN binary layout and CBOR encodings of a Message
//   - An in-memory loopback bus, a filtered fan-out Mux and a logging
//     decorator for tests and simulations
package canmsg
