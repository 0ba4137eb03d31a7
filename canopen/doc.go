// Package canopen builds and parses CANopen messages on top of the canmsg
// data model.
//
// It covers the parts of CANopen that are pure message encoding:
//   - COB-ID helpers and function code mapping
//   - NMT commands and node state encoding/decoding
//   - Heartbeat (NMT error control) producer/consumer byte
//   - Emergency (EMCY) message encode/decode
//   - Filters for the common service ranges
//
// Every CANopen COB-ID here is a short (11-bit) identifier.
package canopen
