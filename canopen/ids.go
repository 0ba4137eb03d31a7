package canopen

import (
	"fmt"

	"github.com/notnil/canmsg"
)

// NodeID represents a CANopen node identifier (1..127).
// Value 0 is used for broadcast in NMT.
type NodeID uint8

// Validate checks that the node identifier is in the range 1..127.
func (n NodeID) Validate() error {
	if n < 1 || n > 127 {
		return fmt.Errorf("canopen: invalid node id %d (valid 1..127)", n)
	}
	return nil
}

// FunctionCode enumerates CANopen function code bases (CiA 301).
type FunctionCode uint16

const (
	FC_NMT  FunctionCode = 0x000
	FC_SYNC FunctionCode = 0x080
	FC_EMCY FunctionCode = 0x080 // + node id
	FC_TIME FunctionCode = 0x100

	FC_TPDO1 FunctionCode = 0x180
	FC_RPDO1 FunctionCode = 0x200
	FC_TPDO2 FunctionCode = 0x280
	FC_RPDO2 FunctionCode = 0x300
	FC_TPDO3 FunctionCode = 0x380
	FC_RPDO3 FunctionCode = 0x400
	FC_TPDO4 FunctionCode = 0x480
	FC_RPDO4 FunctionCode = 0x500

	FC_SDO_TX FunctionCode = 0x580 // server->client
	FC_SDO_RX FunctionCode = 0x600 // client->server

	FC_NMT_ERRCTRL FunctionCode = 0x700 // heartbeat / node guarding
)

// COBID composes the short CAN identifier for a function code and node id.
// NMT and TIME are fixed and ignore node. SYNC shares its base with EMCY,
// so it is composed like EMCY; pass node 0 for SYNC.
func COBID(fc FunctionCode, node NodeID) canmsg.ID {
	if fc == FC_NMT || fc == FC_TIME {
		return canmsg.ShortID(uint16(fc))
	}
	return canmsg.ShortID(uint16(fc) + uint16(node))
}

var bases = []FunctionCode{
	FC_EMCY, FC_TPDO1, FC_RPDO1, FC_TPDO2, FC_RPDO2, FC_TPDO3, FC_RPDO3,
	FC_TPDO4, FC_RPDO4, FC_SDO_TX, FC_SDO_RX, FC_NMT_ERRCTRL,
}

// ParseCOBID infers the function code and node id from an identifier.
// Extended identifiers and values outside 11 bits are rejected. Where
// function codes overlap (SYNC vs EMCY for node 0) the fixed service wins.
func ParseCOBID(id canmsg.ID) (FunctionCode, NodeID, error) {
	if id.IsExtended() || !id.IsValid() {
		return 0, 0, fmt.Errorf("canopen: not an 11-bit COB-ID: %v", id)
	}
	u := uint16(id.Widen())
	switch u {
	case uint16(FC_NMT):
		return FC_NMT, 0, nil
	case uint16(FC_SYNC):
		return FC_SYNC, 0, nil
	case uint16(FC_TIME):
		return FC_TIME, 0, nil
	}
	for _, fc := range bases {
		base := uint16(fc)
		if u > base && u <= base+0x7F {
			return fc, NodeID(u - base), nil
		}
	}
	return 0, 0, fmt.Errorf("canopen: id 0x%X not in CANopen base ranges", u)
}
