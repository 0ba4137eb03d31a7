package canopen

import (
	"fmt"

	"github.com/notnil/canmsg"
)

// NMTCommand is the command specifier for the NMT service.
type NMTCommand uint8

const (
	NMTStart               NMTCommand = 0x01
	NMTStop                NMTCommand = 0x02
	NMTEnterPreOperational NMTCommand = 0x80
	NMTResetNode           NMTCommand = 0x81
	NMTResetCommunication  NMTCommand = 0x82
)

// NMTState encodes the node state as used in heartbeat.
type NMTState uint8

const (
	StateBootup         NMTState = 0x00
	StateStopped        NMTState = 0x04
	StateOperational    NMTState = 0x05
	StatePreOperational NMTState = 0x7F
)

// BuildNMT builds an NMT command message. node 0 means broadcast.
func BuildNMT(cmd NMTCommand, node uint8) canmsg.Message {
	return canmsg.MustNew(COBID(FC_NMT, 0), []byte{byte(cmd), node})
}

// ParseNMT decodes an NMT message returning command and target node.
func ParseNMT(m canmsg.Message) (NMTCommand, uint8, error) {
	if m.ID().IsExtended() || !m.ID().Equal(COBID(FC_NMT, 0)) {
		return 0, 0, fmt.Errorf("canopen: not an NMT message (id=%v)", m.ID())
	}
	if m.Len() < 2 {
		return 0, 0, fmt.Errorf("canopen: NMT message too short: %d", m.Len())
	}
	d := m.Data()
	return NMTCommand(d[0]), d[1], nil
}
