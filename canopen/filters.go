package canopen

import "github.com/notnil/canmsg"

// serviceMask selects the function code bits of an 11-bit COB-ID.
const serviceMask = 0x780

func exact(fc FunctionCode, node NodeID) canmsg.Filter {
	return canmsg.And(canmsg.ShortOnly(), canmsg.ByID(COBID(fc, node)))
}

func anyNode(fc FunctionCode) canmsg.Filter {
	return canmsg.And(canmsg.ShortOnly(), canmsg.ByMask(uint32(fc), serviceMask))
}

// NMT matches NMT command messages (COB-ID 0x000).
func NMT() canmsg.Filter { return exact(FC_NMT, 0) }

// Heartbeat matches heartbeats from node.
func Heartbeat(node NodeID) canmsg.Filter { return exact(FC_NMT_ERRCTRL, node) }

// HeartbeatAny matches all heartbeats (0x700-0x77F).
func HeartbeatAny() canmsg.Filter { return anyNode(FC_NMT_ERRCTRL) }

// EMCY matches emergency messages from node.
func EMCY(node NodeID) canmsg.Filter { return exact(FC_EMCY, node) }

// EMCYAny matches all emergency messages (0x080-0x0FF), including SYNC.
func EMCYAny() canmsg.Filter { return anyNode(FC_EMCY) }

// SDORequest matches client->server SDO messages addressed to node.
func SDORequest(node NodeID) canmsg.Filter { return exact(FC_SDO_RX, node) }

// SDOResponse matches server->client SDO messages from node.
func SDOResponse(node NodeID) canmsg.Filter { return exact(FC_SDO_TX, node) }

// TPDO matches transmit PDO n (1..4) from node.
func TPDO(n int, node NodeID) canmsg.Filter {
	return exact(FC_TPDO1+FunctionCode(n-1)*0x100, node)
}

// RPDO matches receive PDO n (1..4) for node.
func RPDO(n int, node NodeID) canmsg.Filter {
	return exact(FC_RPDO1+FunctionCode(n-1)*0x100, node)
}
