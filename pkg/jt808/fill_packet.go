package jt808

import (
	"encoding/binary"
	"fmt"
)

// MsgIDFillPacketRequest is the platform's request to retransmit specific
// sub-packets of a segmented message (0x8003).
const MsgIDFillPacketRequest uint16 = 0x8003

// FillPacketRequest names the missing sub-packets of a segmented message
// the platform wants retransmitted, by their 1-based packet sequence
// number within the segmented set identified by FirstPacketFlowNum.
type FillPacketRequest struct {
	FirstPacketFlowNum uint16
	PacketIDs          []uint16
}

func encodeFillPacket(pp *ProtocolParameter) ([]byte, error) {
	req := pp.Send.FillPacket
	if len(req.PacketIDs) > 0xFF {
		return nil, fmt.Errorf("too many fill-packet ids: %d", len(req.PacketIDs))
	}
	out := make([]byte, 0, 3+2*len(req.PacketIDs))
	out = putUint16(out, req.FirstPacketFlowNum)
	out = append(out, byte(len(req.PacketIDs)))
	for _, id := range req.PacketIDs {
		out = putUint16(out, id)
	}
	return out, nil
}

// decodeFillPacket reads each packet id as its own big-endian uint16.
// The reference parser instead assembled each id with
// in[pos+i*2] + in[pos+1+i*2] — an addition of the two bytes rather than
// a big-endian combine; that bug is not reproduced here.
func decodeFillPacket(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 3 {
		return fmt.Errorf("fill packet request needs at least 3 bytes, got %d", len(body))
	}
	req := FillPacketRequest{
		FirstPacketFlowNum: binary.BigEndian.Uint16(body[0:2]),
	}
	count := int(body[2])
	pos := 3
	if pos+2*count > len(body) {
		return fmt.Errorf("fill packet request needs %d id bytes, got %d", 2*count, len(body)-pos)
	}
	req.PacketIDs = make([]uint16, count)
	for i := 0; i < count; i++ {
		req.PacketIDs[i] = binary.BigEndian.Uint16(body[pos : pos+2])
		pos += 2
	}
	pp.Parse.FillPacket = req
	return nil
}

func registerFillPacketEncoders(p *Packager) {
	p.handlers[MsgIDFillPacketRequest] = encodeFillPacket
}

func registerFillPacketDecoders(p *Parser) {
	p.handlers[MsgIDFillPacketRequest] = decodeFillPacket
}
