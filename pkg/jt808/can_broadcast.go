package jt808

import (
	"encoding/binary"
	"fmt"
)

const (
	// MsgIDBatchLocationReport carries several buffered location fixes
	// in one frame (0x0704). Not part of the core JT/T 808 catalog.
	MsgIDBatchLocationReport uint16 = 0x0704
	// MsgIDCANBroadcastData carries a single CAN bus frame captured by
	// the terminal (0x0705). Not part of the core JT/T 808 catalog.
	MsgIDCANBroadcastData uint16 = 0x0705
)

// Batch location report kind: whether the items are newly captured or
// are a resend of previously buffered fixes.
const (
	BatchLocationNormal    uint8 = 0
	BatchLocationRetransmit uint8 = 1
)

// BatchLocationItem is one fix within a BatchLocationReport.
type BatchLocationItem struct {
	OffsetMS   uint16 // milliseconds since the report's reference time
	Location   LocationBasic
	Extensions map[uint8][]byte
}

// BatchLocationReport is the 0x0704 body: a run of buffered location
// fixes sent together, each carrying the same shape as a single
// location report.
type BatchLocationReport struct {
	Kind  uint8
	Items []BatchLocationItem
}

// CANInfo is a single CAN bus frame: its 29/11-bit identifier and up to
// 8 bytes of data.
type CANInfo struct {
	ID   uint32
	Data []byte
}

// CANBroadcastData is the 0x0705 body: one CAN frame plus the terminal
// clock reading at capture time.
type CANBroadcastData struct {
	NumEntries uint16
	RecvTime   string // "hhmmssSSS" as 5-byte BCD; decodes to 10 digits with a leading 0
	Frame      CANInfo
}

func encodeBatchLocationReport(pp *ProtocolParameter) ([]byte, error) {
	r := pp.Send.BatchLocation
	if len(r.Items) > 0xFFFF {
		return nil, fmt.Errorf("batch location report has too many items: %d", len(r.Items))
	}
	out := make([]byte, 0, 3)
	out = putUint16(out, uint16(len(r.Items)))
	out = append(out, r.Kind)
	for _, item := range r.Items {
		basic, err := item.Location.encode()
		if err != nil {
			return nil, err
		}
		ext, err := encodeExtensions(item.Extensions)
		if err != nil {
			return nil, err
		}
		itemBody := append(basic, ext...)
		if len(itemBody) > 0xFFFF-2 {
			return nil, fmt.Errorf("batch location item too large: %d bytes", len(itemBody))
		}
		out = putUint16(out, uint16(len(itemBody)+2))
		out = putUint16(out, item.OffsetMS)
		out = append(out, itemBody...)
	}
	return out, nil
}

func decodeBatchLocationReport(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 3 {
		return fmt.Errorf("batch location report needs at least 3 bytes, got %d", len(body))
	}
	count := int(binary.BigEndian.Uint16(body[0:2]))
	kind := body[2]
	pos := 3
	items := make([]BatchLocationItem, 0, count)
	for i := 0; i < count; i++ {
		if pos+2 > len(body) {
			return fmt.Errorf("batch location item %d length truncated", i)
		}
		itemLen := int(binary.BigEndian.Uint16(body[pos : pos+2]))
		pos += 2
		if pos+itemLen > len(body) {
			return fmt.Errorf("batch location item %d truncated", i)
		}
		if itemLen < 2 {
			return fmt.Errorf("batch location item %d shorter than its offset field", i)
		}
		offsetMS := binary.BigEndian.Uint16(body[pos : pos+2])
		locBody := body[pos+2 : pos+itemLen]
		pos += itemLen

		basic, err := decodeLocationBasic(locBody)
		if err != nil {
			return fmt.Errorf("batch location item %d: %w", i, err)
		}
		ext, err := decodeExtensions(locBody[locationBasicLen:])
		if err != nil {
			return fmt.Errorf("batch location item %d: %w", i, err)
		}
		items = append(items, BatchLocationItem{OffsetMS: offsetMS, Location: basic, Extensions: ext})
	}
	pp.Parse.BatchLocation = BatchLocationReport{Kind: kind, Items: items}
	return nil
}

func encodeCANBroadcastData(pp *ProtocolParameter) ([]byte, error) {
	c := pp.Send.CANBroadcast
	recvTime, err := EncodeBCD(c.RecvTime, 5)
	if err != nil {
		return nil, fmt.Errorf("encode can broadcast recv time: %w", err)
	}
	if len(c.Frame.Data) > 8 {
		return nil, fmt.Errorf("can frame data exceeds 8 bytes: %d", len(c.Frame.Data))
	}
	out := make([]byte, 0, 2+5+4+len(c.Frame.Data))
	out = putUint16(out, c.NumEntries)
	out = append(out, recvTime...)
	out = putUint32(out, c.Frame.ID)
	out = append(out, c.Frame.Data...)
	return out, nil
}

func decodeCANBroadcastData(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	const fixedLen = 2 + 5 + 4
	if len(body) < fixedLen {
		return fmt.Errorf("can broadcast data needs at least %d bytes, got %d", fixedLen, len(body))
	}
	recvTime, err := DecodeBCD(body[2:7])
	if err != nil {
		return fmt.Errorf("decode can broadcast recv time: %w", err)
	}
	pp.Parse.CANBroadcast = CANBroadcastData{
		NumEntries: binary.BigEndian.Uint16(body[0:2]),
		RecvTime:   recvTime,
		Frame: CANInfo{
			ID:   binary.BigEndian.Uint32(body[7:11]),
			Data: append([]byte(nil), body[fixedLen:]...),
		},
	}
	return nil
}

func registerCANBroadcastEncoders(p *Packager) {
	p.handlers[MsgIDBatchLocationReport] = encodeBatchLocationReport
	p.handlers[MsgIDCANBroadcastData] = encodeCANBroadcastData
}

func registerCANBroadcastDecoders(p *Parser) {
	p.handlers[MsgIDBatchLocationReport] = decodeBatchLocationReport
	p.handlers[MsgIDCANBroadcastData] = decodeCANBroadcastData
}
