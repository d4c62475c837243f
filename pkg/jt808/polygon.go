package jt808

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// MsgIDSetPolygonArea defines or updates a polygon geofence (0x8604).
	MsgIDSetPolygonArea uint16 = 0x8604
	// MsgIDDeletePolygonArea removes one or more polygon geofences (0x8605).
	MsgIDDeletePolygonArea uint16 = 0x8605
)

// Polygon area attribute bits (u16), mirroring the time/speed-limit
// conditional-field layout §3 documents.
const (
	PolygonAttrByTime     = 1 << 0
	PolygonAttrSpeedLimit = 1 << 1
)

// Vertex is a single polygon boundary point in decimal degrees.
type Vertex struct {
	LatitudeDeg  float64
	LongitudeDeg float64
}

// PolygonArea is the set-polygon-area body (0x8604). StartTimeBCD and
// StopTimeBCD are populated only when Attribute has PolygonAttrByTime
// set; MaxSpeedKPH and OverspeedSeconds only when PolygonAttrSpeedLimit
// is set.
type PolygonArea struct {
	AreaID           uint32
	Attribute        uint16
	StartTimeBCD     string // "YYMMDDhhmmss", valid iff Attribute&PolygonAttrByTime
	StopTimeBCD      string
	MaxSpeedKPH      uint16 // valid iff Attribute&PolygonAttrSpeedLimit
	OverspeedSeconds uint8
	Vertices         []Vertex
}

// polygonCoordScale converts decimal degrees to the wire's 1/1,000,000
// degree fixed-point integer representation, matching LocationBasic's
// LatitudeMicro/LongitudeMicro convention.
const polygonCoordScale = 1_000_000

func encodeSetPolygonArea(pp *ProtocolParameter) ([]byte, error) {
	a := pp.Send.PolygonArea
	if len(a.Vertices) > 0xFFFF {
		return nil, fmt.Errorf("polygon area has too many vertices: %d", len(a.Vertices))
	}
	out := make([]byte, 0, 4+2+12+3+2+8*len(a.Vertices))
	out = putUint32(out, a.AreaID)
	out = putUint16(out, a.Attribute)
	if a.Attribute&PolygonAttrByTime != 0 {
		startBCD, err := EncodeBCD(a.StartTimeBCD, 6)
		if err != nil {
			return nil, fmt.Errorf("encode polygon start time: %w", err)
		}
		stopBCD, err := EncodeBCD(a.StopTimeBCD, 6)
		if err != nil {
			return nil, fmt.Errorf("encode polygon stop time: %w", err)
		}
		out = append(out, startBCD...)
		out = append(out, stopBCD...)
	}
	if a.Attribute&PolygonAttrSpeedLimit != 0 {
		out = putUint16(out, a.MaxSpeedKPH)
		out = append(out, a.OverspeedSeconds)
	}
	out = putUint16(out, uint16(len(a.Vertices)))
	for _, v := range a.Vertices {
		out = putUint32(out, uint32(math.Round(v.LatitudeDeg*polygonCoordScale)))
		out = putUint32(out, uint32(math.Round(v.LongitudeDeg*polygonCoordScale)))
	}
	return out, nil
}

func decodeSetPolygonArea(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 6 {
		return fmt.Errorf("polygon area body needs at least 6 bytes, got %d", len(body))
	}
	a := PolygonArea{
		AreaID:    binary.BigEndian.Uint32(body[0:4]),
		Attribute: binary.BigEndian.Uint16(body[4:6]),
	}
	pos := 6
	if a.Attribute&PolygonAttrByTime != 0 {
		if pos+12 > len(body) {
			return fmt.Errorf("polygon area time window truncated")
		}
		startBCD, err := DecodeBCD(body[pos : pos+6])
		if err != nil {
			return fmt.Errorf("decode polygon start time: %w", err)
		}
		stopBCD, err := DecodeBCD(body[pos+6 : pos+12])
		if err != nil {
			return fmt.Errorf("decode polygon stop time: %w", err)
		}
		a.StartTimeBCD = startBCD
		a.StopTimeBCD = stopBCD
		pos += 12
	}
	if a.Attribute&PolygonAttrSpeedLimit != 0 {
		if pos+3 > len(body) {
			return fmt.Errorf("polygon area speed limit fields truncated")
		}
		a.MaxSpeedKPH = binary.BigEndian.Uint16(body[pos : pos+2])
		a.OverspeedSeconds = body[pos+2]
		pos += 3
	}
	if pos+2 > len(body) {
		return fmt.Errorf("polygon area vertex count truncated")
	}
	count := int(binary.BigEndian.Uint16(body[pos : pos+2]))
	pos += 2
	a.Vertices = make([]Vertex, count)
	for i := 0; i < count; i++ {
		if pos+8 > len(body) {
			return fmt.Errorf("polygon area vertex %d truncated", i)
		}
		lat := int32(binary.BigEndian.Uint32(body[pos : pos+4]))
		lon := int32(binary.BigEndian.Uint32(body[pos+4 : pos+8]))
		a.Vertices[i] = Vertex{
			LatitudeDeg:  float64(lat) / polygonCoordScale,
			LongitudeDeg: float64(lon) / polygonCoordScale,
		}
		pos += 8
	}
	pp.Parse.PolygonArea = a
	return nil
}

func encodeDeletePolygonArea(pp *ProtocolParameter) ([]byte, error) {
	ids := pp.Send.PolygonAreaID
	if len(ids) > 0xFF {
		return nil, fmt.Errorf("too many polygon area ids: %d", len(ids))
	}
	out := make([]byte, 0, 1+4*len(ids))
	out = append(out, byte(len(ids)))
	for _, id := range ids {
		out = putUint32(out, id)
	}
	return out, nil
}

func decodeDeletePolygonArea(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 1 {
		return fmt.Errorf("delete polygon area body needs at least 1 byte")
	}
	count := int(body[0])
	pos := 1
	ids := make([]uint32, count)
	for i := 0; i < count; i++ {
		if pos+4 > len(body) {
			return fmt.Errorf("polygon area id %d truncated", i)
		}
		ids[i] = binary.BigEndian.Uint32(body[pos : pos+4])
		pos += 4
	}
	pp.Parse.PolygonAreaID = ids
	return nil
}

func registerPolygonEncoders(p *Packager) {
	p.handlers[MsgIDSetPolygonArea] = encodeSetPolygonArea
	p.handlers[MsgIDDeletePolygonArea] = encodeDeletePolygonArea
}

func registerPolygonDecoders(p *Parser) {
	p.handlers[MsgIDSetPolygonArea] = decodeSetPolygonArea
	p.handlers[MsgIDDeletePolygonArea] = decodeDeletePolygonArea
}
