package jt808

import (
	"encoding/binary"
	"fmt"
	"sort"
)

const (
	// MsgIDSetTerminalParameters sets terminal parameters (0x8103).
	MsgIDSetTerminalParameters uint16 = 0x8103
	// MsgIDQueryTerminalParameters asks the terminal to report all
	// parameters (0x8104), empty body.
	MsgIDQueryTerminalParameters uint16 = 0x8104
	// MsgIDQueryTerminalParametersResponse is the terminal's reply to
	// either a query-all or query-specific request (0x0104).
	MsgIDQueryTerminalParametersResponse uint16 = 0x0104
	// MsgIDQuerySpecificTerminalParameters asks for a subset of
	// parameter IDs (0x8106).
	MsgIDQuerySpecificTerminalParameters uint16 = 0x8106
)

func encodeSetTerminalParameters(pp *ProtocolParameter) ([]byte, error) {
	params := pp.Send.TerminalParameters
	if len(params) > 0xFF {
		return nil, fmt.Errorf("too many terminal parameters: %d", len(params))
	}
	ids := make([]uint32, 0, len(params))
	for id := range params {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]byte, 0, 1+5*len(ids))
	out = append(out, byte(len(ids)))
	for _, id := range ids {
		value := params[id]
		if len(value) > 0xFF {
			return nil, fmt.Errorf("terminal parameter 0x%08X value too long: %d bytes", id, len(value))
		}
		out = putUint32(out, id)
		out = append(out, byte(len(value)))
		out = append(out, value...)
	}
	return out, nil
}

func decodeSetTerminalParameters(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	params, _, err := decodeParameterList(body, 0)
	if err != nil {
		return err
	}
	pp.Parse.TerminalParameters = params
	return nil
}

// decodeParameterList decodes a count-prefixed list of (id, len, value)
// parameter entries starting at body[offset], returning the map and the
// offset just past the list.
func decodeParameterList(body []byte, offset int) (map[uint32][]byte, int, error) {
	if offset >= len(body) {
		return nil, offset, fmt.Errorf("parameter list truncated: missing count byte")
	}
	count := int(body[offset])
	pos := offset + 1
	params := make(map[uint32][]byte, count)
	for i := 0; i < count; i++ {
		if pos+5 > len(body) {
			return nil, pos, fmt.Errorf("parameter entry %d truncated", i)
		}
		id := binary.BigEndian.Uint32(body[pos : pos+4])
		length := int(body[pos+4])
		pos += 5
		if pos+length > len(body) {
			return nil, pos, fmt.Errorf("parameter 0x%08X value truncated", id)
		}
		params[id] = append([]byte(nil), body[pos:pos+length]...)
		pos += length
	}
	return params, pos, nil
}

func encodeQueryTerminalParametersResponse(pp *ProtocolParameter) ([]byte, error) {
	body, err := encodeSetTerminalParameters(pp)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2+len(body))
	out = putUint16(out, pp.Send.ResponseFlowNum)
	out = append(out, body...)
	return out, nil
}

func decodeQueryTerminalParametersResponse(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 2 {
		return fmt.Errorf("query terminal parameters response needs at least 2 bytes, got %d", len(body))
	}
	pp.Parse.ResponseFlowNum = binary.BigEndian.Uint16(body[0:2])
	params, _, err := decodeParameterList(body, 2)
	if err != nil {
		return err
	}
	pp.Parse.TerminalParameters = params
	return nil
}

func encodeQuerySpecificTerminalParameters(pp *ProtocolParameter) ([]byte, error) {
	ids := pp.Send.TerminalParameterIDs
	if len(ids) > 0xFF {
		return nil, fmt.Errorf("too many terminal parameter ids: %d", len(ids))
	}
	out := make([]byte, 0, 1+4*len(ids))
	out = append(out, byte(len(ids)))
	for _, id := range ids {
		out = putUint32(out, id)
	}
	return out, nil
}

func decodeQuerySpecificTerminalParameters(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 1 {
		return fmt.Errorf("query specific terminal parameters needs at least 1 byte")
	}
	count := int(body[0])
	pos := 1
	ids := make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		if pos+4 > len(body) {
			return fmt.Errorf("parameter id %d truncated", i)
		}
		ids = append(ids, binary.BigEndian.Uint32(body[pos:pos+4]))
		pos += 4
	}
	pp.Parse.TerminalParameterIDs = ids
	return nil
}

func registerTerminalParameterEncoders(p *Packager) {
	p.handlers[MsgIDSetTerminalParameters] = encodeSetTerminalParameters
	p.handlers[MsgIDQueryTerminalParameters] = encodeEmptyBody
	p.handlers[MsgIDQueryTerminalParametersResponse] = encodeQueryTerminalParametersResponse
	p.handlers[MsgIDQuerySpecificTerminalParameters] = encodeQuerySpecificTerminalParameters
}

func registerTerminalParameterDecoders(p *Parser) {
	p.handlers[MsgIDSetTerminalParameters] = decodeSetTerminalParameters
	p.handlers[MsgIDQueryTerminalParameters] = decodeEmptyBody
	p.handlers[MsgIDQueryTerminalParametersResponse] = decodeQueryTerminalParametersResponse
	p.handlers[MsgIDQuerySpecificTerminalParameters] = decodeQuerySpecificTerminalParameters
}
