package jt808

import (
	"encoding/binary"
	"fmt"
)

// Response result codes shared by both general-response messages.
const (
	ResultSuccess                   uint8 = 0
	ResultFailure                   uint8 = 1
	ResultMessageHasWrong           uint8 = 2
	ResultNotSupport                uint8 = 3
	ResultAlarmHandlingConfirmation uint8 = 4 // platform response only
)

const (
	// MsgIDTerminalGeneralResponse is the terminal-to-platform general response (0x0001).
	MsgIDTerminalGeneralResponse uint16 = 0x0001
	// MsgIDPlatformGeneralResponse is the platform-to-terminal general response (0x8001).
	MsgIDPlatformGeneralResponse uint16 = 0x8001
)

func encodeGeneralResponse(pp *ProtocolParameter) ([]byte, error) {
	out := make([]byte, 0, 5)
	out = putUint16(out, pp.Send.ResponseFlowNum)
	out = putUint16(out, pp.Send.ResponseMsgID)
	out = append(out, pp.Send.ResponseResult)
	return out, nil
}

func decodeGeneralResponse(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 5 {
		return fmt.Errorf("general response body needs 5 bytes, got %d", len(body))
	}
	pp.Parse.ResponseFlowNum = binary.BigEndian.Uint16(body[0:2])
	pp.Parse.ResponseMsgID = binary.BigEndian.Uint16(body[2:4])
	pp.Parse.ResponseResult = body[4]
	return nil
}

func registerGeneralResponseEncoders(p *Packager) {
	p.handlers[MsgIDTerminalGeneralResponse] = encodeGeneralResponse
	p.handlers[MsgIDPlatformGeneralResponse] = encodeGeneralResponse
}

func registerGeneralResponseDecoders(p *Parser) {
	p.handlers[MsgIDTerminalGeneralResponse] = decodeGeneralResponse
	p.handlers[MsgIDPlatformGeneralResponse] = decodeGeneralResponse
}
