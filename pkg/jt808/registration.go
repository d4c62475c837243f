package jt808

import (
	"encoding/binary"
	"fmt"
)

const (
	// MsgIDTerminalRegister is the terminal registration request (0x0100).
	MsgIDTerminalRegister uint16 = 0x0100
	// MsgIDTerminalRegisterResponse is the terminal registration response (0x8100).
	MsgIDTerminalRegisterResponse uint16 = 0x8100
	// MsgIDTerminalAuthentication is the terminal authentication report (0x0102).
	MsgIDTerminalAuthentication uint16 = 0x0102
)

// PlateColor is the vehicle plate color code carried in RegisterInfo.
type PlateColor uint8

const (
	PlateColorVIN    PlateColor = 0 // vehicle not yet plated; no plate number is sent
	PlateColorBlue   PlateColor = 1
	PlateColorYellow PlateColor = 2
	PlateColorBlack  PlateColor = 3
	PlateColorWhite  PlateColor = 4
	PlateColorOther  PlateColor = 5
)

// RegisterResult is the result code of a terminal registration response.
type RegisterResult uint8

const (
	RegisterSuccess                 RegisterResult = 0
	RegisterVehicleAlreadyRegistered RegisterResult = 1
	RegisterNoSuchVehicle           RegisterResult = 2
	RegisterTerminalAlreadyRegistered RegisterResult = 3
	RegisterNoSuchTerminal          RegisterResult = 4
)

// RegisterInfo is the terminal registration payload (0x0100 request).
type RegisterInfo struct {
	ProvinceID     uint16
	CityID         uint16
	ManufacturerID [5]byte
	TerminalModel  [20]byte // 0x00-padded
	TerminalID     [7]byte  // 0x00-padded
	PlateColor     PlateColor
	// PlateNum is the vehicle plate, GBK-encoded on the wire. It is
	// present on the wire iff PlateColor != PlateColorVIN; otherwise it is
	// not encoded and is left empty on decode.
	PlateNum string
}

func encodeRegister(pp *ProtocolParameter) ([]byte, error) {
	info := pp.Send.RegisterInfo
	out := make([]byte, 0, 37)
	out = putUint16(out, info.ProvinceID)
	out = putUint16(out, info.CityID)
	out = append(out, info.ManufacturerID[:]...)
	out = append(out, info.TerminalModel[:]...)
	out = append(out, info.TerminalID[:]...)
	out = append(out, byte(info.PlateColor))
	if info.PlateColor != PlateColorVIN {
		plate, err := encodeGBK(info.PlateNum)
		if err != nil {
			return nil, fmt.Errorf("encode plate number: %w", err)
		}
		out = append(out, plate...)
	}
	return out, nil
}

func decodeRegister(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	const fixedLen = 2 + 2 + 5 + 20 + 7 + 1
	if len(body) < fixedLen {
		return fmt.Errorf("register body needs at least %d bytes, got %d", fixedLen, len(body))
	}
	var info RegisterInfo
	info.ProvinceID = binary.BigEndian.Uint16(body[0:2])
	info.CityID = binary.BigEndian.Uint16(body[2:4])
	copy(info.ManufacturerID[:], body[4:9])
	copy(info.TerminalModel[:], body[9:29])
	copy(info.TerminalID[:], body[29:36])
	info.PlateColor = PlateColor(body[36])
	if info.PlateColor != PlateColorVIN {
		plate, err := decodeGBK(body[fixedLen:])
		if err != nil {
			return fmt.Errorf("decode plate number: %w", err)
		}
		info.PlateNum = plate
	}
	pp.Parse.RegisterInfo = info
	return nil
}

func encodeRegisterResponse(pp *ProtocolParameter) ([]byte, error) {
	out := make([]byte, 0, 3)
	out = putUint16(out, pp.Send.ResponseFlowNum)
	out = append(out, pp.Send.ResponseResult)
	if pp.Send.ResponseResult == uint8(RegisterSuccess) {
		out = append(out, pp.Send.AuthCode...)
	}
	return out, nil
}

func decodeRegisterResponse(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 3 {
		return fmt.Errorf("register response body needs 3 bytes, got %d", len(body))
	}
	pp.Parse.ResponseFlowNum = binary.BigEndian.Uint16(body[0:2])
	pp.Parse.ResponseResult = body[2]
	if pp.Parse.ResponseResult == uint8(RegisterSuccess) {
		pp.Parse.AuthCode = append([]byte(nil), body[3:]...)
	}
	return nil
}

func encodeAuthentication(pp *ProtocolParameter) ([]byte, error) {
	return append([]byte(nil), pp.Send.AuthCode...), nil
}

func decodeAuthentication(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	pp.Parse.AuthCode = append([]byte(nil), body...)
	return nil
}

func registerRegistrationEncoders(p *Packager) {
	p.handlers[MsgIDTerminalRegister] = encodeRegister
	p.handlers[MsgIDTerminalRegisterResponse] = encodeRegisterResponse
	p.handlers[MsgIDTerminalAuthentication] = encodeAuthentication
}

func registerRegistrationDecoders(p *Parser) {
	p.handlers[MsgIDTerminalRegister] = decodeRegister
	p.handlers[MsgIDTerminalRegisterResponse] = decodeRegisterResponse
	p.handlers[MsgIDTerminalAuthentication] = decodeAuthentication
}
