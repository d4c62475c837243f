package jt808

import (
	"encoding/binary"
	"fmt"
)

const (
	// MsgIDTerminalUpgrade pushes firmware to a terminal (0x8108).
	MsgIDTerminalUpgrade uint16 = 0x8108
	// MsgIDTerminalUpgradeResult reports upgrade outcome (0x0108).
	MsgIDTerminalUpgradeResult uint16 = 0x0108
)

// UpgradeType identifies what kind of device is being upgraded.
type UpgradeType uint8

const (
	UpgradeTypeTerminal      UpgradeType = 0
	UpgradeTypeRoadTransport UpgradeType = 12
	UpgradeTypeIC            UpgradeType = 52
)

// UpgradeResult is the terminal's report of how an upgrade went.
type UpgradeResult uint8

const (
	UpgradeResultSuccess    UpgradeResult = 0
	UpgradeResultFailure    UpgradeResult = 1
	UpgradeResultNotSupport UpgradeResult = 2
)

// UpgradeInfo is the firmware upgrade push payload (0x8108 request). The
// 0x0108 result report uses only its Type and Result fields.
type UpgradeInfo struct {
	Type           UpgradeType
	ManufacturerID [5]byte
	Version        string // variable length, length-prefixed on the wire
	// TotalLen is the size of the entire upgrade package, constant across
	// every segment of a multi-frame upgrade. Set it once to the full
	// image size; it is independent of len(Data), which is only this
	// frame's chunk.
	TotalLen uint32
	Data     []byte // firmware payload, split across segments by SplitForSegmentation
	Result   UpgradeResult
}

func encodeUpgrade(pp *ProtocolParameter) ([]byte, error) {
	info := pp.Send.Upgrade
	if len(info.Version) > 0xFF {
		return nil, fmt.Errorf("upgrade version string too long: %d bytes", len(info.Version))
	}
	out := make([]byte, 0, 1+5+1+len(info.Version)+4+len(info.Data))
	out = append(out, byte(info.Type))
	out = append(out, info.ManufacturerID[:]...)
	out = append(out, byte(len(info.Version)))
	out = append(out, []byte(info.Version)...)
	out = putUint32(out, info.TotalLen)
	out = append(out, info.Data...)
	return out, nil
}

func decodeUpgrade(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	const fixedLen = 1 + 5 + 1
	if len(body) < fixedLen {
		return fmt.Errorf("upgrade body needs at least %d bytes, got %d", fixedLen, len(body))
	}
	info := UpgradeInfo{
		Type: UpgradeType(body[0]),
	}
	copy(info.ManufacturerID[:], body[1:6])
	versionLen := int(body[6])
	pos := fixedLen
	if pos+versionLen > len(body) {
		return fmt.Errorf("upgrade version string truncated")
	}
	info.Version = string(body[pos : pos+versionLen])
	pos += versionLen
	if pos+4 > len(body) {
		return fmt.Errorf("upgrade data length truncated")
	}
	info.TotalLen = binary.BigEndian.Uint32(body[pos : pos+4])
	pos += 4
	info.Data = append([]byte(nil), body[pos:]...)
	pp.Parse.Upgrade = info
	return nil
}

func encodeUpgradeResult(pp *ProtocolParameter) ([]byte, error) {
	return []byte{byte(pp.Send.Upgrade.Type), byte(pp.Send.Upgrade.Result)}, nil
}

func decodeUpgradeResult(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 2 {
		return fmt.Errorf("upgrade result body needs 2 bytes, got %d", len(body))
	}
	pp.Parse.Upgrade.Type = UpgradeType(body[0])
	pp.Parse.Upgrade.Result = UpgradeResult(body[1])
	return nil
}

func registerUpgradeEncoders(p *Packager) {
	p.handlers[MsgIDTerminalUpgrade] = encodeUpgrade
	p.handlers[MsgIDTerminalUpgradeResult] = encodeUpgradeResult
}

func registerUpgradeDecoders(p *Parser) {
	p.handlers[MsgIDTerminalUpgrade] = decodeUpgrade
	p.handlers[MsgIDTerminalUpgradeResult] = decodeUpgradeResult
}
