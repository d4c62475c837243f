package jt808

import (
	"encoding/binary"
	"fmt"
)

// BodyAttr is the 16-bit message body attribute word: reserved(2) |
// packet(1) | encrypt(3) | body_len(10), MSB to LSB. It is kept as a
// plain uint16 with explicit masking getters/setters rather than a
// compiler bitfield, since bitfield layout is implementation-defined.
type BodyAttr uint16

const (
	bodyLenMask   = 0x03FF
	encryptShift  = 10
	encryptMask   = 0x7 << encryptShift
	packetShift   = 13
	packetMask    = 0x1 << packetShift
	reservedShift = 14
)

// EncryptNone is the plaintext encrypt value (0b000).
const EncryptNone = 0
// EncryptRSA is the RSA-encrypted body encrypt value (0b001).
const EncryptRSA = 1

// NewBodyAttr builds a BodyAttr from its three named fields. Only the low
// 10 bits of bodyLen are kept. Packager.Encode replaces body_len with the
// actual body length and rejects bodies over 1023 bytes with a
// BodyEncodeFailure.
func NewBodyAttr(bodyLen int, encrypt int, packet bool) BodyAttr {
	var v uint16
	v |= uint16(bodyLen) & bodyLenMask
	v |= (uint16(encrypt) << encryptShift) & encryptMask
	if packet {
		v |= packetMask
	}
	return BodyAttr(v)
}

// BodyLen returns the 10-bit body length field.
func (a BodyAttr) BodyLen() int { return int(uint16(a) & bodyLenMask) }

// Encrypt returns the 3-bit encryption method field.
func (a BodyAttr) Encrypt() int { return int((uint16(a) & encryptMask) >> encryptShift) }

// Packet reports whether the segmentation bit is set.
func (a BodyAttr) Packet() bool { return uint16(a)&packetMask != 0 }

// Reserved returns the 2 high bits, preserved verbatim on decode and
// always zero when this package constructs a BodyAttr for encoding.
func (a BodyAttr) Reserved() int { return int(uint16(a) >> reservedShift) }

// withBodyLen returns a with its body_len bits replaced by n, leaving
// encrypt/packet/reserved untouched. Used by the encoder to patch the
// attribute word after the body has been serialized.
func (a BodyAttr) withBodyLen(n int) BodyAttr {
	return BodyAttr((uint16(a) &^ bodyLenMask) | (uint16(n) & bodyLenMask))
}

// MessageHeader is the JT/T 808 message header: message ID, body
// attribute word, terminal phone number, flow number and (when
// BodyAttr.Packet() is set) the segmentation total/sequence pair.
type MessageHeader struct {
	MsgID        uint16
	BodyAttr     BodyAttr
	Phone        string // up to 12 decimal digits
	FlowNum      uint16
	TotalPackets uint16 // meaningful only when BodyAttr.Packet()
	PacketSeq    uint16 // meaningful only when BodyAttr.Packet()
}

const (
	headerShortLen     = 12
	headerSegmentedLen = 16
	phoneBCDBytes      = 6
)

// encode returns the wire representation of h in a new slice. The caller is responsible for patching the body_len bits
// before calling this (see Packager.Encode).
func (h MessageHeader) encode() ([]byte, error) {
	phoneBCD, err := EncodeBCD(h.Phone, phoneBCDBytes)
	if err != nil {
		return nil, newErr(KindHeaderParseError, fmt.Errorf("encode phone: %w", err))
	}
	out := make([]byte, 0, headerSegmentedLen)
	out = putUint16(out, h.MsgID)
	out = putUint16(out, uint16(h.BodyAttr))
	out = append(out, phoneBCD...)
	out = putUint16(out, h.FlowNum)
	if h.BodyAttr.Packet() {
		out = putUint16(out, h.TotalPackets)
		out = putUint16(out, h.PacketSeq)
	}
	return out, nil
}

// decodeHeader parses a MessageHeader from the front of data (the
// unescaped, checksum-stripped frame interior) and returns the header
// plus the byte offset at which the body begins.
func decodeHeader(data []byte) (MessageHeader, int, error) {
	if len(data) < headerShortLen {
		return MessageHeader{}, 0, newErr(KindTooShort, fmt.Errorf("header needs %d bytes, got %d", headerShortLen, len(data)))
	}
	h := MessageHeader{
		MsgID:    binary.BigEndian.Uint16(data[0:2]),
		BodyAttr: BodyAttr(binary.BigEndian.Uint16(data[2:4])),
	}
	phone, err := DecodeBCD(data[4:10])
	if err != nil {
		return MessageHeader{}, 0, newErr(KindHeaderParseError, fmt.Errorf("decode phone: %w", err))
	}
	h.Phone = phone
	h.FlowNum = binary.BigEndian.Uint16(data[10:12])

	bodyStart := headerShortLen
	if h.BodyAttr.Packet() {
		if len(data) < headerSegmentedLen {
			return MessageHeader{}, 0, newErr(KindTooShort, fmt.Errorf("segmented header needs %d bytes, got %d", headerSegmentedLen, len(data)))
		}
		h.TotalPackets = binary.BigEndian.Uint16(data[12:14])
		h.PacketSeq = binary.BigEndian.Uint16(data[14:16])
		bodyStart = headerSegmentedLen
	}
	return h, bodyStart, nil
}
