package jt808

import "fmt"

// EncodeFunc produces the body bytes (header excluded) for pp.Send given
// the caller has already set pp.Send.Header.MsgID to the target message.
type EncodeFunc func(pp *ProtocolParameter) ([]byte, error)

// DecodeFunc parses body into pp.Parse. header is the already-decoded
// message header (pp.Parse.Header is set by the Parser before this
// runs), provided again here so handlers that need segmentation/flow
// context don't have to reach back through pp.
type DecodeFunc func(header MessageHeader, body []byte, pp *ProtocolParameter) error

// Packager maps message IDs to body encoders. Instances are caller-owned
// values: build one with NewPackager, optionally Append/Override entries,
// then treat it as read-only. The codec performs no internal locking.
type Packager struct {
	handlers map[uint16]EncodeFunc
}

// NewPackager returns a Packager pre-populated with the built-in encoders
// for the standard JT/T 808 message catalog.
func NewPackager() *Packager {
	p := &Packager{handlers: make(map[uint16]EncodeFunc)}
	registerBuiltinEncoders(p)
	return p
}

// Append registers fn for msgID. It fails if msgID is already registered.
func (p *Packager) Append(msgID uint16, fn EncodeFunc) error {
	if _, exists := p.handlers[msgID]; exists {
		return fmt.Errorf("jt808: encoder for msg_id 0x%04X already registered", msgID)
	}
	p.handlers[msgID] = fn
	return nil
}

// Override registers fn for msgID, replacing any existing entry.
func (p *Packager) Override(msgID uint16, fn EncodeFunc) {
	p.handlers[msgID] = fn
}

// Encode looks up the encoder for pp.Send.Header.MsgID, invokes it, then
// assembles the full on-wire frame: header, body, checksum, escape,
// flags. The header it writes is a copy of pp.Send.Header whose body_len
// bits hold the actual encoded body length and whose reserved bits are
// zero; pp.Send.Header itself is not modified.
func (p *Packager) Encode(pp *ProtocolParameter) ([]byte, error) {
	if pp == nil {
		return nil, ErrParametersNull
	}
	msgID := pp.Send.Header.MsgID
	fn, ok := p.handlers[msgID]
	if !ok {
		return nil, newMsgErr(KindUnregisteredMessageParser, msgID, fmt.Errorf("no encoder registered"))
	}

	body, err := fn(pp)
	if err != nil {
		return nil, newMsgErr(KindBodyEncodeFailure, msgID, err)
	}
	if len(body) > bodyLenMask {
		return nil, newMsgErr(KindBodyEncodeFailure, msgID, fmt.Errorf("body length %d exceeds %d-byte ceiling; segment it", len(body), bodyLenMask))
	}

	header := pp.Send.Header
	header.BodyAttr = header.BodyAttr.withBodyLen(len(body)) &^ (0x3 << reservedShift)
	headerBytes, err := header.encode()
	if err != nil {
		return nil, err
	}
	return wrapFrame(headerBytes, body), nil
}

// Parser maps message IDs to body decoders, symmetric to Packager.
type Parser struct {
	handlers map[uint16]DecodeFunc
}

// NewParser returns a Parser pre-populated with the built-in decoders
// for the standard JT/T 808 message catalog.
func NewParser() *Parser {
	p := &Parser{handlers: make(map[uint16]DecodeFunc)}
	registerBuiltinDecoders(p)
	return p
}

// Append registers fn for msgID. It fails if msgID is already registered.
func (p *Parser) Append(msgID uint16, fn DecodeFunc) error {
	if _, exists := p.handlers[msgID]; exists {
		return fmt.Errorf("jt808: decoder for msg_id 0x%04X already registered", msgID)
	}
	p.handlers[msgID] = fn
	return nil
}

// Override registers fn for msgID, replacing any existing entry.
func (p *Parser) Override(msgID uint16, fn DecodeFunc) {
	p.handlers[msgID] = fn
}

// Decode unescapes and checksum-validates frame, decodes its header into
// pp.Parse.Header, then dispatches the body to the registered decoder
// for the parsed message ID. Failures short of dispatch (bad flags,
// checksum, header) leave pp untouched; a decoder failure still leaves
// pp.Parse.Header populated for diagnostics.
func (p *Parser) Decode(frame []byte, pp *ProtocolParameter) error {
	if pp == nil {
		return ErrParametersNull
	}
	body, err := unwrapFrame(frame)
	if err != nil {
		return err
	}
	header, bodyStart, err := decodeHeader(body)
	if err != nil {
		return err
	}
	pp.Parse.Header = header

	fn, ok := p.handlers[header.MsgID]
	if !ok {
		return newMsgErr(KindUnregisteredMessageParser, header.MsgID, nil)
	}
	if err := fn(header, body[bodyStart:], pp); err != nil {
		return newMsgErr(KindBodyDecodeFailure, header.MsgID, err)
	}
	return nil
}
