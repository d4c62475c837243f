package jt808

import (
	"encoding/binary"
	"fmt"
)

const (
	// MsgIDMultimediaDataUpload uploads a captured photo/video/audio clip (0x0801).
	MsgIDMultimediaDataUpload uint16 = 0x0801
	// MsgIDMultimediaDataUploadResponse acknowledges or requests
	// retransmission of specific packets of an upload (0x8800).
	MsgIDMultimediaDataUploadResponse uint16 = 0x8800
)

// Multimedia media types and formats, as carried by MultimediaUpload.
const (
	MediaTypeImage   uint8 = 0
	MediaTypeAudio   uint8 = 1
	MediaTypeVideo   uint8 = 2
	MediaFormatJPEG  uint8 = 0
	MediaFormatTIFF  uint8 = 1
	MediaFormatMP3   uint8 = 2
	MediaFormatWAV   uint8 = 3
	MediaFormatWMV   uint8 = 4
)

const multimediaLocationBodyLen = 28

// MultimediaUpload is the multimedia data upload body (0x0801).
// LocationBody is the fixed 28-byte location basic block captured at
// the moment of the event, carried opaquely (callers that need its
// fields can decode it with decodeLocationBasic-shaped logic via
// LocationBasic's own encode/decode if exposed, otherwise treat as raw).
type MultimediaUpload struct {
	MediaID      uint32
	MediaType    uint8
	MediaFormat  uint8
	MediaEvent   uint8
	ChannelID    uint8
	LocationBody [multimediaLocationBodyLen]byte
	MediaData    []byte
}

// MultimediaUploadResponse is the platform's reply (0x8800). An empty
// ReloadPacketIDs means the upload was accepted in full.
type MultimediaUploadResponse struct {
	MediaID         uint32
	ReloadPacketIDs []uint16
}

func encodeMultimediaDataUpload(pp *ProtocolParameter) ([]byte, error) {
	m := pp.Send.MultimediaUpload
	out := make([]byte, 0, 4+1+1+1+1+multimediaLocationBodyLen+len(m.MediaData))
	out = putUint32(out, m.MediaID)
	out = append(out, m.MediaType, m.MediaFormat, m.MediaEvent, m.ChannelID)
	out = append(out, m.LocationBody[:]...)
	out = append(out, m.MediaData...)
	return out, nil
}

func decodeMultimediaDataUpload(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	const fixedLen = 4 + 1 + 1 + 1 + 1 + multimediaLocationBodyLen
	if len(body) < fixedLen {
		return fmt.Errorf("multimedia upload body needs at least %d bytes, got %d", fixedLen, len(body))
	}
	m := MultimediaUpload{
		MediaID:     binary.BigEndian.Uint32(body[0:4]),
		MediaType:   body[4],
		MediaFormat: body[5],
		MediaEvent:  body[6],
		ChannelID:   body[7],
	}
	copy(m.LocationBody[:], body[8:fixedLen])
	m.MediaData = append([]byte(nil), body[fixedLen:]...)
	pp.Parse.MultimediaUpload = m
	return nil
}

func encodeMultimediaDataUploadResponse(pp *ProtocolParameter) ([]byte, error) {
	r := pp.Send.MultimediaUploadResponse
	if len(r.ReloadPacketIDs) > 0xFF {
		return nil, fmt.Errorf("too many reload packet ids: %d", len(r.ReloadPacketIDs))
	}
	out := make([]byte, 0, 4+1+2*len(r.ReloadPacketIDs))
	out = putUint32(out, r.MediaID)
	out = append(out, byte(len(r.ReloadPacketIDs)))
	for _, id := range r.ReloadPacketIDs {
		out = putUint16(out, id)
	}
	return out, nil
}

func decodeMultimediaDataUploadResponse(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	if len(body) < 5 {
		return fmt.Errorf("multimedia upload response needs at least 5 bytes, got %d", len(body))
	}
	r := MultimediaUploadResponse{
		MediaID: binary.BigEndian.Uint32(body[0:4]),
	}
	count := int(body[4])
	pos := 5
	if pos+2*count > len(body) {
		return fmt.Errorf("multimedia upload response needs %d id bytes, got %d", 2*count, len(body)-pos)
	}
	r.ReloadPacketIDs = make([]uint16, count)
	for i := 0; i < count; i++ {
		r.ReloadPacketIDs[i] = binary.BigEndian.Uint16(body[pos : pos+2])
		pos += 2
	}
	pp.Parse.MultimediaUploadResponse = r
	return nil
}

func registerMultimediaEncoders(p *Packager) {
	p.handlers[MsgIDMultimediaDataUpload] = encodeMultimediaDataUpload
	p.handlers[MsgIDMultimediaDataUploadResponse] = encodeMultimediaDataUploadResponse
}

func registerMultimediaDecoders(p *Parser) {
	p.handlers[MsgIDMultimediaDataUpload] = decodeMultimediaDataUpload
	p.handlers[MsgIDMultimediaDataUploadResponse] = decodeMultimediaDataUploadResponse
}
