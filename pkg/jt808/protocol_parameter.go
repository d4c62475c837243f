package jt808

// ProtocolParameterFields groups every structured entity a message body
// handler may read from (when encoding) or write to (when decoding).
// ProtocolParameter embeds two independent instances of this type so
// that decoding a received frame can never clobber state the caller set
// up to send the next outgoing frame.
type ProtocolParameterFields struct {
	Header MessageHeader

	ResponseResult  uint8
	ResponseMsgID   uint16
	ResponseFlowNum uint16

	RegisterInfo RegisterInfo
	AuthCode     []byte

	TerminalParameters   map[uint32][]byte
	TerminalParameterIDs []uint32

	Location           LocationBasic
	LocationExtensions map[uint8][]byte
	TrackingControl    LocationTrackingControl

	PolygonArea   PolygonArea
	PolygonAreaID []uint32

	Upgrade    UpgradeInfo
	FillPacket FillPacketRequest

	MultimediaUpload         MultimediaUpload
	MultimediaUploadResponse MultimediaUploadResponse

	// Retain is a slot for bytes the protocol reserves for future use.
	// None of the built-in message layouts carries such bytes, so no
	// built-in encoder reads it and no built-in decoder writes it.
	Retain []byte

	VersionInfo    VersionInformation
	DrivingLicense DrivingLicenseData
	CANBroadcast   CANBroadcastData
	BatchLocation  BatchLocationReport
}

// ProtocolParameter is the composite container a caller populates before
// encoding and that a Parser populates while decoding. Send and Parse
// are kept as separate values (never aliased) so that decoding a reply
// on a connection cannot silently overwrite the parameters the caller
// is about to send next.
type ProtocolParameter struct {
	Send  ProtocolParameterFields
	Parse ProtocolParameterFields
}

// LocationTrackingControl is the temporary location tracking control
// body (0x8202): polling interval and validity window.
type LocationTrackingControl struct {
	IntervalSeconds uint16
	ValidSeconds    uint32
}
