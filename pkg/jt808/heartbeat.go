package jt808

const (
	// MsgIDTerminalHeartbeat is the terminal heartbeat (0x0002), empty body.
	MsgIDTerminalHeartbeat uint16 = 0x0002
	// MsgIDTerminalLogOut is the terminal logout (0x0003), empty body.
	MsgIDTerminalLogOut uint16 = 0x0003
)

func encodeEmptyBody(*ProtocolParameter) ([]byte, error) {
	return nil, nil
}

func decodeEmptyBody(MessageHeader, []byte, *ProtocolParameter) error {
	return nil
}

func registerHeartbeatEncoders(p *Packager) {
	p.handlers[MsgIDTerminalHeartbeat] = encodeEmptyBody
	p.handlers[MsgIDTerminalLogOut] = encodeEmptyBody
}

func registerHeartbeatDecoders(p *Parser) {
	p.handlers[MsgIDTerminalHeartbeat] = decodeEmptyBody
	p.handlers[MsgIDTerminalLogOut] = decodeEmptyBody
}
