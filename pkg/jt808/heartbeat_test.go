package jt808

import "testing"

func TestLogOutEmptyBody(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.Header = MessageHeader{MsgID: MsgIDTerminalLogOut, Phone: "13523339527", FlowNum: 1}
	packager := NewPackager()
	frame, err := packager.Encode(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parser := NewParser()
	parsed := &ProtocolParameter{}
	if err := parser.Decode(frame, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Parse.Header.BodyAttr.BodyLen() != 0 {
		t.Fatalf("expected empty body, got %d bytes", parsed.Parse.Header.BodyAttr.BodyLen())
	}
}
