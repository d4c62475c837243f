package jt808

import "testing"

func TestGeneralResponseRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.ResponseFlowNum = 7
	pp.Send.ResponseMsgID = MsgIDTerminalRegister
	pp.Send.ResponseResult = ResultNotSupport

	body, err := encodeGeneralResponse(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeGeneralResponse(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Parse.ResponseFlowNum != 7 || parsed.Parse.ResponseMsgID != MsgIDTerminalRegister || parsed.Parse.ResponseResult != ResultNotSupport {
		t.Fatalf("unexpected parse result: %+v", parsed.Parse)
	}
}

func TestGeneralResponseDecodeRejectsShortBody(t *testing.T) {
	if err := decodeGeneralResponse(MessageHeader{}, []byte{0x00, 0x01}, &ProtocolParameter{}); err == nil {
		t.Fatal("expected error for short body")
	}
}
