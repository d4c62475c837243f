package jt808

import "testing"

func TestSetTerminalParametersRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.TerminalParameters = map[uint32][]byte{
		0xF020: []byte("192.168.3.111"),
		0x0001: {0x00, 0x00, 0x1E, 0x00},
	}
	body, err := encodeSetTerminalParameters(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if body[0] != 2 {
		t.Fatalf("expected count byte 2, got %d", body[0])
	}
	parsed := &ProtocolParameter{}
	if err := decodeSetTerminalParameters(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for id, want := range pp.Send.TerminalParameters {
		got, ok := parsed.Parse.TerminalParameters[id]
		if !ok {
			t.Fatalf("missing parameter 0x%08X", id)
		}
		if string(got) != string(want) {
			t.Fatalf("parameter 0x%08X mismatch: want %v, got %v", id, want, got)
		}
	}
}

func TestSetTerminalParametersDeterministicEncoding(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.TerminalParameters = map[uint32][]byte{
		0x0003: {0x01},
		0x0001: {0x02},
		0x0002: {0x03},
	}
	first, err := encodeSetTerminalParameters(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := encodeSetTerminalParameters(pp)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("encoding not deterministic across calls: %x vs %x", first, again)
		}
	}
}

func TestQueryTerminalParametersResponsePrependsFlowNum(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.ResponseFlowNum = 99
	pp.Send.TerminalParameters = map[uint32][]byte{0x0001: {0xFF}}
	body, err := encodeQueryTerminalParametersResponse(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeQueryTerminalParametersResponse(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Parse.ResponseFlowNum != 99 {
		t.Fatalf("expected flow num 99, got %d", parsed.Parse.ResponseFlowNum)
	}
}

func TestQuerySpecificTerminalParametersRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.TerminalParameterIDs = []uint32{0x0001, 0x0002, 0xF020}
	body, err := encodeQuerySpecificTerminalParameters(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeQuerySpecificTerminalParameters(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(parsed.Parse.TerminalParameterIDs) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(parsed.Parse.TerminalParameterIDs))
	}
	for i, id := range pp.Send.TerminalParameterIDs {
		if parsed.Parse.TerminalParameterIDs[i] != id {
			t.Fatalf("id %d mismatch: want 0x%08X, got 0x%08X", i, id, parsed.Parse.TerminalParameterIDs[i])
		}
	}
}
