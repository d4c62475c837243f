package jt808

import "testing"

func TestUpgradeRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.Upgrade = UpgradeInfo{
		Type:           UpgradeTypeTerminal,
		ManufacturerID: [5]byte{'A', 'B', 'C', 'D', 'E'},
		Version:        "1.2.3",
		TotalLen:       4,
		Data:           []byte{0x01, 0x02, 0x03, 0x04},
	}
	body, err := encodeUpgrade(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeUpgrade(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Parse.Upgrade.Type != UpgradeTypeTerminal {
		t.Fatalf("unexpected upgrade type: %d", parsed.Parse.Upgrade.Type)
	}
	if parsed.Parse.Upgrade.Version != "1.2.3" {
		t.Fatalf("unexpected version: %q", parsed.Parse.Upgrade.Version)
	}
	if parsed.Parse.Upgrade.TotalLen != 4 {
		t.Fatalf("unexpected total len: %d", parsed.Parse.Upgrade.TotalLen)
	}
	if string(parsed.Parse.Upgrade.Data) != string(pp.Send.Upgrade.Data) {
		t.Fatalf("data mismatch: want %v, got %v", pp.Send.Upgrade.Data, parsed.Parse.Upgrade.Data)
	}
}

func TestUpgradeResultRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.Upgrade.Type = UpgradeTypeTerminal
	pp.Send.Upgrade.Result = UpgradeResultFailure
	body, err := encodeUpgradeResult(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2-byte body, got %d", len(body))
	}
	parsed := &ProtocolParameter{}
	if err := decodeUpgradeResult(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Parse.Upgrade.Type != UpgradeTypeTerminal {
		t.Fatalf("unexpected upgrade type: %d", parsed.Parse.Upgrade.Type)
	}
	if parsed.Parse.Upgrade.Result != UpgradeResultFailure {
		t.Fatalf("unexpected result: %d", parsed.Parse.Upgrade.Result)
	}
}
