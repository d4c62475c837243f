package jt808

import "testing"

func TestCANBroadcastDataRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.CANBroadcast = CANBroadcastData{
		NumEntries: 1,
		RecvTime:   "1234567",
		Frame: CANInfo{
			ID:   0x123,
			Data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		},
	}
	body, err := encodeCANBroadcastData(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeCANBroadcastData(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Parse.CANBroadcast.Frame.ID != 0x123 {
		t.Fatalf("unexpected can id: 0x%X", parsed.Parse.CANBroadcast.Frame.ID)
	}
	if string(parsed.Parse.CANBroadcast.Frame.Data) != string(pp.Send.CANBroadcast.Frame.Data) {
		t.Fatal("can data mismatch")
	}
}

func TestBatchLocationReportRoundTrip(t *testing.T) {
	basic := LocationBasic{TimeBCD: "200718120000", AltitudeM: 10}
	pp := &ProtocolParameter{}
	pp.Send.BatchLocation = BatchLocationReport{
		Kind: BatchLocationRetransmit,
		Items: []BatchLocationItem{
			{OffsetMS: 0, Location: basic, Extensions: map[uint8][]byte{ExtIDNetworkSignal: {0x10}}},
			{OffsetMS: 1000, Location: basic, Extensions: nil},
		},
	}
	body, err := encodeBatchLocationReport(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeBatchLocationReport(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Parse.BatchLocation.Kind != BatchLocationRetransmit {
		t.Fatalf("unexpected kind: %d", parsed.Parse.BatchLocation.Kind)
	}
	if len(parsed.Parse.BatchLocation.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(parsed.Parse.BatchLocation.Items))
	}
	if parsed.Parse.BatchLocation.Items[1].OffsetMS != 1000 {
		t.Fatalf("unexpected offset: %d", parsed.Parse.BatchLocation.Items[1].OffsetMS)
	}
}
