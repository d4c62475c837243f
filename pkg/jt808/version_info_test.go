package jt808

import "testing"

func TestVersionInformationRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.VersionInfo = VersionInformation{
		Version:      "HBT530CVMFF2D1",
		RelDate:      "2020-06-24",
		CPUID:        []byte{0xFD, 0xFF, 0x02, 0x00},
		Model:        "EC200U",
		IMEI:         "864714067557109",
		IMSI:         "520031008795627",
		ICCID:        "8966032421096431741F",
		CarModel:     61526,
		VIN:          "LSGHD52H8JE100000",
		TotalMileage: 123456,
		TotalFuel:    7890,
	}
	body, err := encodeVersionInformation(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeVersionInformation(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := parsed.Parse.VersionInfo
	want := pp.Send.VersionInfo
	if got.Version != want.Version || got.Model != want.Model || got.IMEI != want.IMEI {
		t.Fatalf("identity fields mismatch: want %+v, got %+v", want, got)
	}
	if got.CarModel != want.CarModel || got.TotalMileage != want.TotalMileage || got.TotalFuel != want.TotalFuel {
		t.Fatalf("numeric fields mismatch: want %+v, got %+v", want, got)
	}
	if string(got.CPUID) != string(want.CPUID) {
		t.Fatalf("cpu id mismatch: want %v, got %v", want.CPUID, got.CPUID)
	}
}
