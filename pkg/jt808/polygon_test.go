package jt808

import "testing"

func TestPolygonAreaRoundTripFullAttributes(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.PolygonArea = PolygonArea{
		AreaID:           7,
		Attribute:        PolygonAttrByTime | PolygonAttrSpeedLimit,
		StartTimeBCD:     "200101000000",
		StopTimeBCD:      "201231235959",
		MaxSpeedKPH:      80,
		OverspeedSeconds: 10,
		Vertices: []Vertex{
			{LatitudeDeg: 31.824845, LongitudeDeg: 117.246002},
			{LatitudeDeg: 31.825000, LongitudeDeg: 117.247000},
		},
	}
	body, err := encodeSetPolygonArea(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeSetPolygonArea(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := parsed.Parse.PolygonArea
	want := pp.Send.PolygonArea
	if got.AreaID != want.AreaID || got.Attribute != want.Attribute {
		t.Fatalf("area/attribute mismatch: want %+v, got %+v", want, got)
	}
	if got.StartTimeBCD != want.StartTimeBCD || got.StopTimeBCD != want.StopTimeBCD {
		t.Fatalf("time window mismatch: want %+v, got %+v", want, got)
	}
	if got.MaxSpeedKPH != want.MaxSpeedKPH || got.OverspeedSeconds != want.OverspeedSeconds {
		t.Fatalf("speed limit mismatch: want %+v, got %+v", want, got)
	}
	if len(got.Vertices) != len(want.Vertices) {
		t.Fatalf("expected %d vertices, got %d", len(want.Vertices), len(got.Vertices))
	}
	for i := range want.Vertices {
		if diff := got.Vertices[i].LatitudeDeg - want.Vertices[i].LatitudeDeg; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("vertex %d latitude mismatch: want %f, got %f", i, want.Vertices[i].LatitudeDeg, got.Vertices[i].LatitudeDeg)
		}
	}
}

func TestPolygonAreaOmitsConditionalFieldsWhenUnset(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.PolygonArea = PolygonArea{
		AreaID:    1,
		Attribute: 0,
		Vertices:  []Vertex{{LatitudeDeg: 1, LongitudeDeg: 2}},
	}
	body, err := encodeSetPolygonArea(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// area_id(4) + attribute(2) + vertex_count(2) + one vertex(8)
	if len(body) != 4+2+2+8 {
		t.Fatalf("expected minimal body length, got %d", len(body))
	}
}

func TestDeletePolygonAreaRoundTrip(t *testing.T) {
	pp := &ProtocolParameter{}
	pp.Send.PolygonAreaID = []uint32{1, 2, 3}
	body, err := encodeDeletePolygonArea(pp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed := &ProtocolParameter{}
	if err := decodeDeletePolygonArea(MessageHeader{}, body, parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(parsed.Parse.PolygonAreaID) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(parsed.Parse.PolygonAreaID))
	}
}
