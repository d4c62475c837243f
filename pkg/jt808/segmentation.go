package jt808

// maxSegmentBodyLen is the largest chunk SplitForSegmentation produces:
// 1000 bytes, 23 bytes under the 10-bit body_len ceiling (1023). Those
// 23 bytes hold the fields an upgrade body (0x8108) writes ahead of its
// chunk: type(1) + manufacturer(5) + version length(1) + total length(4)
// and a version string of up to 12 bytes. With a longer version string a
// full-size chunk makes the body exceed 1023 bytes and Packager.Encode
// rejects it.
const maxSegmentBodyLen = bodyLenMask - 23

// SplitForSegmentation splits data into chunks no larger than
// maxSegmentBodyLen bytes each, for use as the Data of successive
// UpgradeInfo (or other oversized-body) sends under a shared
// FlowNum/TotalPackets segmentation header. A zero-length data still
// yields a single empty chunk so a caller doesn't need a special case
// for small payloads.
func SplitForSegmentation(data []byte) [][]byte {
	if len(data) == 0 {
		return [][]byte{{}}
	}
	chunks := make([][]byte, 0, (len(data)+maxSegmentBodyLen-1)/maxSegmentBodyLen)
	for len(data) > 0 {
		n := maxSegmentBodyLen
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	return chunks
}
