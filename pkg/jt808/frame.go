package jt808

import "fmt"

// minFrameLen is flag(1) + shortest header(12) + checksum(1) + flag(1):
// the smallest legal on-wire frame (an empty-bodied, non-segmented
// message such as the terminal heartbeat).
const minFrameLen = 1 + headerShortLen + 1 + 1

// wrapFrame assembles header ++ body into a complete on-wire frame:
// compute the XOR checksum over header‖body, append it, escape the
// result, then surround with flag bytes.
func wrapFrame(header, body []byte) []byte {
	payload := make([]byte, 0, len(header)+len(body)+1)
	payload = append(payload, header...)
	payload = append(payload, body...)
	payload = append(payload, xorChecksum(payload))

	escaped := escape(payload)
	out := make([]byte, 0, len(escaped)+2)
	out = append(out, flagByte)
	out = append(out, escaped...)
	out = append(out, flagByte)
	return out
}

// unwrapFrame validates flag bytes and checksum on a received frame and
// returns the unescaped header‖body interior (checksum stripped).
func unwrapFrame(frame []byte) ([]byte, error) {
	if len(frame) < minFrameLen {
		return nil, newErr(KindTooShort, fmt.Errorf("frame length %d below minimum %d", len(frame), minFrameLen))
	}
	if frame[0] != flagByte || frame[len(frame)-1] != flagByte {
		return nil, newErr(KindMissingFlags, nil)
	}

	interior, err := unescape(frame[1 : len(frame)-1])
	if err != nil {
		return nil, err
	}
	if len(interior) < headerShortLen+1 {
		return nil, newErr(KindTooShort, fmt.Errorf("unescaped interior length %d below minimum %d", len(interior), headerShortLen+1))
	}

	body := interior[:len(interior)-1]
	trailerChecksum := interior[len(interior)-1]
	if got := xorChecksum(body); got != trailerChecksum {
		return nil, newErr(KindChecksumMismatch, fmt.Errorf("computed 0x%02X, frame carries 0x%02X", got, trailerChecksum))
	}
	return body, nil
}
