package jt808

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// encodeGBK converts a UTF-8 string (typically a Chinese vehicle plate)
// to its GBK byte representation, as carried on the wire by RegisterInfo.PlateNum.
func encodeGBK(s string) ([]byte, error) {
	r := transform.NewReader(strings.NewReader(s), simplifiedchinese.GBK.NewEncoder())
	return io.ReadAll(r)
}

// decodeGBK converts GBK-encoded bytes back to a UTF-8 string, trimming
// the 0x00 padding fixed-width plate fields carry.
func decodeGBK(b []byte) (string, error) {
	s, _, err := transform.String(simplifiedchinese.GBK.NewDecoder(), string(b))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\x00"), nil
}
