package jt808

import (
	"encoding/binary"
	"fmt"
)

// putUint16 appends the big-endian encoding of v to dst.
func putUint16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

// putUint32 appends the big-endian encoding of v to dst.
func putUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// xorChecksum returns the single-byte XOR of every byte in b.
func xorChecksum(b []byte) byte {
	var sum byte
	for _, c := range b {
		sum ^= c
	}
	return sum
}

// putLenPrefixed appends s as a 1-byte-length-prefixed byte string.
func putLenPrefixed(dst []byte, s string) ([]byte, error) {
	if len(s) > 0xFF {
		return nil, fmt.Errorf("string %q exceeds 255-byte field limit", s)
	}
	dst = append(dst, byte(len(s)))
	return append(dst, s...), nil
}

// takeLenPrefixed reads a 1-byte-length-prefixed byte string from the
// front of body and returns it, the decoded string, and the remainder.
func takeLenPrefixed(body []byte) (string, []byte, error) {
	if len(body) < 1 {
		return "", nil, fmt.Errorf("length-prefixed field missing its length byte")
	}
	n := int(body[0])
	if len(body) < 1+n {
		return "", nil, fmt.Errorf("length-prefixed field needs %d bytes, got %d", n, len(body)-1)
	}
	return string(body[1 : 1+n]), body[1+n:], nil
}
