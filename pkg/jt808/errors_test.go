package jt808

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByKindNotMsgID(t *testing.T) {
	err := newMsgErr(KindBodyDecodeFailure, 0x0200, fmt.Errorf("boom"))
	if !errors.Is(err, ErrBodyDecodeFailure) {
		t.Fatal("expected errors.Is to match on kind regardless of msg id")
	}
	if errors.Is(err, ErrChecksumMismatch) {
		t.Fatal("expected no match against a different kind")
	}
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := newErr(KindHeaderParseError, cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the wrapped cause")
	}
}

func TestKindStringIsHumanReadable(t *testing.T) {
	if KindChecksumMismatch.String() != "checksum mismatch" {
		t.Fatalf("unexpected string: %q", KindChecksumMismatch.String())
	}
}
