package jt808

import "fmt"

// Kind identifies the class of failure a Error reports, mirroring the
// flat error taxonomy of the JT/T 808 codec.
type Kind int

const (
	// KindParametersNull signals that a caller passed a missing output container.
	KindParametersNull Kind = iota
	// KindTooShort signals a frame shorter than the minimum header length.
	KindTooShort
	// KindMissingFlags signals that the first or last byte is not 0x7E.
	KindMissingFlags
	// KindUnescapeFailure signals a malformed 0x7D escape sequence.
	KindUnescapeFailure
	// KindChecksumMismatch signals that the recomputed XOR disagrees with the trailer byte.
	KindChecksumMismatch
	// KindHeaderParseError signals a malformed header (bad BCD phone, inconsistent segmentation fields).
	KindHeaderParseError
	// KindUnregisteredMessageParser signals that no decoder is registered for the parsed message ID.
	KindUnregisteredMessageParser
	// KindBodyDecodeFailure signals that a registered decoder rejected the body.
	KindBodyDecodeFailure
	// KindBodyEncodeFailure signals that a registered encoder could not produce a body.
	KindBodyEncodeFailure
)

func (k Kind) String() string {
	switch k {
	case KindParametersNull:
		return "parameters null"
	case KindTooShort:
		return "frame too short"
	case KindMissingFlags:
		return "missing flag bytes"
	case KindUnescapeFailure:
		return "unescape failure"
	case KindChecksumMismatch:
		return "checksum mismatch"
	case KindHeaderParseError:
		return "header parse error"
	case KindUnregisteredMessageParser:
		return "unregistered message parser"
	case KindBodyDecodeFailure:
		return "body decode failure"
	case KindBodyEncodeFailure:
		return "body encode failure"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by Packager.Encode and Parser.Decode
// (Append and the BCD helpers return plain errors). It carries a Kind so callers can branch with errors.Is against
// the package-level sentinels below, the message ID the failure concerns
// (0 when not applicable), and an optional wrapped cause.
type Error struct {
	Kind  Kind
	MsgID uint16
	Cause error
}

func (e *Error) Error() string {
	if e.MsgID != 0 {
		if e.Cause != nil {
			return fmt.Sprintf("jt808: %s (msg_id=0x%04X): %v", e.Kind, e.MsgID, e.Cause)
		}
		return fmt.Sprintf("jt808: %s (msg_id=0x%04X)", e.Kind, e.MsgID)
	}
	if e.Cause != nil {
		return fmt.Sprintf("jt808: %s: %v", e.Kind, e.Cause)
	}
	return "jt808: " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a sentinel for the same Kind, so that
// errors.Is(err, ErrChecksumMismatch) works without exposing *Error.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}
	return sentinel.Kind == e.Kind && sentinel.MsgID == 0
}

func newErr(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

func newMsgErr(kind Kind, msgID uint16, cause error) *Error {
	return &Error{Kind: kind, MsgID: msgID, Cause: cause}
}

// Sentinel errors for errors.Is comparisons. Each carries only its Kind;
// Is() compares Kind and ignores the MsgID and Cause of the error being
// tested, so these match any Error of the same Kind regardless of context.
var (
	ErrParametersNull            = &Error{Kind: KindParametersNull}
	ErrTooShort                  = &Error{Kind: KindTooShort}
	ErrMissingFlags              = &Error{Kind: KindMissingFlags}
	ErrUnescapeFailure           = &Error{Kind: KindUnescapeFailure}
	ErrChecksumMismatch          = &Error{Kind: KindChecksumMismatch}
	ErrHeaderParseError          = &Error{Kind: KindHeaderParseError}
	ErrUnregisteredMessageParser = &Error{Kind: KindUnregisteredMessageParser}
	ErrBodyDecodeFailure         = &Error{Kind: KindBodyDecodeFailure}
	ErrBodyEncodeFailure         = &Error{Kind: KindBodyEncodeFailure}
)
