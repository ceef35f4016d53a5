package nid

import (
	"errors"
	"fmt"
)

// Kind represents a validation error category independent of country.
// The three kinds are orthogonal and checked in a fixed order:
// format before checksum before date.
type Kind string

const (
	// KindFormat means the code's length, alphabet, or positional grammar
	// does not match the country's layout.
	KindFormat Kind = "format"
	// KindChecksum means the layout matched but the computed check
	// character disagrees with the supplied one.
	KindChecksum Kind = "checksum"
	// KindInvalidDate means layout and checksum matched but the decoded
	// year/month/day do not form a valid calendar date.
	KindInvalidDate Kind = "invalid_date"
)

// Code is a fine-grained reason within a Kind.
type Code string

const (
	CodeInvalidLength       Code = "invalid_length"
	CodeInvalidDecadeChar   Code = "invalid_decade_char"
	CodeNonDigitCharacter   Code = "non_digit_character"
	CodeInvalidChecksumChar Code = "invalid_checksum_char"
	CodeInvalidMonthCode    Code = "invalid_month_code"
	CodeChecksumMismatch    Code = "checksum_mismatch"
	CodeMonthOutOfRange     Code = "month_out_of_range"
	CodeDayOutOfRange       Code = "day_out_of_range"
)

// Error is the single error type returned by every country module.
// Callers distinguish the three kinds with errors.Is against the
// [ErrFormat], [ErrChecksum] and [ErrInvalidDate] sentinels, and catch
// all of them at once with errors.As on *Error.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

// Is enables errors.Is matching by kind. A target with an empty Code
// matches any error of the same kind; a target with a Code set matches
// only that exact reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" && t.Code != e.Code {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is matching by kind.
var (
	ErrFormat      = &Error{Kind: KindFormat}
	ErrChecksum    = &Error{Kind: KindChecksum}
	ErrInvalidDate = &Error{Kind: KindInvalidDate}
)

func formatErr(code Code, format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Code: code, Message: fmt.Sprintf(format, args...)}
}

func checksumErr() *Error {
	return &Error{Kind: KindChecksum, Code: CodeChecksumMismatch, Message: "checksum validation failed"}
}

func dateErr(code Code, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidDate, Code: code, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a validation error, or "" if err is not a
// *Error produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
