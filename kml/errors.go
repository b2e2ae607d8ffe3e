package kml

import (
	"errors"
	"strconv"
)

// ErrKind classifies codec errors so callers can branch on intent rather
// than message text.
type ErrKind int

const (
	KindMalformedXML      ErrKind = iota // lexical/structural XML violation from the tokenizer
	KindUnexpectedEOF                    // input ended inside an open element
	KindUnexpectedElement                // a child appears where the schema forbids it, or a required one is missing
	KindNumericParse                     // coordinate or numeric field failed to parse
	KindIO                               // sink or source failure
)

func (k ErrKind) String() string {
	switch k {
	case KindMalformedXML:
		return "malformed-xml"
	case KindUnexpectedEOF:
		return "unexpected-eof"
	case KindUnexpectedElement:
		return "unexpected-element"
	case KindNumericParse:
		return "numeric-parse"
	case KindIO:
		return "io"
	}
	return "unknown"
}

// Error is a typed codec error with optional positional context and an
// optional underlying cause.
type Error struct {
	Kind   ErrKind
	Msg    string
	Token  string // offending token or tag, when one exists
	Offset int64  // byte offset in the input, when the tokenizer supplies it
	Err    error  // underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Token != "" {
		msg += ": " + strconv.Quote(e.Token)
	}
	if e.Offset > 0 {
		msg += " at byte " + strconv.FormatInt(e.Offset, 10)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// ErrEmptyDocument is returned when the input ends before any root element.
var ErrEmptyDocument = &Error{Kind: KindUnexpectedEOF, Msg: "kml: no root element"}

// KindOf reports the ErrKind of err when it is, or wraps, a codec *Error.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// numericErr builds the hard parse error for a bad numeric token.
func numericErr(token string, err error) *Error {
	return &Error{Kind: KindNumericParse, Msg: "kml: invalid numeric token", Token: token, Err: err}
}

// enumErr builds the error for an unknown enum text form.
func enumErr(field, token string) *Error {
	return &Error{Kind: KindUnexpectedElement, Msg: "kml: unknown " + field + " value", Token: token}
}

// ioErr wraps a sink or source failure, passing typed errors through.
func ioErr(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindIO, Msg: "kml: write failed", Err: err}
}
