package sdp

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/gosdp/internal/errorutil"
	"github.com/ghettovoice/gosdp/internal/util"
)

// Error represents an SDP error.
// See [errorutil.Error].
type Error = errorutil.Error

// Parse errors.
const (
	// ErrUnexpectedField is returned when a line key is not accepted in the current parser state.
	ErrUnexpectedField Error = "unexpected field"
	// ErrInvalidSyntax is returned when a line or a field value has too few tokens.
	ErrInvalidSyntax Error = "invalid syntax"
	// ErrInvalidValue is returned when a token is well-formed but not allowed.
	ErrInvalidValue Error = "invalid value"
	// ErrInvalidNumber is returned when a token expected to be an integer is not.
	ErrInvalidNumber Error = "invalid numeric value"
	// ErrNoTimeDescription is returned when a time-scoped field has no open time description.
	ErrNoTimeDescription Error = "no time description"
	// ErrNoMediaDescription is returned when a media-scoped field has no open media description.
	ErrNoMediaDescription Error = "no media description"
	// ErrInvalidExtMap is returned when an extmap attribute value cannot be decoded.
	ErrInvalidExtMap Error = "invalid extmap"
)

func newUnexpectedFieldErr(key string) error {
	return errorutil.NewWrapperError(ErrUnexpectedField, "%q", key) //errtrace:skip
}

func newInvalidSyntaxErr(line string) error {
	return errorutil.NewWrapperError(ErrInvalidSyntax, "`%s`", line) //errtrace:skip
}

func newInvalidValueErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidValue, args...) //errtrace:skip
}

func newInvalidNumberErr(err error) error {
	return errorutil.NewWrapperError(ErrInvalidNumber, err) //errtrace:skip
}

// ParseError represents an error that occurred during parsing.
//
// It contains the error that occurred, the parser state the line was fed to,
// the 1-based line number and the raw line that caused the error.
// Buf is nil for errors reported at the end of input.
type ParseError struct {
	Err   error
	State State
	Line  int
	Buf   []byte
}

func (err *ParseError) Error() string {
	if err == nil {
		return "<nil>"
	}
	if err.Buf == nil {
		return fmt.Sprintf("sdp: parse error at line %d (%s): %v", err.Line, err.State, err.Err)
	}
	return fmt.Sprintf("sdp: parse error at line %d (%s) %q: %v",
		err.Line, err.State, util.Ellipsis(string(err.Buf), 64), err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

// Grammar reports whether the error is a field order violation.
func (err *ParseError) Grammar() bool { return errors.Is(err.Err, ErrUnexpectedField) }
