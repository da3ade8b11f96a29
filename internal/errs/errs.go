package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a failure for the HTTP contract.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInvalidInput
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// Client-facing messages. Detail never leaves the server.
const (
	MsgBadRequest = "Bad request"
	MsgNotFound   = "Not found"
	MsgInternal   = "Internal Server Error"
)

// Error is a failure raised by the application with an explicit classification.
type Error struct {
	Kind   Kind
	Msg    string
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Msg, e.Detail, e.Cause)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Msg, e.Detail)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is(err, errs.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Detail == "" && t.Cause == nil
}

var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput, Msg: MsgBadRequest}
	ErrNotFound     = &Error{Kind: KindNotFound, Msg: MsgNotFound}
)

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Msg: MsgBadRequest, Detail: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: MsgNotFound, Detail: fmt.Sprintf(format, args...)}
}

// Wrap keeps cause for logging and classifies it as unexpected.
func Wrap(cause error, detail string) *Error {
	return &Error{Kind: KindUnexpected, Msg: MsgInternal, Detail: detail, Cause: cause}
}

// postgres SQLSTATE codes
const (
	codeInvalidTextRepresentation = "22P02"
	codeInvalidRowCountInLimit    = "2201W"
	codeInvalidRowCountInOffset   = "2201X"
	codeNumericValueOutOfRange    = "22003"
	codeNotNullViolation          = "23502"
	codeForeignKeyViolation       = "23503"
	codeUniqueViolation           = "23505"
)

// Response is the normalized outcome of a failure.
type Response struct {
	Status int
	Msg    string
	Kind   Kind
}

// Normalize maps any error to its HTTP status and client message.
// Raised errors win over driver codes, which win over sentinel not-found errors.
func Normalize(err error) Response {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindInvalidInput:
			return Response{Status: http.StatusBadRequest, Msg: MsgBadRequest, Kind: KindInvalidInput}
		case KindNotFound:
			return Response{Status: http.StatusNotFound, Msg: MsgNotFound, Kind: KindNotFound}
		}
		// unexpected *Error may still wrap a classifiable driver error
		if appErr.Cause == nil {
			return internal()
		}
		err = appErr.Cause
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidTextRepresentation,
			codeInvalidRowCountInLimit,
			codeInvalidRowCountInOffset,
			codeNumericValueOutOfRange,
			codeNotNullViolation,
			codeUniqueViolation:
			return Response{Status: http.StatusBadRequest, Msg: MsgBadRequest, Kind: KindInvalidInput}
		case codeForeignKeyViolation:
			return Response{Status: http.StatusNotFound, Msg: MsgNotFound, Kind: KindNotFound}
		}
		return internal()
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return Response{Status: http.StatusNotFound, Msg: MsgNotFound, Kind: KindNotFound}
	}

	return internal()
}

func internal() Response {
	return Response{Status: http.StatusInternalServerError, Msg: MsgInternal, Kind: KindUnexpected}
}
