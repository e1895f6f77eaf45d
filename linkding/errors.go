package linkding

import (
	"errors"
	"fmt"
)

// Kind classifies every way a call can fail.
type Kind int

const (
	// KindInvalidURL means the base URL or the composed request URI did not parse.
	KindInvalidURL Kind = iota + 1
	// KindURLBuild means the request could not be assembled from its parts.
	KindURLBuild
	// KindTransport covers network failures and non-2xx responses.
	KindTransport
	// KindResponseParse means the response body did not decode into the expected record.
	KindResponseParse
	// KindRequestSerialize means the outgoing body could not be encoded.
	KindRequestSerialize
)

var (
	ErrInvalidURL       = errors.New("invalid URL")
	ErrURLBuild         = errors.New("error building URL")
	ErrTransport        = errors.New("error sending HTTP request")
	ErrResponseParse    = errors.New("could not parse response from API")
	ErrRequestSerialize = errors.New("could not serialize request body")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidURL:
		return ErrInvalidURL
	case KindURLBuild:
		return ErrURLBuild
	case KindTransport:
		return ErrTransport
	case KindResponseParse:
		return ErrResponseParse
	case KindRequestSerialize:
		return ErrRequestSerialize
	}
	return nil
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every Client method. Op names the operation that
// failed and Err is the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an *Error against the Err* sentinels.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// APIError represents a non-2xx response from the linkding API. It is
// always wrapped in an *Error of KindTransport.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (status: %d)", e.Message, e.StatusCode)
}

func newError(kind Kind, op Operation, err error) *Error {
	return &Error{Kind: kind, Op: op.String(), Err: err}
}

// KindOf reports the Kind of err, or 0 if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// StatusCode returns the HTTP status carried by err, if it wraps an
// *APIError.
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
