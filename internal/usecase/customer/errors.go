package customer

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type ValidationKind int

const (
	MissingField ValidationKind = iota + 1
	MalformedPayload
	InvalidField
	MissingIdentifier
	InvalidQuery
)

func (k ValidationKind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case MalformedPayload:
		return "malformed_payload"
	case InvalidField:
		return "invalid_field"
	case MissingIdentifier:
		return "missing_identifier"
	case InvalidQuery:
		return "invalid_query"
	default:
		return "unknown"
	}
}

type ValidationError struct {
	Kind  ValidationKind
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	switch e.Kind {
	case MissingField:
		return "Invalid customer: missing " + e.Field
	case MalformedPayload:
		return "Invalid customer: body of request contained bad or no data"
	case InvalidField:
		return "Invalid customer: bad value for " + e.Field
	case MissingIdentifier:
		return "Update called with empty ID field"
	case InvalidQuery:
		return "Invalid query parameter: " + e.Field
	default:
		return "invalid customer"
	}
}

// InternalError wraps a store failure.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}

// storeErr classifies an error coming back from a Store call.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || IsValidation(err) {
		return err
	}
	return &InternalError{Op: op, Err: err}
}
