package datakit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVariant is returned when a box has a type the operation
	// cannot handle.
	ErrUnsupportedVariant = errors.New("unsupported variant")

	// ErrInvalidTag is returned when decoding meets tag 0 or an unknown tag.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrShortBuffer is returned when a payload is shorter than its width.
	ErrShortBuffer = errors.New("short buffer")

	// ErrInvalidVariant is returned when two boxes have no ordering rule.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrOverflow is returned when a value does not fit its target.
	ErrOverflow = errors.New("overflow")

	// ErrIteratorInvalidated is reported by an iterator whose container was
	// modified after the iterator was created.
	ErrIteratorInvalidated = errors.New("iterator invalidated")
)

// VariantError reports a box type rejected by an operation.
//
// It matches ErrUnsupportedVariant with errors.Is unless a different cause
// is set.
type VariantError struct {
	Op    string
	Type  string
	cause error
}

// NewVariantError returns a VariantError wrapping cause. A nil cause means
// ErrUnsupportedVariant.
func NewVariantError(op, typ string, cause error) *VariantError {
	if cause == nil {
		cause = ErrUnsupportedVariant
	}
	return &VariantError{Op: op, Type: typ, cause: cause}
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.cause, e.Type)
}

func (e *VariantError) Unwrap() error { return e.cause }

// DecodeError reports a malformed encoded value.
type DecodeError struct {
	Tag   uint8
	Need  int
	Have  int
	cause error
}

// NewDecodeError returns a DecodeError wrapping cause.
func NewDecodeError(tag uint8, need, have int, cause error) *DecodeError {
	return &DecodeError{Tag: tag, Need: need, Have: have, cause: cause}
}

func (e *DecodeError) Error() string {
	if errors.Is(e.cause, ErrShortBuffer) {
		return fmt.Sprintf("decode tag %d: need %d bytes, have %d", e.Tag, e.Need, e.Have)
	}
	return fmt.Sprintf("decode tag %d: %v", e.Tag, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }
