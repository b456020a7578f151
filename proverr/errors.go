// Package proverr defines the error vocabulary shared by every package in
// the prover: build-time clause/directive errors and internal invariant
// violations that should be logged and survived rather than panicked on.
package proverr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a prover error.
type Kind int

const (
	// KindBuild marks an error raised while turning parsed input into
	// clauses, symbols or configuration (arity/kind mismatch, unknown
	// symbol in a directive, ill-formed weight or precedence entry).
	KindBuild Kind = iota
	// KindInternalInvariant marks a bug indicator: a clause produced with
	// empty parents that is not an input clause, or a demodulator whose
	// orientation violates LRPO. Never fatal; the caller logs and drops
	// the offending clause.
	KindInternalInvariant
)

func (k Kind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindInternalInvariant:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by build-time operations.
type Error struct {
	Kind    Kind
	Op      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error in %s: %s", e.Kind, e.Op, e.Message)
}

// New constructs an *Error, tagging it with the operation that raised it.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Newf is New with printf-style formatting for Message.
func Newf(kind Kind, op, format string, args ...interface{}) *Error {
	return New(kind, op, fmt.Sprintf(format, args...))
}

// Wrap attaches a stack trace to err and tags it as a build error raised by
// op. Returns nil if err is nil.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "build error in %s", op)
}

// IsInternalInvariant reports whether err is an *Error of KindInternalInvariant.
func IsInternalInvariant(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindInternalInvariant
	}
	return false
}
