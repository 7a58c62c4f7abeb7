package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError is the error type produced by the builder. It carries an
// operator-facing hint and structured details safe to report to API clients.
type InternalError struct {
	err     error
	hint    string
	details map[string]any
}

func (e *InternalError) Error() string {
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

// Hint returns the human readable hint attached to the error, if any.
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns the structured details attached to the error.
func (e *InternalError) ReportableDetails() map[string]any {
	return e.details
}

// ErrorBuilder accumulates context and finishes with Mark.
type ErrorBuilder struct {
	ie *InternalError
}

// NewError starts a builder from a message.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{ie: &InternalError{err: errors.New(msg)}}
}

// NewErrorf starts a builder from a formatted message.
func NewErrorf(format string, args ...any) *ErrorBuilder {
	return &ErrorBuilder{ie: &InternalError{err: errors.Newf(format, args...)}}
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *ErrorBuilder {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &ErrorBuilder{ie: &InternalError{err: err}}
}

// WithMessage wraps the current error with an additional message.
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.ie.err = errors.Wrap(b.ie.err, msg)
	return b
}

// WithHint attaches a human readable hint for API consumers and logs.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.ie.hint = hint
	return b
}

// WithHintf attaches a formatted hint.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.ie.hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured details that are safe to expose
// in API responses.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	b.ie.details = details
	return b
}

// Mark finalizes the builder, marking the error with a sentinel so it can be
// classified with errors.Is.
func (b *ErrorBuilder) Mark(mark error) error {
	b.ie.err = errors.Mark(b.ie.err, mark)
	return b.ie
}

// Hint extracts the hint from an error chain, if present.
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.Hint()
	}
	return ""
}

// ReportableDetails extracts structured details from an error chain, if present.
func ReportableDetails(err error) map[string]any {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.ReportableDetails()
	}
	return nil
}
