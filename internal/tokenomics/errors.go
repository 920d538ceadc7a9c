package tokenomics

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when the launch gate is not satisfied.
var ErrIncomplete = errors.New("launch configuration is incomplete")

// ValidationError describes one rejected field of a wizard section.
type ValidationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Section, e.Field, e.Reason)
}

// fieldErrors collects ValidationErrors for one section.
type fieldErrors struct {
	section string
	errs    []error
}

func (f *fieldErrors) add(field, format string, args ...interface{}) {
	f.errs = append(f.errs, &ValidationError{
		Section: f.section,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	})
}

func (f *fieldErrors) err() error {
	return errors.Join(f.errs...)
}

// Fields flattens a (possibly joined) error into its ValidationErrors.
func Fields(err error) []*ValidationError {
	if err == nil {
		return nil
	}

	var out []*ValidationError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, Fields(e)...)
		}
		return out
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		out = append(out, ve)
	}
	return out
}
