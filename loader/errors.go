package loader

import (
	"errors"

	"github.com/lyraproj/issue/issue"
)

// ErrorCollector accumulates the issues found while loading a document.
type ErrorCollector struct {
	Errors []error
}

func (c *ErrorCollector) HasErrors() bool {
	return len(c.Errors) > 0
}

func (c *ErrorCollector) AddErrors(errs ...error) {
	c.Errors = append(c.Errors, errs...)
}

// Err joins the collected errors, or returns nil.
func (c *ErrorCollector) Err() error {
	return errors.Join(c.Errors...)
}

// Issues flattens an error returned by the loader into the issues it reports.
func Issues(err error) []issue.Reported {
	if err == nil {
		return nil
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	out := make([]issue.Reported, 0, len(errs))
	for _, e := range errs {
		var r issue.Reported
		if errors.As(e, &r) {
			out = append(out, r)
		}
	}
	return out
}
