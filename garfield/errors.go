package garfield

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSources is returned by Resolve when the registry lists no sources.
var ErrNoSources = errors.New("no comic sources configured")

// FetchError reports a transport failure or a non-success response.
type FetchError struct {
	URL        string
	StatusCode int // zero if no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP error: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not a usable HTML document.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports a well-formed document without the comic element,
// which usually means nothing was published for that day.
type NotFoundError struct {
	URL      string
	Selector string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no element matches %q", e.URL, e.Selector)
}

// AttributeMissingError reports a comic element lacking the image attribute.
type AttributeMissingError struct {
	URL       string
	Selector  string
	Attribute string
}

func (e *AttributeMissingError) Error() string {
	return fmt.Sprintf("%s: element %q has no %q attribute", e.URL, e.Selector, e.Attribute)
}

// Attempt records one failed source during a resolution.
type Attempt struct {
	Source string
	Err    error
}

// ExhaustedError is returned when every source failed. Attempts are kept in
// the order the sources were tried.
type ExhaustedError struct {
	Date     Date
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	reasons := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		reasons[i] = fmt.Sprintf("%s: %v", a.Source, a.Err)
	}
	return fmt.Sprintf("no source has a comic for %s (%s)", e.Date, strings.Join(reasons, "; "))
}

func (e *ExhaustedError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a.Err
	}
	return errs
}
