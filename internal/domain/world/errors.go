package world

import "fmt"

// DomainError is the base error type for all atlas errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// FetchError means the upstream source was unreachable or answered with a
// non-success status. Recovered at the router boundary as an error panel.
type FetchError struct {
	*DomainError

	// Status is the HTTP status code, or 0 for transport-level failures
	Status int
}

func NewFetchError(message string, status int) *FetchError {
	return &FetchError{DomainError: &DomainError{Message: message}, Status: status}
}

// ParseError means the upstream body was not well-formed structured data
type ParseError struct {
	*DomainError
}

func NewParseError(message string) *ParseError {
	return &ParseError{DomainError: &DomainError{Message: message}}
}

// NotFoundError marks an unknown planet or country within otherwise valid
// data. It is rendered as an explicit not-found panel, never thrown across
// the router boundary.
type NotFoundError struct {
	*DomainError

	// Kind is "planet" or "country"
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s %q not found", kind, id)},
		Kind:        kind,
		ID:          id,
	}
}
