// Package errors defines the domain errors shared by services and handlers.
package errors

// DomainError is a sentinel error carrying a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
