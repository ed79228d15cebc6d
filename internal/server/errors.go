// Package server provides the HTTP JSON API for the skill-match service.
package server

import (
	"fmt"
	"net/http"
)

// ErrInvalidInput indicates a client-side input problem: an empty required
// field, an undecodable resume, or a PDF with no extractable text.
type ErrInvalidInput struct {
	Message string
}

func (e *ErrInvalidInput) Error() string {
	return e.Message
}

// ErrProvider indicates a capability-provider failure (embedding or NLP).
type ErrProvider struct {
	Op  string
	Err error
}

func (e *ErrProvider) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Op, e.Err)
}

func (e *ErrProvider) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidInput:
		return http.StatusBadRequest
	case *ErrProvider:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
