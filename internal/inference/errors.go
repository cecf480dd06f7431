// Package inference provides the client for the hosted classification model.
package inference

import "errors"

var (
	// ErrAuthenticationFailed indicates the bearer credential could not be
	// obtained; fatal for the request since no inference can proceed
	ErrAuthenticationFailed = errors.New("model authentication failed")

	// ErrInvalidResponse indicates the model response is missing required
	// prediction fields
	ErrInvalidResponse = errors.New("invalid model response")

	// ErrModelUnavailable indicates the model endpoint is unreachable
	ErrModelUnavailable = errors.New("model endpoint unavailable")

	// ErrEmptyBatch indicates a batch predict call with no feature vectors
	ErrEmptyBatch = errors.New("empty prediction batch")
)
