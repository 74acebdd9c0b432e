// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package sponsor

import "errors"

var (
	// ErrInvalidInput is matched by errors.Is for every *InputError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a profile lookup matches no rows.
	ErrNotFound = errors.New("company not found")
)

// InputError describes why a lookup query was rejected.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// Is reports ErrInvalidInput as the sentinel for all input errors.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StoreQueryError wraps a backend failure. Error returns the backend message
// unchanged so it can be passed through to the client.
type StoreQueryError struct {
	Op  string
	Err error
}

func (e *StoreQueryError) Error() string {
	return e.Err.Error()
}

func (e *StoreQueryError) Unwrap() error {
	return e.Err
}
