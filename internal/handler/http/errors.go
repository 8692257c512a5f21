// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers match against them with
// [errors.Is]; the mapper in errors_mapper.go turns them into status codes.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a "<scheme> <token>" value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrValidationFailed wraps validator errors for required-field and
	// format violations in request payloads.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidIDParam is returned when a path id segment is not a positive
	// integer.
	ErrInvalidIDParam = errors.New("invalid id parameter")
)
