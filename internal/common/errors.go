// Package common defines shared constants and sentinel errors used across
// client layers of DataV. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors.
	ErrorInvalidArgument = errors.New("invalid argument")

	// Token inspection errors.
	ErrInvalidToken = errors.New("invalid token")
)
