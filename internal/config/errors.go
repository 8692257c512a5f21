package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates missing token signing settings
	// (empty sign key or non-positive token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdminConfigs indicates an incomplete canonical admin identity;
	// the startup bootstrap cannot run without email and password.
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidAppConfigs indicates an empty valid-category set.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
