// Package config resolves the scaffolding configuration from CLI input and
// the optional .primer.yaml defaults file. A resolved ProjectConfig is
// immutable for the lifetime of the run and is the only input the rest of
// the pipeline sees.
package config

import "errors"

// Sentinel errors for the config package.
var (
	// ErrNameRequired indicates the project name is empty after resolution.
	ErrNameRequired = errors.New("project name is required")

	// ErrDescriptionRequired indicates the project description is empty after resolution.
	ErrDescriptionRequired = errors.New("project description is required")

	// ErrInvalidOutput indicates the output directory could not be resolved.
	ErrInvalidOutput = errors.New("invalid output directory")
)
