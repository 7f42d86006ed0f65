// Package scaffold orchestrates the scaffolding pipeline: invoke the
// external generator, then overlay the supplementary file catalog on the
// generated skeleton. Execution is strictly sequential; the generator
// invocation is the only blocking suspension point.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrGeneratorFailed indicates the external generator exited non-zero.
	ErrGeneratorFailed = errors.New("generator failed")

	// ErrGeneratorUnavailable indicates the generator command could not be started.
	ErrGeneratorUnavailable = errors.New("generator could not be started")

	// ErrEnhancementFailed indicates a render or write failed during the
	// enhancement phase. Files written before the failure remain on disk.
	ErrEnhancementFailed = errors.New("enhancement failed")
)
