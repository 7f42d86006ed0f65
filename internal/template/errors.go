// Package template holds the catalog of supplementary files the scaffolder
// overlays on a generated project, and the renderer that produces their
// content. Rendering is pure: equal contexts yield byte-identical output and
// no filesystem writes happen here.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template does not exist in the embedded FS.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the context lacks a field the template references.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates a dynamic token survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")
)
