package template

import (
	"github.com/primekit/primer/internal/config"
	"github.com/primekit/primer/pkg/version"
)

// RenderContext provides data for template rendering. All fields are
// exported for use with Go's text/template package. It carries no
// timestamps: rendering the same configuration twice must produce
// byte-identical output.
type RenderContext struct {
	// Project
	ProjectName  string
	Description  string
	Namespace    string // Identifier-safe token (name minus spaces/hyphens).
	DisplayTitle string // Human-readable title for document headers.
	ProjectDir   string // Absolute project root: <output>/<name>.

	// Generator
	GeneratorCommand string
	TemplateID       string

	// Meta
	Version string // primer version that produced the files.
}

// NewRenderContext builds a RenderContext from a resolved configuration.
func NewRenderContext(cfg *config.ProjectConfig) *RenderContext {
	return &RenderContext{
		ProjectName:      cfg.Name,
		Description:      cfg.Description,
		Namespace:        cfg.Namespace(),
		DisplayTitle:     cfg.DisplayTitle(),
		ProjectDir:       cfg.ProjectDir(),
		GeneratorCommand: cfg.Generator.Command,
		TemplateID:       cfg.Generator.Template,
		Version:          version.GetVersion(),
	}
}
