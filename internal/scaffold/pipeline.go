package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/primekit/primer/internal/config"
	"github.com/primekit/primer/internal/generator"
	"github.com/primekit/primer/internal/template"
)

// Result summarizes a completed pipeline run.
type Result struct {
	ProjectDir   string   // Absolute project root that was scaffolded.
	WrittenFiles []string // Relative paths written during enhancement, in order.
	SkippedFiles []string // Relative paths skipped by the create-if-absent policy.
	GeneratorOut string   // Captured generator stdout, for verbose display.
}

// Pipeline runs the scaffold sequence: external generator first, then the
// supplementary file catalog. Each run is single-shot; nothing is retried
// and nothing is rolled back on failure.
type Pipeline struct {
	runner   generator.Runner
	renderer template.Renderer
	writer   *FileWriter
	reporter Reporter
	logger   *slog.Logger
}

// NewPipeline creates a Pipeline with the given dependencies.
func NewPipeline(runner generator.Runner, renderer template.Renderer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		runner:   runner,
		renderer: renderer,
		writer:   NewFileWriter(),
		reporter: nopReporter{},
		logger:   logger,
	}
}

// SetReporter installs a progress reporter. Passing nil restores the
// discard reporter.
func (p *Pipeline) SetReporter(r Reporter) {
	if r == nil {
		p.reporter = nopReporter{}
		return
	}
	p.reporter = r
}

// Run executes the pipeline against a resolved configuration. The generator
// is invoked exactly once with
//
//	<command> new <template> --name <name> --output <root>/<name>
//
// and a non-zero exit aborts the run before any enhancement write. The
// enhancement phase then renders and writes the catalog in fixed order,
// honoring each spec's overwrite policy. On enhancement failure, files
// already written remain in place.
func (p *Pipeline) Run(ctx context.Context, cfg *config.ProjectConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projectDir := cfg.ProjectDir()
	result := &Result{ProjectDir: projectDir}

	p.logger.Info("scaffolding project",
		"name", cfg.Name,
		"dir", projectDir,
		"generator", cfg.Generator.Command,
		"template", cfg.Generator.Template,
	)

	// Phase 1: delegate the base skeleton to the external generator.
	p.reporter.Step(fmt.Sprintf("Generating base project with %s", cfg.Generator.Command))
	args := []string{"new", cfg.Generator.Template, "--name", cfg.Name, "--output", projectDir}
	res, err := p.runner.Invoke(ctx, cfg.Generator.Command, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrGeneratorUnavailable, cfg.Generator.Command, err)
	}
	if !res.Success() {
		return nil, fmt.Errorf("%w: exit code %d: %s", ErrGeneratorFailed, res.ExitCode, res.Stderr)
	}
	result.GeneratorOut = res.Stdout
	p.logger.Info("generator finished", "exitCode", res.ExitCode)

	// Phase 2: overlay the supplementary file catalog.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.reporter.Step("Enhancing project files")
	if err := p.enhance(cfg, result); err != nil {
		return nil, err
	}

	p.logger.Info("project scaffolded",
		"written", len(result.WrittenFiles),
		"skipped", len(result.SkippedFiles),
	)
	return result, nil
}

// enhance renders and writes every catalog spec in order. The overwrite
// policy is decided here, before the writer is involved: create-if-absent
// files that already exist are skipped untouched.
func (p *Pipeline) enhance(cfg *config.ProjectConfig, result *Result) error {
	tmplCtx := template.NewRenderContext(cfg)
	projectDir := cfg.ProjectDir()

	for _, spec := range template.Catalog() {
		dest := filepath.Join(projectDir, spec.RelPath)

		if spec.Policy == template.PolicyCreateIfAbsent {
			if _, err := os.Stat(dest); err == nil {
				p.reporter.FileSkipped(spec.RelPath)
				result.SkippedFiles = append(result.SkippedFiles, spec.RelPath)
				continue
			}
		}

		content, err := p.renderer.Render(spec.Template, tmplCtx)
		if err != nil {
			return fmt.Errorf("%w: render %s: %v", ErrEnhancementFailed, spec.Role, err)
		}

		if _, err := p.writer.Write(dest, content); err != nil {
			return fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
		}

		p.reporter.FileWritten(spec.RelPath)
		result.WrittenFiles = append(result.WrittenFiles, spec.RelPath)
	}

	return nil
}
