package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GeneratorConfig identifies the external template generator to delegate
// base-skeleton creation to.
type GeneratorConfig struct {
	// Command is the generator executable name (resolved via PATH).
	Command string `yaml:"command"`

	// Template is the generator's template identifier passed to "new".
	Template string `yaml:"template"`
}

// ProjectConfig is the resolved, immutable scaffolding configuration.
// Construct it with Resolve; never mutate it afterwards.
type ProjectConfig struct {
	Name        string          // Project display name, non-empty.
	Description string          // Free-text description, non-empty.
	OutputRoot  string          // Absolute path the project directory is created under.
	Generator   GeneratorConfig // External generator invocation settings.
}

// ProjectDir returns the project root directory: <OutputRoot>/<Name>.
func (c *ProjectConfig) ProjectDir() string {
	return filepath.Join(c.OutputRoot, c.Name)
}

// Namespace returns an identifier-safe token derived from the project name
// by stripping spaces and hyphens. "Task Manager" and "task-manager" both
// keep their letter casing: "TaskManager", "taskmanager".
func (c *ProjectConfig) Namespace() string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, c.Name)
}

// titleCaser title-cases word boundaries without lowering existing capitals,
// so "TaskManager" is not mangled into "Taskmanager".
var titleCaser = cases.Title(language.English, cases.NoLower)

// DisplayTitle returns a human-readable title for document headers.
// Hyphens become spaces and each word is title-cased.
func (c *ProjectConfig) DisplayTitle() string {
	return titleCaser.String(strings.ReplaceAll(c.Name, "-", " "))
}

// ResolveInput carries the raw values Resolve works from. Ambient process
// state (the working directory) is threaded in explicitly so callers and
// tests control it.
type ResolveInput struct {
	Name        string
	Description string
	Output      string          // Optional; relative paths resolve against WorkingDir.
	WorkingDir  string          // Required; the caller's current directory.
	Generator   GeneratorConfig // Defaults from flags and .primer.yaml.
}

// Resolve validates the input and produces an immutable ProjectConfig.
// Name and description must be non-empty after trimming; the output root
// is normalized to an absolute path, defaulting to the working directory.
// Resolution has no side effects and is deterministic for equal inputs.
func Resolve(in ResolveInput) (*ProjectConfig, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, ErrDescriptionRequired
	}

	out := in.Output
	if out == "" {
		out = in.WorkingDir
	} else if !filepath.IsAbs(out) {
		out = filepath.Join(in.WorkingDir, out)
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidOutput, in.Output, err)
	}

	gen := in.Generator
	if gen.Command == "" {
		gen.Command = DefaultGenerator().Command
	}
	if gen.Template == "" {
		gen.Template = DefaultGenerator().Template
	}

	return &ProjectConfig{
		Name:        name,
		Description: desc,
		OutputRoot:  filepath.Clean(abs),
		Generator:   gen,
	}, nil
}
