package template

import (
	"path/filepath"

	"github.com/primekit/primer/internal/defs"
)

// Policy decides what happens when a destination file already exists.
type Policy string

const (
	// PolicyCreateIfAbsent writes the file only when it does not exist,
	// preserving developer customizations across re-runs.
	PolicyCreateIfAbsent Policy = "create-if-absent"

	// PolicyOverwrite re-renders and replaces the file on every run.
	PolicyOverwrite Policy = "overwrite"
)

// Spec describes one supplementary file: its logical role, the embedded
// template that produces it, where it lands relative to the project root,
// and how re-runs treat an existing copy.
type Spec struct {
	Role     string // Logical role, e.g. "editor-config".
	Template string // Template file name inside the embedded FS.
	RelPath  string // Destination path relative to the project directory.
	Policy   Policy
}

// catalog lists every supplementary file in deployment order. The two
// root-level configuration files are create-if-absent; generated docs and
// IDE settings are always refreshed.
var catalog = []Spec{
	{
		Role:     "editor-config",
		Template: "editorconfig.tmpl",
		RelPath:  defs.EditorConfig,
		Policy:   PolicyCreateIfAbsent,
	},
	{
		Role:     "build-props",
		Template: "directory-build-props.xml.tmpl",
		RelPath:  defs.BuildProps,
		Policy:   PolicyCreateIfAbsent,
	},
	{
		Role:     "vscode-settings",
		Template: "vscode-settings.json.tmpl",
		RelPath:  filepath.Join(defs.VSCodeDir, defs.SettingsJSON),
		Policy:   PolicyOverwrite,
	},
	{
		Role:     "vscode-launch",
		Template: "vscode-launch.json.tmpl",
		RelPath:  filepath.Join(defs.VSCodeDir, defs.LaunchJSON),
		Policy:   PolicyOverwrite,
	},
	{
		Role:     "vscode-tasks",
		Template: "vscode-tasks.json.tmpl",
		RelPath:  filepath.Join(defs.VSCodeDir, defs.TasksJSON),
		Policy:   PolicyOverwrite,
	},
	{
		Role:     "ai-context",
		Template: "copilot-instructions.md.tmpl",
		RelPath:  filepath.Join(defs.GithubDir, defs.CopilotInstructions),
		Policy:   PolicyOverwrite,
	},
	{
		Role:     "architecture-doc",
		Template: "architecture.md.tmpl",
		RelPath:  filepath.Join(defs.DocsDir, defs.ArchitectureDoc),
		Policy:   PolicyOverwrite,
	},
}

// Catalog returns the supplementary file specs in fixed deployment order.
// Callers must not mutate the returned slice.
func Catalog() []Spec {
	return catalog
}
