package defs

import "io/fs"

// File names written during the enhancement phase.
const (
	// EditorConfig is the shared editor configuration file at the project root.
	EditorConfig = ".editorconfig"

	// BuildProps is the MSBuild shared build-properties file at the project root.
	BuildProps = "Directory.Build.props"

	// SettingsJSON is the VS Code workspace settings file.
	SettingsJSON = "settings.json"

	// LaunchJSON is the VS Code debug launch configuration file.
	LaunchJSON = "launch.json"

	// TasksJSON is the VS Code task definitions file.
	TasksJSON = "tasks.json"

	// CopilotInstructions is the AI-assistant context document under .github/.
	CopilotInstructions = "copilot-instructions.md"

	// ArchitectureDoc is the architecture overview document under docs/.
	ArchitectureDoc = "ARCHITECTURE.md"
)

// Directory names under the project root.
const (
	VSCodeDir = ".vscode"
	GithubDir = ".github"
	DocsDir   = "docs"
)

// PrimerRC is the optional defaults file read from the working directory.
const PrimerRC = ".primer.yaml"

// Filesystem permissions for created directories and files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
