package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/primekit/primer/internal/cli/wizard"
	"github.com/primekit/primer/internal/config"
	"github.com/primekit/primer/internal/generator"
	"github.com/primekit/primer/internal/scaffold"
	"github.com/primekit/primer/internal/template"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new project",
	Long: `Scaffold a new project: generate the base skeleton with the external
template generator, then overlay editor, build, IDE, and AI-context files.

The generator command and template id default to "dotnet" and "console"
and can be overridden by flags or a .primer.yaml in the working directory.

Examples:
  primer new --name TaskManager --description "Team task tracker"
  primer new --name TaskManager --description "demo" --output /tmp
  primer new --name api --description "REST backend" --template webapi`,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("name", "", "Project name (required)")
	newCmd.Flags().String("description", "", "Project description (required)")
	newCmd.Flags().StringP("output", "o", "", "Output directory (default: current directory)")
	newCmd.Flags().String("generator", "", "Generator command (default: .primer.yaml or \"dotnet\")")
	newCmd.Flags().String("template", "", "Generator template id (default: .primer.yaml or \"console\")")
	newCmd.Flags().Bool("non-interactive", false, "Skip interactive prompts; missing values fail")
	newCmd.Flags().BoolP("verbose", "v", false, "Log pipeline details to stderr")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// runNew executes the scaffolding workflow: resolve configuration, run the
// external generator, enhance the generated skeleton.
func runNew(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if getBoolFlag(cmd, "verbose") {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	}

	// Generator defaults: built-ins, then .primer.yaml, then flags.
	gen := config.LoadDefaults(cwd, logger)
	if v := getStringFlag(cmd, "generator"); v != "" {
		gen.Command = v
	}
	if v := getStringFlag(cmd, "template"); v != "" {
		gen.Template = v
	}

	name := getStringFlag(cmd, "name")
	description := getStringFlag(cmd, "description")

	// Prompt for missing required values when running on a terminal.
	if !getBoolFlag(cmd, "non-interactive") &&
		(name == "" || description == "") &&
		isatty.IsTerminal(os.Stdin.Fd()) {
		result, err := wizard.Run(name, description)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Scaffolding cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		name = result.Name
		description = result.Description
	}

	cfg, err := config.Resolve(config.ResolveInput{
		Name:        name,
		Description: description,
		Output:      getStringFlag(cmd, "output"),
		WorkingDir:  cwd,
		Generator:   gen,
	})
	if err != nil {
		return err
	}

	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	pipeline := scaffold.NewPipeline(
		generator.NewCommandRunner(cwd),
		template.NewRenderer(fsys),
		logger,
	)
	pipeline.SetReporter(scaffold.NewConsoleReporter(out))

	result, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("scaffolding failed: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Project", result.ProjectDir},
			{"Files", fmt.Sprintf("%d written, %d skipped", len(result.WrittenFiles), len(result.SkippedFiles))},
		}),
		nextStepsText(result.ProjectDir, cfg.Generator.Command),
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project scaffolded", details...))

	return nil
}

// nextStepsText returns the fixed post-scaffold checklist.
func nextStepsText(projectDir, generatorCmd string) string {
	return fmt.Sprintf(`Next steps:
  cd %s
  %s build
  review .editorconfig and Directory.Build.props`, projectDir, generatorCmd)
}
