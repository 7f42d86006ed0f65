package template

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	specs := Catalog()

	t.Run("has_seven_specs_in_fixed_order", func(t *testing.T) {
		wantRoles := []string{
			"editor-config",
			"build-props",
			"vscode-settings",
			"vscode-launch",
			"vscode-tasks",
			"ai-context",
			"architecture-doc",
		}
		if len(specs) != len(wantRoles) {
			t.Fatalf("len(Catalog()) = %d, want %d", len(specs), len(wantRoles))
		}
		for i, role := range wantRoles {
			if specs[i].Role != role {
				t.Errorf("Catalog()[%d].Role = %q, want %q", i, specs[i].Role, role)
			}
		}
	})

	t.Run("root_files_are_create_if_absent", func(t *testing.T) {
		for _, spec := range specs {
			atRoot := !strings.Contains(spec.RelPath, string(filepath.Separator))
			if atRoot && spec.Policy != PolicyCreateIfAbsent {
				t.Errorf("root file %q policy = %q, want create-if-absent", spec.RelPath, spec.Policy)
			}
			if !atRoot && spec.Policy != PolicyOverwrite {
				t.Errorf("nested file %q policy = %q, want overwrite", spec.RelPath, spec.Policy)
			}
		}
	})

	t.Run("destinations_are_relative_and_unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, spec := range specs {
			if filepath.IsAbs(spec.RelPath) {
				t.Errorf("spec %q has absolute RelPath %q", spec.Role, spec.RelPath)
			}
			if seen[spec.RelPath] {
				t.Errorf("duplicate destination %q", spec.RelPath)
			}
			seen[spec.RelPath] = true
		}
	})
}

// Hostile name/description values must still yield valid JSON for the
// .vscode destinations.
func TestJSONTemplatesStayValid(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error: %v", err)
	}
	r := NewRenderer(fsys)

	ctx := &RenderContext{
		ProjectName:      `Quote"Heavy \ Project`,
		Description:      `it "does" things \ fast`,
		Namespace:        `QuoteHeavyProject`,
		DisplayTitle:     `Quote"Heavy \ Project`,
		ProjectDir:       "/tmp/q",
		GeneratorCommand: "dotnet",
		TemplateID:       "console",
		Version:          "v0.0.0-test",
	}

	for _, spec := range Catalog() {
		if !strings.HasSuffix(spec.RelPath, ".json") {
			continue
		}
		t.Run(spec.Role, func(t *testing.T) {
			out, err := r.Render(spec.Template, ctx)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", spec.Template, err)
			}
			if !json.Valid(out) {
				t.Errorf("rendered %q is not valid JSON:\n%s", spec.RelPath, out)
			}
		})
	}
}
