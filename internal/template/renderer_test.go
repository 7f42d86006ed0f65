package template

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"
)

func TestRender(t *testing.T) {
	t.Run("substitutes_fields", func(t *testing.T) {
		fsys := fstest.MapFS{
			"greeting.tmpl": &fstest.MapFile{Data: []byte("hello {{ .ProjectName }}")},
		}
		r := NewRenderer(fsys)

		out, err := r.Render("greeting.tmpl", &RenderContext{ProjectName: "TaskManager"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(out) != "hello TaskManager" {
			t.Errorf("Render output = %q", out)
		}
	})

	t.Run("unknown_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nope.tmpl", &RenderContext{})
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("Render error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("missing_key_is_error", func(t *testing.T) {
		fsys := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("{{ .NotAField }}")},
		}
		r := NewRenderer(fsys)

		_, err := r.Render("bad.tmpl", &RenderContext{})
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("Render error = %v, want ErrMissingTemplateKey", err)
		}
	})

	t.Run("leftover_token_is_error", func(t *testing.T) {
		fsys := fstest.MapFS{
			"leftover.tmpl": &fstest.MapFile{Data: []byte("path=${UNRESOLVED_DIR}")},
		}
		r := NewRenderer(fsys)

		_, err := r.Render("leftover.tmpl", &RenderContext{})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("Render error = %v, want ErrUnexpandedToken", err)
		}
	})

	t.Run("vscode_variables_pass_through", func(t *testing.T) {
		fsys := fstest.MapFS{
			"launch.tmpl": &fstest.MapFile{Data: []byte(`"cwd": "${workspaceFolder}"`)},
		}
		r := NewRenderer(fsys)

		out, err := r.Render("launch.tmpl", &RenderContext{})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(out) != `"cwd": "${workspaceFolder}"` {
			t.Errorf("Render output = %q", out)
		}
	})

	t.Run("jsonEscape_handles_quotes", func(t *testing.T) {
		fsys := fstest.MapFS{
			"esc.tmpl": &fstest.MapFile{Data: []byte(`{"title": "{{ jsonEscape .Description }}"}`)},
		}
		r := NewRenderer(fsys)

		out, err := r.Render("esc.tmpl", &RenderContext{Description: `say "hi" \ bye`})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		want := `{"title": "say \"hi\" \\ bye"}`
		if string(out) != want {
			t.Errorf("Render output = %q, want %q", out, want)
		}
	})

	t.Run("render_is_pure", func(t *testing.T) {
		fsys := fstest.MapFS{
			"doc.tmpl": &fstest.MapFile{Data: []byte("# {{ .DisplayTitle }}\n{{ .Description }}\n")},
		}
		r := NewRenderer(fsys)
		ctx := &RenderContext{DisplayTitle: "Task Manager", Description: "demo"}

		a, err := r.Render("doc.tmpl", ctx)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		b, err := r.Render("doc.tmpl", ctx)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Error("two renders of equal context differ")
		}
	})
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error: %v", err)
	}

	r := NewRenderer(fsys)
	ctx := &RenderContext{
		ProjectName:      "TaskManager",
		Description:      "demo",
		Namespace:        "TaskManager",
		DisplayTitle:     "TaskManager",
		ProjectDir:       "/tmp/TaskManager",
		GeneratorCommand: "dotnet",
		TemplateID:       "console",
		Version:          "v0.0.0-test",
	}

	for _, spec := range Catalog() {
		t.Run(spec.Role, func(t *testing.T) {
			out, err := r.Render(spec.Template, ctx)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", spec.Template, err)
			}
			if len(out) == 0 {
				t.Errorf("Render(%q) produced empty output", spec.Template)
			}
		})
	}
}
