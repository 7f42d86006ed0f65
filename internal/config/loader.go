package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/primekit/primer/internal/defs"
)

// maxRCSize is the maximum allowed size for a .primer.yaml file.
const maxRCSize = 1 * 1024 * 1024 // 1MB

// DefaultGenerator returns the built-in generator settings used when neither
// flags nor .primer.yaml override them.
func DefaultGenerator() GeneratorConfig {
	return GeneratorConfig{
		Command:  "dotnet",
		Template: "console",
	}
}

// rcFile mirrors the .primer.yaml layout.
type rcFile struct {
	Generator GeneratorConfig `yaml:"generator"`
}

// LoadDefaults reads generator defaults from <dir>/.primer.yaml.
// A missing file yields the built-in defaults. An unreadable or invalid file
// is reported as a warning and the defaults are used; a broken rc file must
// not make the scaffolder unusable.
func LoadDefaults(dir string, logger *slog.Logger) GeneratorConfig {
	if logger == nil {
		logger = slog.Default()
	}
	gen := DefaultGenerator()

	path := filepath.Join(dir, defs.PrimerRC)
	data, err := readRC(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("failed to read rc file, using defaults", "path", path, "error", err)
		}
		return gen
	}

	var rc rcFile
	if err := yaml.Unmarshal(data, &rc); err != nil {
		logger.Warn("invalid rc file, using defaults", "path", path, "error", err)
		return gen
	}

	if rc.Generator.Command != "" {
		gen.Command = rc.Generator.Command
	}
	if rc.Generator.Template != "" {
		gen.Template = rc.Generator.Template
	}
	return gen
}

// readRC reads the rc file with a size guard.
func readRC(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxRCSize {
		return nil, fmt.Errorf("rc file too large: %d bytes", info.Size())
	}
	return os.ReadFile(path)
}
