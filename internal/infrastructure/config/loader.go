package config

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up by Resolve.
const DefaultFile = "codewave.yaml"

//go:embed defaults/game.yaml
var defaultYAML []byte

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads name from the loader's filesystem on top of the embedded
// defaults. Keys missing from the file keep their default values; a levels
// list in the file replaces the default catalog.
func (l *Loader) Load(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	// Decoding merges into the defaults, except for the level list.
	levels := cfg.Levels
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = levels
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// LoadDefault loads codewave.yaml from the loader's filesystem.
func (l *Loader) LoadDefault() (*GameConfig, error) {
	return l.Load(DefaultFile)
}

// Default returns a fresh copy of the embedded default configuration.
func Default() (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return &cfg, nil
}

// Resolve finds the configuration to use. An explicit path wins; otherwise
// ~/.codewave/codewave.yaml and ./configs/codewave.yaml are tried in order,
// and the embedded defaults are used when neither exists.
func Resolve(path string) (*GameConfig, error) {
	if path != "" {
		return NewLoader(filepath.Dir(ExpandHome(path))).Load(filepath.Base(path))
	}

	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".codewave"))
	}
	candidates = append(candidates, "configs")

	for _, dir := range candidates {
		if _, err := os.Stat(filepath.Join(dir, DefaultFile)); err == nil {
			return NewLoader(dir).Load(DefaultFile)
		}
	}

	return Default()
}

// ExpandHome resolves a leading ~/ against the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
