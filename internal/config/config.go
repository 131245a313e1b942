// Package config loads the two-tier promptspec configuration: a global file
// under ~/.promptspec and an optional per-project .promptspec.yaml found by
// walking up from the working directory. Project values override global
// values, which override defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalDirName is the per-user config directory under $HOME.
	GlobalDirName = ".promptspec"
	// GlobalConfigName is the config file inside the global directory.
	GlobalConfigName = "config.yaml"
	// ProjectConfigName is the per-project config file.
	ProjectConfigName = ".promptspec.yaml"
	// CacheFileName is the catalog cache database inside the global directory.
	CacheFileName = "catalog.db"
)

// Config is the resolved runtime configuration.
type Config struct {
	SpecsDirs         []string        `yaml:"specs_dirs"`
	DefaultModel      string          `yaml:"default_model"`
	InternalVariables []string        `yaml:"internal_variables"`
	Hub               HubConfig       `yaml:"hub"`
	Inspector         InspectorConfig `yaml:"inspector"`

	// Provenance of the resolved config, for diagnostics.
	GlobalPath  string `yaml:"-"`
	ProjectPath string `yaml:"-"`
}

// HubConfig points at the shared spec repository.
type HubConfig struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Path  string `yaml:"path"`
	Token string `yaml:"token"`
}

// InspectorConfig defines the HTTP inspector settings.
type InspectorConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// fileConfig mirrors Config with optional fields so absent keys don't
// clobber lower-tier values during merging.
type fileConfig struct {
	SpecsDirs         []string `yaml:"specs_dirs"`
	DefaultModel      *string  `yaml:"default_model"`
	InternalVariables []string `yaml:"internal_variables"`
	Hub               struct {
		Owner *string `yaml:"owner"`
		Repo  *string `yaml:"repo"`
		Path  *string `yaml:"path"`
		Token *string `yaml:"token"`
	} `yaml:"hub"`
	Inspector struct {
		Enabled *bool `yaml:"enabled"`
		Port    *int  `yaml:"port"`
	} `yaml:"inspector"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultModel: "gpt-4.1",
		Inspector: InspectorConfig{
			Port: 8787,
		},
	}
}

// GlobalDir returns the per-user config directory path.
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, GlobalDirName), nil
}

// Load resolves the configuration for a working directory: defaults, then
// the global config, then the nearest project config walking up from
// startDir. Missing files are not errors.
func Load(startDir string) (Config, error) {
	cfg := DefaultConfig()

	if dir, err := GlobalDir(); err == nil {
		globalPath := filepath.Join(dir, GlobalConfigName)
		applied, err := applyFile(&cfg, globalPath)
		if err != nil {
			return cfg, err
		}
		if applied {
			cfg.GlobalPath = globalPath
		}
	}

	if projectPath := FindProjectConfig(startDir); projectPath != "" {
		applied, err := applyFile(&cfg, projectPath)
		if err != nil {
			return cfg, err
		}
		if applied {
			cfg.ProjectPath = projectPath
		}
	}

	return cfg, nil
}

// FindProjectConfig walks up from startDir looking for a project config
// file, returning "" when none exists.
func FindProjectConfig(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// applyFile merges one config file into cfg. Relative specs_dirs entries
// are resolved against the file's own directory so a project config can
// name "./specs" regardless of where the command runs.
func applyFile(cfg *Config, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	interpolated := interpolateEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(interpolated), &fc); err != nil {
		return false, fmt.Errorf("parse config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for _, dir := range fc.SpecsDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		cfg.SpecsDirs = appendDir(cfg.SpecsDirs, dir)
	}
	if fc.DefaultModel != nil {
		cfg.DefaultModel = *fc.DefaultModel
	}
	cfg.InternalVariables = append(cfg.InternalVariables, fc.InternalVariables...)
	if fc.Hub.Owner != nil {
		cfg.Hub.Owner = *fc.Hub.Owner
	}
	if fc.Hub.Repo != nil {
		cfg.Hub.Repo = *fc.Hub.Repo
	}
	if fc.Hub.Path != nil {
		cfg.Hub.Path = *fc.Hub.Path
	}
	if fc.Hub.Token != nil {
		cfg.Hub.Token = *fc.Hub.Token
	}
	if fc.Inspector.Enabled != nil {
		cfg.Inspector.Enabled = *fc.Inspector.Enabled
	}
	if fc.Inspector.Port != nil {
		cfg.Inspector.Port = *fc.Inspector.Port
	}
	return true, nil
}

// EffectiveSpecsDirs returns the directories to scan for specs: a "specs"
// directory under the working directory when present, then the configured
// directories.
func (c Config) EffectiveSpecsDirs(workDir string) []string {
	var dirs []string
	local := filepath.Join(workDir, "specs")
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		dirs = appendDir(dirs, local)
	}
	for _, dir := range c.SpecsDirs {
		dirs = appendDir(dirs, dir)
	}
	return dirs
}

// CachePath returns the catalog cache location under the global directory,
// creating the directory if needed.
func CachePath() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return filepath.Join(dir, CacheFileName), nil
}

func appendDir(dirs []string, dir string) []string {
	for _, existing := range dirs {
		if existing == dir {
			return dirs
		}
	}
	return append(dirs, dir)
}

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// interpolateEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func interpolateEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match // Leave unresolved if not set.
	})
}
