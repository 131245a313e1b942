package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultModel != "gpt-4.1" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if cfg.Inspector.Port != 8787 {
		t.Errorf("Inspector.Port = %d", cfg.Inspector.Port)
	}
	if cfg.Inspector.Enabled {
		t.Error("Inspector.Enabled should be false by default")
	}
}

func TestLoadGlobalAndProject(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, GlobalDirName, GlobalConfigName), `
default_model: gpt-4o
specs_dirs:
  - shared
hub:
  owner: acme
  repo: prompt-library
`)

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ProjectConfigName), `
default_model: o3-mini
specs_dirs:
  - ./specs
`)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Project overrides global; global fills in the rest.
	if cfg.DefaultModel != "o3-mini" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if cfg.Hub.Owner != "acme" || cfg.Hub.Repo != "prompt-library" {
		t.Errorf("Hub = %+v", cfg.Hub)
	}

	// Relative dirs resolve against the declaring file's directory.
	wantGlobal := filepath.Join(home, GlobalDirName, "shared")
	wantProject := filepath.Join(project, "specs")
	if len(cfg.SpecsDirs) != 2 || cfg.SpecsDirs[0] != wantGlobal || cfg.SpecsDirs[1] != wantProject {
		t.Errorf("SpecsDirs = %v, want [%s %s]", cfg.SpecsDirs, wantGlobal, wantProject)
	}

	if cfg.GlobalPath == "" || cfg.ProjectPath == "" {
		t.Errorf("provenance not recorded: global=%q project=%q", cfg.GlobalPath, cfg.ProjectPath)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultModel != "gpt-4.1" {
		t.Errorf("DefaultModel = %q, want default", cfg.DefaultModel)
	}
	if cfg.GlobalPath != "" || cfg.ProjectPath != "" {
		t.Errorf("provenance should be empty: %q %q", cfg.GlobalPath, cfg.ProjectPath)
	}
}

func TestFindProjectConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, ProjectConfigName)
	writeFile(t, want, "default_model: gpt-4o\n")

	if got := FindProjectConfig(nested); got != want {
		t.Errorf("FindProjectConfig = %q, want %q", got, want)
	}
}

func TestFindProjectConfigNone(t *testing.T) {
	if got := FindProjectConfig(t.TempDir()); got != "" {
		t.Errorf("FindProjectConfig = %q, want empty", got)
	}
}

func TestLoadTokenInterpolation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TEST_HUB_TOKEN", "ghp_test123")

	writeFile(t, filepath.Join(home, GlobalDirName, GlobalConfigName), `
hub:
  token: "${TEST_HUB_TOKEN}"
`)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Hub.Token != "ghp_test123" {
		t.Errorf("Hub.Token = %q", cfg.Hub.Token)
	}
}

func TestLoadInternalVariablesAccumulate(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, GlobalDirName, GlobalConfigName), `
internal_variables:
  - scratch
`)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ProjectConfigName), `
internal_variables:
  - draft
`)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.InternalVariables) != 2 {
		t.Errorf("InternalVariables = %v", cfg.InternalVariables)
	}
}

func TestEffectiveSpecsDirs(t *testing.T) {
	work := t.TempDir()
	local := filepath.Join(work, "specs")
	if err := os.MkdirAll(local, 0755); err != nil {
		t.Fatal(err)
	}

	cfg := Config{SpecsDirs: []string{"/shared/specs", local}}
	dirs := cfg.EffectiveSpecsDirs(work)

	if len(dirs) != 2 {
		t.Fatalf("dirs = %v", dirs)
	}
	if dirs[0] != local {
		t.Errorf("dirs[0] = %q, want local specs dir first", dirs[0])
	}
	if dirs[1] != "/shared/specs" {
		t.Errorf("dirs[1] = %q", dirs[1])
	}
}

func TestEffectiveSpecsDirsNoLocal(t *testing.T) {
	cfg := Config{SpecsDirs: []string{"/shared/specs"}}
	dirs := cfg.EffectiveSpecsDirs(t.TempDir())
	if len(dirs) != 1 || dirs[0] != "/shared/specs" {
		t.Errorf("dirs = %v", dirs)
	}
}

func TestInterpolateEnvVars(t *testing.T) {
	t.Setenv("FOO", "bar")
	t.Setenv("NUM_123", "456")

	tests := []struct {
		input string
		want  string
	}{
		{"${FOO}", "bar"},
		{"prefix-${FOO}-suffix", "prefix-bar-suffix"},
		{"${UNSET_VAR}", "${UNSET_VAR}"}, // unresolved stays
		{"${FOO} and ${NUM_123}", "bar and 456"},
		{"no vars here", "no vars here"},
	}

	for _, tt := range tests {
		got := interpolateEnvVars(tt.input)
		if got != tt.want {
			t.Errorf("interpolateEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
