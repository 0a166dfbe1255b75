package shellconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/gosh/internal/core/domain/config"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), rcFilename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write rc file: %v", err)
	}
	return path
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(""); err == nil {
		t.Error("NewProvider(\"\") returned no error")
	}
	if _, err := NewProvider("/some/path"); err != nil {
		t.Errorf("NewProvider() returned error: %v", err)
	}
}

func TestProvider_Load(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantPrompt  string
		wantAliases map[string]string
		wantErr     bool
	}{
		{
			name: "full rc file",
			content: `prompt: "gosh> "
aliases:
  - alias: ll
    command: ls -la
  - alias: gs
    command: git status
`,
			wantPrompt:  "gosh> ",
			wantAliases: map[string]string{"ll": "ls -la", "gs": "git status"},
		},
		{
			name:        "missing prompt falls back to the default",
			content:     "aliases:\n  - alias: ll\n    command: ls -la\n",
			wantPrompt:  config.DefaultPrompt,
			wantAliases: map[string]string{"ll": "ls -la"},
		},
		{
			name:        "empty file yields the defaults",
			content:     "",
			wantPrompt:  config.DefaultPrompt,
			wantAliases: map[string]string{},
		},
		{
			name:        "comment-only file yields the defaults",
			content:     "# nothing configured yet\n",
			wantPrompt:  config.DefaultPrompt,
			wantAliases: map[string]string{},
		},
		{
			name:    "unknown field is rejected",
			content: "promt: oops\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml is rejected",
			content: "prompt: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRC(t, tt.content)
			provider, err := NewProvider(path)
			if err != nil {
				t.Fatalf("NewProvider() returned error: %v", err)
			}

			cfg, err := provider.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if cfg.Prompt != tt.wantPrompt {
				t.Errorf("Load() prompt = %q, want %q", cfg.Prompt, tt.wantPrompt)
			}
			got := cfg.AliasMap()
			if len(got) != len(tt.wantAliases) {
				t.Fatalf("Load() aliases = %v, want %v", got, tt.wantAliases)
			}
			for name, cmd := range tt.wantAliases {
				if got[name] != cmd {
					t.Errorf("alias %q = %q, want %q", name, got[name], cmd)
				}
			}
		})
	}
}

func TestProvider_Load_MissingFile(t *testing.T) {
	provider, err := NewProvider(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("NewProvider() returned error: %v", err)
	}

	cfg, err := provider.Load()
	if err != nil {
		t.Fatalf("Load() with a missing file returned error: %v", err)
	}
	if cfg.Prompt != config.DefaultPrompt {
		t.Errorf("Load() prompt = %q, want default %q", cfg.Prompt, config.DefaultPrompt)
	}
	if len(cfg.Aliases) != 0 {
		t.Errorf("Load() aliases = %v, want none", cfg.Aliases)
	}
}

func TestNewDefaultProvider_EnvOverride(t *testing.T) {
	path := writeRC(t, "prompt: \"% \"\n")
	t.Setenv(configPathEnvVar, path)

	provider, err := NewDefaultProvider()
	if err != nil {
		t.Fatalf("NewDefaultProvider() returned error: %v", err)
	}
	cfg, err := provider.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Prompt != "% " {
		t.Errorf("Load() prompt = %q, want %q", cfg.Prompt, "% ")
	}
}
