package shellconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/AntonioJCosta/gosh/internal/core/domain/config"
	"github.com/AntonioJCosta/gosh/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const rcFilename = ".gosh.yaml"

// configPathEnvVar overrides the rc-file location when set.
const configPathEnvVar = "GOSH_CONFIG"

// Provider reads the shell's settings from a YAML rc file. It implements
// the ports.ConfigProvider interface.
type Provider struct {
	filePath string
}

// NewProvider creates a Provider for an explicit rc-file path.
func NewProvider(filePath string) (ports.ConfigProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("rc file path cannot be empty")
	}
	return &Provider{filePath: filePath}, nil
}

// NewDefaultProvider locates the rc file from the GOSH_CONFIG environment
// variable, falling back to ~/.gosh.yaml.
func NewDefaultProvider() (ports.ConfigProvider, error) {
	if fromEnv := os.Getenv(configPathEnvVar); fromEnv != "" {
		return NewProvider(fromEnv)
	}

	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return NewProvider(filepath.Join(usr.HomeDir, rcFilename))
}

/*
Load reads and parses the rc file. A missing or empty file is not an
error; the defaults apply. Unknown fields in the file are rejected so a
typo in a setting name does not silently vanish.
*/
func (p *Provider) Load() (config.Config, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return config.Default(), fmt.Errorf("failed to read rc file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return config.Default(), nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var parsed config.Config
	if err := decoder.Decode(&parsed); err != nil {
		// A file holding only comments or "---" decodes to EOF; that is
		// the same as an empty file.
		if errors.Is(err, io.EOF) {
			return config.Default(), nil
		}
		return config.Default(), fmt.Errorf("failed to parse rc file %s: %w", p.filePath, err)
	}

	if parsed.Prompt == "" {
		parsed.Prompt = config.DefaultPrompt
	}
	return parsed, nil
}
