/*
Package config defines the shell's rc-file settings.
*/
package config

/*
Alias maps a short name to the command line it expands to, as declared in
the rc file. This is a core domain entity.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

// Config holds the settings read from the rc file.
type Config struct {
	Prompt  string  `yaml:"prompt"`
	Aliases []Alias `yaml:"aliases"`
}

// DefaultPrompt is used when the rc file does not set one.
const DefaultPrompt = "$ "

// Default returns the configuration used when no rc file exists.
func Default() Config {
	return Config{Prompt: DefaultPrompt}
}

// AliasMap returns the alias definitions keyed by name. Later entries win
// when the rc file declares the same name twice.
func (c Config) AliasMap() map[string]string {
	aliases := make(map[string]string, len(c.Aliases))
	for _, a := range c.Aliases {
		aliases[a.Name] = a.Command
	}
	return aliases
}
