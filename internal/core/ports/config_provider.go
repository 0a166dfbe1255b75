package ports

import "github.com/AntonioJCosta/gosh/internal/core/domain/config"

/*
ConfigProvider loads the shell's rc-file settings. This is a driven port,
typically implemented by a repository adapter that understands a specific
rc-file format. A missing rc file is not an error; providers return the
defaults in that case.
*/
type ConfigProvider interface {
	Load() (config.Config, error)
}
