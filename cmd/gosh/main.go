package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/gosh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/gosh/internal/adapters/pathlookup"
	"github.com/AntonioJCosta/gosh/internal/adapters/tokenization"
	"github.com/AntonioJCosta/gosh/internal/core/domain/config"
	"github.com/AntonioJCosta/gosh/internal/core/services/interpreter"
	"github.com/AntonioJCosta/gosh/internal/handlers/cli"
	"github.com/AntonioJCosta/gosh/internal/handlers/ui"
	"github.com/AntonioJCosta/gosh/internal/repositories/history"
	"github.com/AntonioJCosta/gosh/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	cfg := config.Default()
	configProvider, err := shellconfig.NewDefaultProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not locate the rc file: %v. Continuing with defaults.\n", err)
	} else if loaded, err := configProvider.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load the rc file: %v. Continuing with defaults.\n", err)
	} else {
		cfg = loaded
	}

	shell, err := interpreter.New(os.Stdin, os.Stdout, os.Stderr, cfg, interpreter.Deps{
		Tokenizer:      tokenization.NewTokenizer(),
		Finder:         pathlookup.NewFinderFromEnv(),
		Runner:         oscommand.NewRunner(),
		History:        history.NewRecorder(),
		DecoratePrompt: func(prompt string) string { return ui.PromptColor(prompt) },
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing shell: %v\n", err)
		os.Exit(1)
	}

	os.Exit(cli.Execute(Version, shell))
}
