package cli

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/gosh/internal/core/ports"
	"github.com/AntonioJCosta/gosh/internal/handlers/ui"
	"github.com/spf13/cobra"
)

func NewRootCommand(version string, interp ports.Interpreter, status *int) *cobra.Command {
	var oneShot string

	rootCmd := &cobra.Command{
		Use:   "gosh",
		Short: "gosh is a small interactive command interpreter.",
		Long: `gosh reads command lines, resolves them against its builtins and your
search path, and runs them one at a time. Start it with no arguments for
the interactive prompt, or pass -c to run a single command line.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if interp == nil {
				return fmt.Errorf("interpreter not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRootCmd(interp, oneShot, cmd.Flags().Changed("command"), status)
		},
	}

	rootCmd.Flags().StringVarP(&oneShot, "command", "c", "", "Run a single command line and exit with its status.")

	return rootCmd
}

// runRootCmd contains the core logic for the root command: the
// interactive loop, or a single line when -c was given.
func runRootCmd(interp ports.Interpreter, oneShot string, oneShotGiven bool, status *int) error {
	// An explicit -c "" is still a one-shot run, not the interactive loop.
	if oneShotGiven {
		outcome := interp.RunLine(oneShot)
		*status = outcome.Status
		return nil
	}

	st, err := interp.Run()
	*status = st
	if err != nil {
		return fmt.Errorf("shell terminated: %w", err)
	}
	return nil
}

/*
Execute runs the root command and returns the status the process should
exit with: the exit builtin's argument, the one-shot command's status, or
0 on graceful end of input.
*/
func Execute(version string, interp ports.Interpreter) int {
	var status int
	rootCmd := NewRootCommand(version, interp, &status)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(err.Error()))
		if status == 0 {
			status = 1
		}
	}
	return status
}
