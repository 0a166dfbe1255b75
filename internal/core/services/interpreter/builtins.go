package interpreter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/gosh/internal/core/domain/command"
	"github.com/olekukonko/tablewriter"
)

func (s *Shell) registerBuiltins() {
	s.builtins = map[string]Builtin{
		"cd":      s.builtinCd,
		"pwd":     s.builtinPwd,
		"echo":    s.builtinEcho,
		"exit":    s.builtinExit,
		"type":    s.builtinType,
		"history": s.builtinHistory,
	}
}

func (s *Shell) builtinEcho(args []string) command.Outcome {
	fmt.Fprintln(s.out, strings.Join(args, " "))
	return command.Outcome{}
}

func (s *Shell) builtinPwd(_ []string) command.Outcome {
	fmt.Fprintln(s.out, s.state.WorkingDir)
	return command.Outcome{}
}

// builtinCd changes the shell state's working directory. The state is
// left untouched when the target does not exist or is not a directory.
func (s *Shell) builtinCd(args []string) command.Outcome {
	if len(args) > 1 {
		return command.Outcome{
			Status: command.StatusFailure,
			Err:    errors.New("cd: too many arguments"),
		}
	}

	typed := ""
	if len(args) > 0 {
		typed = args[0]
	}

	target, err := s.cdTarget(typed)
	if err != nil {
		return command.Outcome{Status: command.StatusFailure, Err: err}
	}

	info, err := os.Stat(target)
	switch {
	case os.IsPermission(err):
		return command.Outcome{
			Status: command.StatusFailure,
			Err:    fmt.Errorf("cd: %s: Permission denied", typed),
		}
	case err != nil || !info.IsDir():
		return command.Outcome{
			Status: command.StatusFailure,
			Err:    fmt.Errorf("cd: %s: No such file or directory", typed),
		}
	}

	s.state.WorkingDir = target
	return command.Outcome{}
}

// cdTarget expands the typed cd argument to an absolute path. No
// argument and "~" mean the user's home directory; relative paths are
// taken against the shell state's working directory, not the process's.
func (s *Shell) cdTarget(typed string) (string, error) {
	if typed == "" || typed == "~" || strings.HasPrefix(typed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cd: could not determine home directory: %w", err)
		}
		if len(typed) > 1 {
			return filepath.Join(home, typed[2:]), nil
		}
		return home, nil
	}

	if filepath.IsAbs(typed) {
		return filepath.Clean(typed), nil
	}
	return filepath.Join(s.state.WorkingDir, typed), nil
}

func (s *Shell) builtinExit(args []string) command.Outcome {
	status := 0
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return command.Outcome{
				Status: command.StatusBuiltinMisuse,
				Err:    fmt.Errorf("exit: %s: numeric argument required", args[0]),
			}
		}
		status = parsed
	}
	s.state.RequestExit(status)
	return command.Outcome{Status: status}
}

// builtinType reports, for each argument, whether the name is a shell
// builtin, an executable on the search path, or not found at all.
func (s *Shell) builtinType(args []string) command.Outcome {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "type: usage: type name [name ...]")
		return command.Outcome{}
	}

	status := command.StatusOK
	for _, name := range args {
		if s.isBuiltin(name) {
			fmt.Fprintln(s.out, name+" is a shell builtin")
			continue
		}
		if path, ok := s.finder.Find(name, s.state.WorkingDir); ok {
			fmt.Fprintln(s.out, name+" is "+path)
			continue
		}
		fmt.Fprintln(s.out, name+": not found")
		status = command.StatusFailure
	}
	return command.Outcome{Status: status}
}

// builtinHistory lists this session's commands in execution order;
// "history -c" clears them.
func (s *Shell) builtinHistory(args []string) command.Outcome {
	if len(args) > 0 && args[0] == "-c" {
		s.history.Clear()
		return command.Outcome{}
	}
	if len(args) > 0 {
		return command.Outcome{
			Status: command.StatusBuiltinMisuse,
			Err:    fmt.Errorf("history: %s: unknown option", args[0]),
		}
	}

	entries := s.history.Entries()
	if len(entries) == 0 {
		return command.Outcome{}
	}

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"#", "Command"})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, entry := range entries {
		table.Append([]string{strconv.Itoa(entry.Seq), entry.Line})
	}
	table.Render()
	return command.Outcome{}
}
