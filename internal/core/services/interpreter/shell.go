package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/gosh/internal/core/domain/command"
	"github.com/AntonioJCosta/gosh/internal/core/domain/config"
	"github.com/AntonioJCosta/gosh/internal/core/ports"
	"github.com/AntonioJCosta/gosh/internal/core/services/resolution"
)

// Builtin is a command implemented inside the shell process itself. It
// may read and mutate the shell state but never spawns a process.
type Builtin func(args []string) command.Outcome

// statusReadFailure is the shell's own status when the input stream
// breaks mid-read, as opposed to plain end of input.
const statusReadFailure = 2

// Deps are the collaborating ports a Shell needs.
type Deps struct {
	Tokenizer ports.Tokenizer
	Finder    ports.ExecutableFinder
	Runner    ports.ProcessRunner
	History   ports.HistoryRecorder

	// DecoratePrompt optionally styles the prompt before it is written.
	DecoratePrompt func(prompt string) string
}

// Shell is the REPL driver service. It owns the shell state and the
// builtin registry and implements the ports.Interpreter interface.
type Shell struct {
	in   *bufio.Reader
	out  io.Writer
	errw io.Writer

	state     *State
	prompt    string
	deco      func(string) string
	tokenizer ports.Tokenizer
	resolver  ports.CommandResolver
	runner    ports.ProcessRunner
	finder    ports.ExecutableFinder
	history   ports.HistoryRecorder
	builtins  map[string]Builtin
}

/*
New creates a Shell reading command lines from in and writing to out and
errw. cfg supplies the prompt and alias definitions. It panics if any
port in deps is nil, and fails only when the initial working directory
cannot be determined.
*/
func New(in io.Reader, out, errw io.Writer, cfg config.Config, deps Deps) (*Shell, error) {
	if deps.Tokenizer == nil {
		panic("tokenizer cannot be nil")
	}
	if deps.Finder == nil {
		panic("finder cannot be nil")
	}
	if deps.Runner == nil {
		panic("runner cannot be nil")
	}
	if deps.History == nil {
		panic("history cannot be nil")
	}

	state, err := NewState()
	if err != nil {
		return nil, err
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}
	deco := deps.DecoratePrompt
	if deco == nil {
		deco = func(p string) string { return p }
	}

	s := &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		errw:    errw,
		state:   state,
		prompt:  prompt,
		deco:    deco,
		runner:  deps.Runner,
		finder:  deps.Finder,
		history: deps.History,
	}
	s.registerBuiltins()
	s.resolver = resolution.NewResolver(s.isBuiltin, deps.Finder, deps.Tokenizer, cfg.AliasMap())
	s.tokenizer = deps.Tokenizer
	return s, nil
}

func (s *Shell) isBuiltin(name string) bool {
	_, ok := s.builtins[name]
	return ok
}

/*
Run drives the read, tokenize, resolve, execute loop until end of input
or the exit builtin, returning the shell's final status. End of input is
a graceful stop with status 0; a broken input stream is the one fatal
condition and reports a distinct nonzero status.
*/
func (s *Shell) Run() (int, error) {
	for {
		fmt.Fprint(s.out, s.deco(s.prompt))

		line, err := s.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Whatever was typed before the stream closed still runs.
				if strings.TrimSpace(line) != "" {
					s.RunLine(line)
				}
				fmt.Fprintln(s.out)
				if s.state.ExitSet {
					return s.state.ExitStatus, nil
				}
				return 0, nil
			}
			return statusReadFailure, fmt.Errorf("failed to read input: %w", err)
		}

		s.RunLine(line)

		if s.state.ExitSet {
			return s.state.ExitStatus, nil
		}
	}
}

/*
RunLine tokenizes, resolves, and executes a single command line and
returns its outcome. A line with no tokens is no command at all: it
produces no output and a zero outcome. Failure descriptions go to the
error stream; the loop itself never aborts on them.
*/
func (s *Shell) RunLine(line string) command.Outcome {
	line = strings.TrimRight(line, "\n")

	tokens := s.tokenizer.Tokenize(line)
	if tokens.IsEmpty() {
		return command.Outcome{}
	}

	s.history.Append(strings.TrimSpace(line))

	outcome := s.execute(s.resolver.Resolve(tokens, s.state.WorkingDir))
	if outcome.Err != nil {
		fmt.Fprintln(s.errw, outcome.Err.Error())
	}
	return outcome
}

func (s *Shell) execute(resolved command.Resolved) command.Outcome {
	switch resolved.Kind {
	case command.KindBuiltin:
		if fn, ok := s.builtins[resolved.Name]; ok {
			return fn(resolved.Args)
		}

	case command.KindExternal:
		// argv[0] is the typed name; the child starts in the shell's
		// current working directory so cd effects are visible to it.
		argv := append([]string{resolved.Name}, resolved.Args...)
		status, err := s.runner.Run(resolved.Path, argv, s.state.WorkingDir, ports.IOStreams{
			Out: s.out,
			Err: s.errw,
		})
		return command.Outcome{Status: status, Err: err}
	}

	return command.Outcome{
		Status: command.StatusNotFound,
		Err:    fmt.Errorf("%s: command not found", resolved.Name),
	}
}
