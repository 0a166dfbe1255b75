package resolution

import (
	"github.com/AntonioJCosta/gosh/internal/core/domain/command"
	"github.com/AntonioJCosta/gosh/internal/core/domain/token"
	"github.com/AntonioJCosta/gosh/internal/core/ports"
)

type resolver struct {
	isBuiltin func(name string) bool
	finder    ports.ExecutableFinder
	tokenizer ports.Tokenizer
	aliases   map[string]string
}

/*
NewResolver creates a new command resolution service. isBuiltin reports
whether a name belongs to the shell's builtin registry; aliases maps
names to the command lines they expand to and may be nil.
It panics if isBuiltin, finder, or tokenizer is nil.
*/
func NewResolver(
	isBuiltin func(name string) bool,
	finder ports.ExecutableFinder,
	tokenizer ports.Tokenizer,
	aliases map[string]string,
) ports.CommandResolver {
	if isBuiltin == nil {
		panic("isBuiltin cannot be nil")
	}
	if finder == nil {
		panic("finder cannot be nil")
	}
	if tokenizer == nil {
		panic("tokenizer cannot be nil")
	}
	return &resolver{
		isBuiltin: isBuiltin,
		finder:    finder,
		tokenizer: tokenizer,
		aliases:   aliases,
	}
}

/*
Resolve maps a tokenized line onto a builtin, an executable on the search
path, or a not-found result. Alias expansion happens first and is single
level: the expansion's own first word is never treated as an alias again.
Builtin names win over the search path; among search directories the
first match in order wins. workDir anchors names that carry a path
separator but are not absolute.
*/
func (r *resolver) Resolve(line token.Line, workDir string) command.Resolved {
	name := line.Name()
	args := line.Args()

	if expansion, ok := r.aliases[name]; ok {
		if expanded := r.tokenizer.Tokenize(expansion); !expanded.IsEmpty() {
			name = expanded.Name()
			args = append(expanded.Args(), args...)
		}
	}

	if r.isBuiltin(name) {
		return command.Resolved{Kind: command.KindBuiltin, Name: name, Args: args}
	}

	if path, ok := r.finder.Find(name, workDir); ok {
		return command.Resolved{Kind: command.KindExternal, Name: name, Path: path, Args: args}
	}

	return command.Resolved{Kind: command.KindNotFound, Name: name, Args: args}
}
