package ports

/*
ExecutableFinder resolves a command name to the path of an executable
file. Bare names are searched through an ordered list of directories;
the first match in search order wins. Names containing a path separator
are checked directly against the filesystem instead, relative ones taken
against workDir — the shell's working directory, not the process's. It
reports false when no match is found.
*/
type ExecutableFinder interface {
	Find(name, workDir string) (path string, ok bool)
}
