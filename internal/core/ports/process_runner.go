package ports

import "io"

// IOStreams binds a child process to the shell's input and output
// streams. A nil In leaves the child without standard input.
type IOStreams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

/*
ProcessRunner starts an external executable and waits for it to finish.
argv carries the full argument vector, argv[0] being the name the command
was invoked as; dir is the working directory the child starts in. A
nonzero child exit is reported through the status alone, not as an error;
err is reserved for failures to launch or wait.
*/
type ProcessRunner interface {
	Run(path string, argv []string, dir string, stdio IOStreams) (status int, err error)
}
