package pathlookup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/gosh/internal/core/ports"
)

// Finder implements the ports.ExecutableFinder interface over an ordered
// list of search directories.
type Finder struct {
	dirs []string
}

// NewFinder creates a Finder searching the given directories in order.
func NewFinder(dirs []string) ports.ExecutableFinder {
	return &Finder{dirs: dirs}
}

// NewFinderFromEnv creates a Finder from the PATH environment variable.
// An empty PATH yields a finder that never matches.
func NewFinderFromEnv() ports.ExecutableFinder {
	path := os.Getenv("PATH")
	var dirs []string
	if path != "" {
		dirs = strings.Split(path, string(os.PathListSeparator))
	}
	return NewFinder(dirs)
}

/*
Find resolves name to an executable file. Names containing a path
separator are checked directly against the filesystem, relative ones
taken against workDir so the shell's cd is honored; bare names are
joined with each search directory in order and the first match wins.
Matching is exact: a candidate must be a regular file with an executable
bit set, the Unix resolution rule this shell targets.
*/
func (f *Finder) Find(name, workDir string) (string, bool) {
	if strings.ContainsRune(name, os.PathSeparator) {
		candidate := name
		if !filepath.IsAbs(candidate) && workDir != "" {
			candidate = filepath.Join(workDir, candidate)
		}
		if !isExecutable(candidate) {
			return "", false
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", false
		}
		return abs, true
	}

	for _, dir := range f.dirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}
