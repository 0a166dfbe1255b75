package pathlookup

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), mode); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestFinder_Find(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit resolution is a Unix rule")
	}

	first := t.TempDir()
	second := t.TempDir()

	wantPath := writeFile(t, first, "mytool", 0o755)
	writeFile(t, second, "mytool", 0o755)
	writeFile(t, second, "onlysecond", 0o755)
	writeFile(t, first, "notexec", 0o644)
	writeFile(t, second, "notexec", 0o755)

	finder := NewFinder([]string{first, second})

	tests := []struct {
		name     string
		lookup   string
		wantPath string
		wantOK   bool
	}{
		{
			name:     "first directory in search order wins",
			lookup:   "mytool",
			wantPath: wantPath,
			wantOK:   true,
		},
		{
			name:     "falls through to later directories",
			lookup:   "onlysecond",
			wantPath: filepath.Join(second, "onlysecond"),
			wantOK:   true,
		},
		{
			name:     "non-executable file is skipped in favor of a later match",
			lookup:   "notexec",
			wantPath: filepath.Join(second, "notexec"),
			wantOK:   true,
		},
		{
			name:   "no match anywhere",
			lookup: "zzzznotacommand",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := finder.Find(tt.lookup, "")
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.lookup, ok, tt.wantOK)
			}
			if ok && got != tt.wantPath {
				t.Errorf("Find(%q) = %q, want %q", tt.lookup, got, tt.wantPath)
			}
		})
	}
}

func TestFinder_Find_NameWithSeparator(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit resolution is a Unix rule")
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "direct", 0o755)

	// Search directories are ignored for names carrying a separator.
	finder := NewFinder(nil)

	got, ok := finder.Find(path, "")
	if !ok {
		t.Fatalf("Find(%q) ok = false, want true", path)
	}
	if got != path {
		t.Errorf("Find(%q) = %q, want %q", path, got, path)
	}

	if _, ok := finder.Find(filepath.Join(dir, "missing"), ""); ok {
		t.Error("Find() matched a path that does not exist")
	}
}

func TestFinder_Find_RelativeNameResolvesAgainstWorkDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit resolution is a Unix rule")
	}

	dir := t.TempDir()
	wantPath := writeFile(t, dir, "tool.sh", 0o755)

	finder := NewFinder(nil)

	// The shell never chdirs, so workDir is the only way cd can reach
	// a ./name lookup.
	got, ok := finder.Find("./tool.sh", dir)
	if !ok {
		t.Fatalf("Find(%q) in %q ok = false, want true", "./tool.sh", dir)
	}
	if got != wantPath {
		t.Errorf("Find(%q) = %q, want %q", "./tool.sh", got, wantPath)
	}

	if _, ok := finder.Find("./tool.sh", t.TempDir()); ok {
		t.Error("Find() matched a relative name outside its workDir")
	}

	// Absolute names ignore workDir entirely.
	got, ok = finder.Find(wantPath, t.TempDir())
	if !ok || got != wantPath {
		t.Errorf("Find(%q) = %q, %v, want the absolute path untouched", wantPath, got, ok)
	}
}

func TestFinder_Find_EmptySearchPath(t *testing.T) {
	finder := NewFinder(nil)
	if _, ok := finder.Find("ls", ""); ok {
		t.Error("Find() matched with no search directories configured")
	}
}
