// Package project walks a project tree and selects the files that belong in
// a prompt. Selection is driven by whitelist and blacklist patterns; hidden
// entries are always skipped.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/howell-aikit/promptpack/internal/prompt"
)

// Options configures file selection for a Project.
type Options struct {
	// Whitelist holds patterns a file must match to be included.
	// Nil means DefaultWhitelist.
	Whitelist []string

	// Blacklist holds patterns that exclude files and prune directories.
	// Nil means DefaultBlacklist.
	Blacklist []string

	// Marker is the fence line placed around file snippets.
	// Empty means prompt.DefaultMarker.
	Marker string
}

// DefaultWhitelist matches every file.
func DefaultWhitelist() []string { return []string{MatchAll} }

// DefaultBlacklist excludes Python bytecode caches.
func DefaultBlacklist() []string { return []string{"__pycache__"} }

// Project is a scanned project directory. The file set is computed once at
// construction and is not refreshed if the directory changes afterwards.
type Project struct {
	root      string
	whitelist []string
	blacklist []string
	marker    string
	files     []string
}

// New scans root and returns a Project holding the selected files. A root
// that does not exist or cannot be read yields an empty file set rather
// than an error.
func New(root string, opts Options) *Project {
	p := &Project{
		root:      root,
		whitelist: opts.Whitelist,
		blacklist: opts.Blacklist,
		marker:    opts.Marker,
	}
	if p.whitelist == nil {
		p.whitelist = DefaultWhitelist()
	}
	if p.blacklist == nil {
		p.blacklist = DefaultBlacklist()
	}
	if p.marker == "" {
		p.marker = prompt.DefaultMarker
	}
	p.walk(root, "")
	return p
}

// Root returns the directory the project was scanned from.
func (p *Project) Root() string { return p.root }

// Marker returns the snippet fence line.
func (p *Project) Marker() string { return p.marker }

// Files returns the selected files as root-relative paths, in traversal
// order: each directory's files before its subdirectories' files.
func (p *Project) Files() []string {
	out := make([]string, len(p.files))
	copy(out, p.files)
	return out
}

// Path resolves a root-relative file path against the project root.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.root, rel)
}

// walk collects files under dir. rel is dir's path relative to the root,
// "" for the root itself. Files are appended before descending so a
// directory's own files precede everything beneath it.
func (p *Project) walk(dir, rel string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var subdirs []os.DirEntry
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		relPath := filepath.Join(rel, name)
		if entry.IsDir() {
			if Matches(relPath, p.blacklist) {
				continue
			}
			subdirs = append(subdirs, entry)
			continue
		}
		if Matches(relPath, p.blacklist) {
			continue
		}
		if Matches(relPath, p.whitelist) {
			p.files = append(p.files, relPath)
		}
	}

	for _, entry := range subdirs {
		p.walk(filepath.Join(dir, entry.Name()), filepath.Join(rel, entry.Name()))
	}
}
