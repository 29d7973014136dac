package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	indentMarker = "|   "
	branchMarker = "├── "
)

// Structure renders the project tree as indented text. Directories appear
// as "name/" lines at their depth, files sorted beneath them one level
// deeper. Only the blacklist filters entries here; the whitelist applies
// to content selection, not to the rendered tree.
func (p *Project) Structure() string {
	var sb strings.Builder
	p.renderDir(&sb, p.root, "")
	return sb.String()
}

func (p *Project) renderDir(sb *strings.Builder, dir, rel string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	depth := strings.Count(rel, string(os.PathSeparator))
	if rel != "" {
		sb.WriteString(strings.Repeat(indentMarker, depth))
		sb.WriteString(branchMarker)
		sb.WriteString(filepath.Base(rel) + "/\n")
	}

	var files []string
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			if Matches(filepath.Join(rel, name), p.blacklist) {
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}
		files = append(files, name)
	}

	sort.Strings(files)
	fileIndent := strings.Repeat(indentMarker, depth+1)
	for _, name := range files {
		if Matches(filepath.Join(rel, name), p.blacklist) {
			continue
		}
		sb.WriteString(fileIndent)
		sb.WriteString(branchMarker)
		sb.WriteString(name + "\n")
	}

	for _, name := range subdirs {
		p.renderDir(sb, filepath.Join(dir, name), filepath.Join(rel, name))
	}
}
