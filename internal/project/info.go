package project

import (
	"path/filepath"

	"github.com/howell-aikit/promptpack/internal/prompt"
	"github.com/howell-aikit/promptpack/internal/source"
)

// InfoOptions selects the sections WriteInfo appends.
type InfoOptions struct {
	// Overview is free text for the overview section; empty adds nothing.
	Overview string

	// Structure adds the rendered file tree.
	Structure bool

	// Contents adds each selected file's transformed content.
	Contents bool

	// Files restricts the content section to these root-relative paths,
	// kept in inclusion-set order. Nil means every selected file.
	Files []string

	// Source controls the per-file content transforms.
	Source source.Options
}

// NewPrompt returns an empty prompt builder using the project's snippet
// marker.
func (p *Project) NewPrompt() *prompt.Builder {
	return prompt.NewBuilder(p.marker)
}

// WriteInfo appends the requested sections to b: overview, then structure,
// then file contents. Processing stops at the first file that fails to
// transform; b keeps whatever was appended before the failure.
func (p *Project) WriteInfo(b *prompt.Builder, opts InfoOptions) error {
	b.AddOverview(opts.Overview)
	if opts.Structure {
		b.AddStructure(p.Structure())
	}
	if !opts.Contents {
		return nil
	}

	files := p.files
	if opts.Files != nil {
		files = p.subset(opts.Files)
	}
	for _, rel := range files {
		content, err := source.File(p.Path(rel), opts.Source)
		if err != nil {
			return err
		}
		b.AddFile(rel, content)
	}
	return nil
}

// subset filters the inclusion set down to the requested paths, preserving
// inclusion-set order.
func (p *Project) subset(requested []string) []string {
	want := make(map[string]bool, len(requested))
	for _, rel := range requested {
		want[filepath.Clean(rel)] = true
	}
	var out []string
	for _, rel := range p.files {
		if want[rel] {
			out = append(out, rel)
		}
	}
	return out
}
