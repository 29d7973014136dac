package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Repository wraps go-git operations
type Repository struct {
	repo *git.Repository
	path string
}

// Open opens the git repository enclosing path, searching parent
// directories for the repository root the way the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return &Repository{repo: repo, path: path}, nil
}

// Path returns the repository path
func (r *Repository) Path() string {
	return r.path
}

// CurrentBranch returns the current branch name
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Name().Short(), nil
}

// CommitHash returns the current commit hash
func (r *Repository) CommitHash() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// IsDirty returns true if there are uncommitted changes
func (r *Repository) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}

	return !status.IsClean(), nil
}

// Summary returns a one-line description of the repository state,
// "branch@hash", with a trailing * when the worktree has uncommitted
// changes.
func (r *Repository) Summary() (string, error) {
	branch, err := r.CurrentBranch()
	if err != nil {
		return "", err
	}

	hash, err := r.CommitHash()
	if err != nil {
		return "", err
	}
	if len(hash) > 8 {
		hash = hash[:8]
	}

	summary := fmt.Sprintf("%s@%s", branch, hash)
	dirty, err := r.IsDirty()
	if err != nil {
		return "", err
	}
	if dirty {
		summary += "*"
	}
	return summary, nil
}

// IsGitRepo checks if the given path is inside a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}
