package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit and returns its path.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestOpenMissingRepo(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open repository")
}

func TestIsGitRepo(t *testing.T) {
	dir := initRepo(t)
	assert.True(t, IsGitRepo(dir))
	assert.False(t, IsGitRepo(t.TempDir()))
}

func TestOpenFromSubdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "nested", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := Open(sub)
	require.NoError(t, err)

	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
	assert.Equal(t, sub, repo.Path())
}

func TestRepositoryState(t *testing.T) {
	dir := initRepo(t)

	repo, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, repo.Path())

	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)

	hash, err := repo.CommitHash()
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestIsDirtyAfterChange(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0o644))

	repo, err := Open(dir)
	require.NoError(t, err)

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestSummary(t *testing.T) {
	dir := initRepo(t)

	repo, err := Open(dir)
	require.NoError(t, err)

	hash, err := repo.CommitHash()
	require.NoError(t, err)

	summary, err := repo.Summary()
	require.NoError(t, err)
	assert.Equal(t, "master@"+hash[:8], summary)

	// A dirty worktree is flagged with a trailing star.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0o644))
	summary, err = repo.Summary()
	require.NoError(t, err)
	assert.Equal(t, "master@"+hash[:8]+"*", summary)
}
