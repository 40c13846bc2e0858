package sourcelink

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkerLocation(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "src", "project")
	l := Linker{RepoURL: "https://github.com/org/project", Branch: "main", SourceRoot: root}

	display, href := l.Location(filepath.Join(root, "include", "widget.h"), 42)
	assert.Equal(t, "include/widget.h:42", display)
	assert.Equal(t, "https://github.com/org/project/blob/main/include/widget.h#L42", href)

	display, href = l.Location("include/../src/impl.cpp", 3)
	assert.Equal(t, "src/impl.cpp:3", display)
	assert.Equal(t, "https://github.com/org/project/blob/main/src/impl.cpp#L3", href)

	outside := filepath.Join(string(filepath.Separator), "usr", "include", "vector")
	display, href = l.Location(outside, 10)
	assert.Equal(t, filepath.ToSlash(outside)+":10", display)
	assert.Empty(t, href)
}

func TestLinkerDisabled(t *testing.T) {
	var l Linker
	assert.False(t, l.Enabled())

	display, href := l.Location("a.h", 5)
	assert.Equal(t, "a.h:5", display)
	assert.Empty(t, href)
}

func TestLinkerExplicitForge(t *testing.T) {
	l := Linker{RepoURL: "https://git.example.com/team/repo", Branch: "trunk", Forge: ForgeGitLab}
	_, href := l.Location("a.h", 1)
	assert.Equal(t, "https://git.example.com/team/repo/-/blob/trunk/a.h#L1", href)
}

func TestDetectBranch(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.h"), []byte("int a;\n"), 0o600))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("a.h")
	require.NoError(t, err)
	_, err = wt.Commit("init", &git.CommitOptions{Author: &object.Signature{Name: "tester", Email: "t@example.com", When: time.Now()}})
	require.NoError(t, err)

	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName("release"), Create: true}))

	sub := filepath.Join(dir, "include")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	branch, err := DetectBranch(sub)
	require.NoError(t, err)
	assert.Equal(t, "release", branch)
}

func TestDetectBranchNotARepository(t *testing.T) {
	_, err := DetectBranch(t.TempDir())
	require.Error(t, err)
}
