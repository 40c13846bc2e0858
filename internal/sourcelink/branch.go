package sourcelink

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// ErrDetachedHead is returned when the checkout is not on a branch.
var ErrDetachedHead = errors.New("HEAD is not on a branch")

// DetectBranch returns the branch checked out in the repository containing
// dir. Parent directories are searched for the .git directory.
func DetectBranch(dir string) (string, error) {
	repository, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository at %s: %w", dir, err)
	}
	ref, err := repository.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !ref.Name().IsBranch() {
		return "", ErrDetachedHead
	}
	return ref.Name().Short(), nil
}
