package gitrepo

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// VerifyWorkingTree confirms dir is a git checkout before the batch starts.
// Every git operation in the batch runs against this one location, so a bad
// path should fail up front rather than per recipe.
func VerifyWorkingTree(dir string) error {
	if _, err := git.PlainOpen(dir); err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return fmt.Errorf("%s is not a git repository", dir)
		}
		return fmt.Errorf("open repository %s: %w", dir, err)
	}
	return nil
}
