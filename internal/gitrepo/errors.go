package gitrepo

import (
	"fmt"
	"strings"
)

// GitError represents a failed git command.
type GitError struct {
	Operation string
	Dir       string
	Output    string
	Err       error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed in %s: %v", e.Operation, e.Dir, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// BranchError wraps a git failure with the branch being switched to or
// created. Branch failures are fatal for the recipe being processed.
type BranchError struct {
	Branch string
	Err    error
}

func (e *BranchError) Error() string {
	return fmt.Sprintf("couldn't switch to %q: %v", e.Branch, e.Err)
}

func (e *BranchError) Unwrap() error {
	return e.Err
}
