package gitrepo

import (
	"context"
	"os/exec"
	"strings"
)

// CommandRunner executes git commands in a working directory.
type CommandRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execRunner shells out to the git binary.
type execRunner struct{}

// NewCommandRunner returns a CommandRunner backed by the git binary.
func NewCommandRunner() CommandRunner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.CombinedOutput()
	result := strings.TrimSpace(string(output))

	if err != nil {
		return result, &GitError{
			Operation: strings.Join(args, " "),
			Dir:       dir,
			Output:    result,
			Err:       err,
		}
	}

	return result, nil
}
