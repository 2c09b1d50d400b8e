// Package gitrepo wraps the git operations the pipeline performs against
// the single munki repo checkout. Every operation returns an explicit
// result; push failures are communicated as data rather than errors because
// they are recoverable at the batch level.
package gitrepo

import (
	"context"
	"strings"

	"conveyor/internal/recipe"
	"conveyor/internal/report"
)

// Logger is the logging interface used by the gateway.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// PushOutcome is the result of pushing a branch. A failed push carries the
// branch and diagnostic so the batch report can surface it.
type PushOutcome struct {
	Success bool
	Branch  string
	Error   string
}

// Gateway performs git operations against one fixed working tree. The
// checkout is single-tenant: callers must not run operations concurrently.
type Gateway struct {
	dir    string
	trunk  string
	runner CommandRunner
	logger Logger
}

// New creates a Gateway that shells out to git in dir. trunk is the branch
// feature branches are created from.
func New(dir, trunk string, logger Logger) *Gateway {
	return NewWithRunner(dir, trunk, NewCommandRunner(), logger)
}

// NewWithRunner creates a Gateway with a custom command runner.
func NewWithRunner(dir, trunk string, runner CommandRunner, logger Logger) *Gateway {
	return &Gateway{
		dir:    dir,
		trunk:  trunk,
		runner: runner,
		logger: logger,
	}
}

// ListBranches returns the current local branch names with the current
// branch marker stripped.
func (g *Gateway) ListBranches(ctx context.Context) ([]string, error) {
	output, err := g.runner.Run(ctx, g.dir, "branch")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}

	var branches []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "* "))
		if name != "" {
			branches = append(branches, name)
		}
	}
	return branches, nil
}

// CurrentBranch returns the name of the checked-out branch.
func (g *Gateway) CurrentBranch(ctx context.Context) (string, error) {
	return g.runner.Run(ctx, g.dir, "symbolic-ref", "--short", "HEAD")
}

// EnsureFreshBranch switches to trunk if needed, then creates and checks
// out name. Either switch failing is a BranchError: the working tree is in
// no state to process the recipe.
func (g *Gateway) EnsureFreshBranch(ctx context.Context, name string) error {
	current, err := g.CurrentBranch(ctx)
	if err != nil {
		return &BranchError{Branch: name, Err: err}
	}
	if current != g.trunk {
		if err := g.checkout(ctx, g.trunk, false); err != nil {
			return err
		}
	}
	return g.checkout(ctx, name, true)
}

func (g *Gateway) checkout(ctx context.Context, branch string, create bool) error {
	args := []string{"checkout"}
	if create {
		args = append(args, "-b")
	}
	args = append(args, branch)
	if _, err := g.runner.Run(ctx, g.dir, args...); err != nil {
		return &BranchError{Branch: branch, Err: err}
	}
	return nil
}

// StageAndCommit stages the full working tree and commits the import with
// the generated update message.
func (g *Gateway) StageAndCommit(ctx context.Context, item report.ImportedItem) error {
	g.logger.Info("staging changes", "dir", g.dir)
	if _, err := g.runner.Run(ctx, g.dir, "add", "."); err != nil {
		return err
	}

	message := item.CommitMessage()
	g.logger.Info("creating commit", "message", message)
	if _, err := g.runner.Run(ctx, g.dir, "commit", "-m", message); err != nil {
		return err
	}
	return nil
}

// RenameWithVersion renames branch to embed the imported version, applying
// the single-level collision suffix against the live branch list. It
// returns the name actually used.
func (g *Gateway) RenameWithVersion(ctx context.Context, branch, version string) (string, error) {
	branches, err := g.ListBranches(ctx)
	if err != nil {
		return "", err
	}

	newName, collided := recipe.QualifyWithVersion(branch, version, branches)
	if collided {
		g.logger.Warn("branch name already exists, using fallback", "branch", newName)
	}

	if _, err := g.runner.Run(ctx, g.dir, "branch", "-m", branch, newName); err != nil {
		return "", err
	}
	return newName, nil
}

// Push sets the upstream and pushes branch to origin. Failures are returned
// as data, never as an error.
func (g *Gateway) Push(ctx context.Context, branch string) PushOutcome {
	g.logger.Info("pushing branch", "branch", branch)
	if _, err := g.runner.Run(ctx, g.dir, "push", "--set-upstream", "origin", branch); err != nil {
		g.logger.Error("push failed", "branch", branch, "error", err)
		return PushOutcome{
			Success: false,
			Branch:  branch,
			Error:   err.Error(),
		}
	}
	return PushOutcome{Success: true, Branch: branch}
}
