// Package review opens review requests for pushed branches. The gateway is
// best-effort by policy: a missing token is a logged soft-skip and API
// failures are logged rather than surfaced, so the batch never stalls on
// the review host.
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v66/github"
)

// Logger is the logging interface used by the gateway.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// PullRequestsService is the subset of the GitHub Pull Requests API the
// gateway requires.
type PullRequestsService interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, pull *github.PullRequest) (*github.PullRequest, *github.Response, error)
}

// Config holds review gateway settings.
type Config struct {
	// Token authenticates against the GitHub API. Empty means review
	// requests are skipped.
	Token string

	// Repo is the hosted repository in owner/name form.
	Repo string

	// Trunk is the base branch review requests target.
	Trunk string
}

// Gateway opens pull requests against the munki repo.
type Gateway struct {
	prs    PullRequestsService
	owner  string
	repo   string
	trunk  string
	logger Logger
}

// New builds a Gateway from configuration. With an empty token the gateway
// is still valid but every Open call soft-skips.
func New(cfg Config, logger Logger) (*Gateway, error) {
	g := &Gateway{trunk: cfg.Trunk, logger: logger}

	if cfg.Token == "" {
		return g, nil
	}

	owner, repo, err := splitRepo(cfg.Repo)
	if err != nil {
		return nil, err
	}
	g.owner, g.repo = owner, repo

	client := newAuthenticatedClient(cfg.Token)
	g.prs = client.PullRequests
	return g, nil
}

// NewWithService builds a Gateway around an existing service, for tests.
func NewWithService(prs PullRequestsService, owner, repo, trunk string, logger Logger) *Gateway {
	return &Gateway{prs: prs, owner: owner, repo: repo, trunk: trunk, logger: logger}
}

// Open creates a review request merging branch into trunk, titled with the
// import's commit message. If one already exists for the branch it is
// refreshed in place. Errors are logged and never returned.
func (g *Gateway) Open(ctx context.Context, branch, title string) {
	if g.prs == nil {
		g.logger.Info("review request skipped, no access token configured", "branch", branch)
		return
	}

	if err := g.open(ctx, branch, title); err != nil {
		g.logger.Error("review request failed", "branch", branch, "error", err)
	}
}

func (g *Gateway) open(ctx context.Context, branch, title string) error {
	existing, err := g.findExisting(ctx, branch)
	if err != nil {
		return fmt.Errorf("list review requests: %w", err)
	}

	if existing != nil {
		update := &github.PullRequest{Title: &title}
		if _, _, err := g.prs.Edit(ctx, g.owner, g.repo, existing.GetNumber(), update); err != nil {
			return fmt.Errorf("update review request #%d: %w", existing.GetNumber(), err)
		}
		g.logger.Info("review request updated", "branch", branch, "number", existing.GetNumber())
		return nil
	}

	pull := &github.NewPullRequest{
		Title: &title,
		Head:  &branch,
		Base:  &g.trunk,
	}
	created, _, err := g.prs.Create(ctx, g.owner, g.repo, pull)
	if err != nil {
		return fmt.Errorf("create review request: %w", err)
	}

	g.logger.Info("review request opened", "branch", branch, "url", created.GetHTMLURL())
	return nil
}

// findExisting returns the most recent open pull request for branch, if any.
func (g *Gateway) findExisting(ctx context.Context, branch string) (*github.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		Head:      g.owner + ":" + branch,
		State:     "open",
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: 10,
		},
	}

	prs, _, err := g.prs.List(ctx, g.owner, g.repo, opts)
	if err != nil {
		return nil, err
	}
	if len(prs) > 0 {
		return prs[0], nil
	}
	return nil, nil
}

func splitRepo(repo string) (string, string, error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository must be in owner/name form, got %q", repo)
	}
	return parts[0], parts[1], nil
}
