// Package processor drives the per-recipe pipeline: derive a branch name,
// ensure a fresh branch off trunk, run AutoPkg, parse its report and turn
// the outcome into version-control actions. Failures are isolated per
// recipe; the batch always runs to completion.
package processor

import (
	"context"

	"conveyor/internal/gitrepo"
	"conveyor/internal/recipe"
	"conveyor/internal/report"
)

// Logger is the logging interface used by the processor.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// VersionControl is the subset of the git gateway the processor drives.
type VersionControl interface {
	ListBranches(ctx context.Context) ([]string, error)
	EnsureFreshBranch(ctx context.Context, name string) error
	StageAndCommit(ctx context.Context, item report.ImportedItem) error
	RenameWithVersion(ctx context.Context, branch, version string) (string, error)
	Push(ctx context.Context, branch string) gitrepo.PushOutcome
}

// Reviewer opens review requests for pushed branches.
type Reviewer interface {
	Open(ctx context.Context, branch, title string)
}

// ToolRunner invokes AutoPkg for one recipe, writing its report to
// reportPath. The returned error reflects the exit status and is observed
// for logging only; branching is driven by the report contents.
type ToolRunner interface {
	Run(ctx context.Context, recipe, reportPath string) error
}

// ReportParser converts one run report into a normalized outcome.
type ReportParser interface {
	Parse(path string) (report.RunOutcome, error)
}

// BatchResult accumulates the independent outcome lists across the full
// recipe batch, in processing order.
type BatchResult struct {
	Imported  []report.ImportedItem
	Failed    []report.FailureRecord
	GitErrors []gitrepo.PushOutcome
}

// Processor sequences recipes through the pipeline. Processing is strictly
// sequential: all git operations share one working tree.
type Processor struct {
	vcs        VersionControl
	reviews    Reviewer
	tool       ToolRunner
	parser     ReportParser
	reportPath string
	logger     Logger
}

// New creates a Processor. reportPath is where the tool writes each run's
// report; it is reused across recipes.
func New(vcs VersionControl, reviews Reviewer, tool ToolRunner, parser ReportParser, reportPath string, logger Logger) *Processor {
	return &Processor{
		vcs:        vcs,
		reviews:    reviews,
		tool:       tool,
		parser:     parser,
		reportPath: reportPath,
		logger:     logger,
	}
}

// Run processes every recipe in order and returns the aggregated outcome.
// A recipe's failure never aborts the batch.
func (p *Processor) Run(ctx context.Context, recipes []string) BatchResult {
	var result BatchResult
	for _, r := range recipes {
		p.processRecipe(ctx, r, &result)
	}
	return result
}

func (p *Processor) processRecipe(ctx context.Context, identifier string, result *BatchResult) {
	p.logger.Info("processing recipe", "recipe", identifier)

	branches, err := p.vcs.ListBranches(ctx)
	if err != nil {
		p.logger.Error("listing branches failed, skipping recipe", "recipe", identifier, "error", err)
		return
	}
	base := recipe.DeriveBaseName(identifier, branches)

	if err := p.vcs.EnsureFreshBranch(ctx, base); err != nil {
		p.logger.Error("branch setup failed, skipping recipe", "recipe", identifier, "branch", base, "error", err)
		return
	}

	if err := p.tool.Run(ctx, identifier, p.reportPath); err != nil {
		p.logger.Warn("autopkg exited with error", "recipe", identifier, "error", err)
	}

	outcome, err := p.parser.Parse(p.reportPath)
	if err != nil {
		p.logger.Error("report unreadable, skipping recipe", "recipe", identifier, "error", err)
		return
	}

	if outcome.Empty() {
		p.logger.Info("nothing happened for recipe", "recipe", identifier)
		return
	}

	if failure, ok := firstFailureOnly(outcome.Failed); ok {
		result.Failed = append(result.Failed, failure)
	}

	item, ok := firstImportedOnly(outcome.Imported)
	if !ok {
		return
	}

	if err := p.vcs.StageAndCommit(ctx, item); err != nil {
		p.logger.Error("commit failed, abandoning recipe", "recipe", identifier, "error", err)
		return
	}

	versioned, err := p.vcs.RenameWithVersion(ctx, base, item.Version)
	if err != nil {
		p.logger.Error("branch rename failed, abandoning recipe", "recipe", identifier, "error", err)
		return
	}

	push := p.vcs.Push(ctx, versioned)
	if !push.Success {
		result.GitErrors = append(result.GitErrors, push)
		return
	}

	p.reviews.Open(ctx, versioned, item.CommitMessage())

	// The base name disambiguates per-architecture variants of the same
	// logical name/version in the final notification.
	item.BranchName = base
	result.Imported = append(result.Imported, item)
}
