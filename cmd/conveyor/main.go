package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conveyor/internal/gitrepo"
	"conveyor/internal/notify"
	"conveyor/internal/processor"
	"conveyor/internal/recipe"
	"conveyor/internal/report"
	"conveyor/internal/review"
	"conveyor/pkg/config"
)

// Exit codes. A batch that ran to completion always exits zero: per-recipe
// and per-push failures are reported through the notification, not the
// process status.
const (
	ExitSuccess      = 0
	ExitGenericError = 1
	ExitConfigError  = 2
)

// These are populated by the build via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// CLIError carries an exit code alongside the failure.
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "conveyor: %v\n", err)
		if cliErr, ok := err.(*CLIError); ok {
			os.Exit(cliErr.Code)
		}
		os.Exit(ExitGenericError)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conveyor",
		Short: "Conveyor automates AutoPkg runs into munki repo review requests",
		Long: `Conveyor runs AutoPkg recipes against a munki repo checkout. For every
recipe that imports a new version it commits the change on a fresh branch,
pushes it, opens a review request, and finally posts one consolidated
notification for the whole batch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddFlags(cmd)

	cmd.AddCommand(
		newRunCommand(),
		newVersionCommand(),
	)

	return cmd
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process recipes and report the batch outcome",
		Long: `Run processes the configured recipes in order. Recipes are taken from the
--recipes flag (or CONVEYOR_RECIPES); when neither is set, recipe overrides
are discovered under the overrides directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "conveyor %s (%s)\n", version, commit)
		},
	}
}

func runBatch(cmd *cobra.Command) error {
	cfg, err := config.NewBuilder().
		FromFile("").
		FromEnv().
		FromFlags(cmd).
		Build()
	if err != nil {
		return &CLIError{Code: ExitConfigError, Message: "failed to build configuration", Cause: err}
	}

	logger := newLogger(cfg)

	if err := gitrepo.VerifyWorkingTree(cfg.Repo.Dir); err != nil {
		return &CLIError{Code: ExitConfigError, Message: "working tree check failed", Cause: err}
	}

	recipes := cfg.Recipes.List
	if len(recipes) == 0 {
		recipes, err = recipe.Discover(cfg.Recipes.OverridesDir)
		if err != nil {
			return &CLIError{Code: ExitConfigError, Message: "recipe discovery failed", Cause: err}
		}
	}
	logger.Info("starting batch", "recipes", len(recipes))

	reviews, err := review.New(review.Config{
		Token: cfg.Integration.GitHub.Token,
		Repo:  cfg.Integration.GitHub.Repo,
		Trunk: cfg.Repo.Trunk,
	}, logger)
	if err != nil {
		return &CLIError{Code: ExitConfigError, Message: "review gateway setup failed", Cause: err}
	}

	git := gitrepo.New(cfg.Repo.Dir, cfg.Repo.Trunk, logger)
	tool := processor.NewAutoPkgRunner(cfg.AutoPkg.Path, logger)
	proc := processor.New(git, reviews, tool, report.NewParser(), cfg.Recipes.ReportPath, logger)

	result := proc.Run(cmd.Context(), recipes)

	printSummary(cmd.OutOrStdout(), result)

	message := notify.Compose(result.Imported, result.Failed, result.GitErrors)
	notify.NewSink(cfg.Integration.Slack.WebhookURL, nil, logger).Send(cmd.Context(), message)

	return nil
}
