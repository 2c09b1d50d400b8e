package config

import (
	"github.com/spf13/cobra"
)

// AddFlags registers all configuration flags on cmd. Flags have the highest
// precedence of the three configuration sources.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String("config", "", "path to config file (default: ./conveyor.yaml)")
	flags.String("repo-dir", "", "path of the munki repo checkout")
	flags.String("trunk-branch", "", "branch feature branches are created from")
	flags.StringSlice("recipes", nil, "explicit recipes to run (default: discover overrides)")
	flags.String("overrides-dir", "", "directory scanned for recipe overrides")
	flags.String("report-path", "", "where autopkg writes its run report")
	flags.String("autopkg-path", "", "path to the autopkg binary")
	flags.String("review-repo", "", "review host repository in owner/name form")
	flags.String("webhook-url", "", "notification webhook endpoint")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.Bool("verbose", false, "enable debug logging")
	flags.Bool("quiet", false, "only log warnings and errors")
}

// ApplyFlags overlays flags the user actually set onto config.
func ApplyFlags(cmd *cobra.Command, config *Config) error {
	flags := cmd.Flags()

	if flags.Changed("repo-dir") {
		config.Repo.Dir, _ = flags.GetString("repo-dir")
	}
	if flags.Changed("trunk-branch") {
		config.Repo.Trunk, _ = flags.GetString("trunk-branch")
	}
	if flags.Changed("recipes") {
		config.Recipes.List, _ = flags.GetStringSlice("recipes")
	}
	if flags.Changed("overrides-dir") {
		config.Recipes.OverridesDir, _ = flags.GetString("overrides-dir")
	}
	if flags.Changed("report-path") {
		config.Recipes.ReportPath, _ = flags.GetString("report-path")
	}
	if flags.Changed("autopkg-path") {
		config.AutoPkg.Path, _ = flags.GetString("autopkg-path")
	}
	if flags.Changed("review-repo") {
		config.Integration.GitHub.Repo, _ = flags.GetString("review-repo")
	}
	if flags.Changed("webhook-url") {
		config.Integration.Slack.WebhookURL, _ = flags.GetString("webhook-url")
	}
	if flags.Changed("log-level") {
		config.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		config.Logging.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("verbose") {
		config.Logging.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("quiet") {
		config.Logging.Quiet, _ = flags.GetBool("quiet")
	}
	return nil
}
