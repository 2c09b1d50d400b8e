package config

// Config is the complete configuration for one batch run. It is built once
// at process start and handed to each component's constructor; components
// never read ambient environment state themselves.
type Config struct {
	// Repo describes the munki repo checkout all git operations act on.
	Repo RepoConfig `json:"repo" yaml:"repo"`

	// Recipes controls which recipes run and where the run report lands.
	Recipes RecipesConfig `json:"recipes" yaml:"recipes"`

	// AutoPkg locates the packaging tool.
	AutoPkg AutoPkgConfig `json:"autopkg" yaml:"autopkg"`

	// Integration holds settings for the review host and notification sink.
	Integration IntegrationConfig `json:"integration" yaml:"integration"`

	// Logging contains log level and output format settings.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// RepoConfig locates the single working tree and its trunk branch.
type RepoConfig struct {
	// Dir is the path of the munki repo checkout. Required.
	Dir string `json:"dir" yaml:"dir"`

	// Trunk is the branch feature branches are created from and review
	// requests target. Default: main
	Trunk string `json:"trunk" yaml:"trunk"`
}

// RecipesConfig selects the recipes to process.
type RecipesConfig struct {
	// List is an explicit recipe list. Empty means recipes are discovered
	// under OverridesDir.
	List []string `json:"list,omitempty" yaml:"list,omitempty"`

	// OverridesDir is scanned for .recipe files when List is empty.
	// Default: autopkg/RecipeOverrides
	OverridesDir string `json:"overrides_dir" yaml:"overrides_dir"`

	// ReportPath is where each AutoPkg run writes its report plist.
	// Default: report.plist
	ReportPath string `json:"report_path" yaml:"report_path"`
}

// AutoPkgConfig locates the AutoPkg binary.
type AutoPkgConfig struct {
	// Path to the autopkg binary. Default: /usr/local/bin/autopkg
	Path string `json:"path" yaml:"path"`
}

// IntegrationConfig groups external service settings.
type IntegrationConfig struct {
	// GitHub configures the review-request gateway.
	GitHub GitHubConfig `json:"github" yaml:"github"`

	// Slack configures the notification sink.
	Slack SlackConfig `json:"slack" yaml:"slack"`
}

// GitHubConfig holds review host credentials and target.
type GitHubConfig struct {
	// Token authenticates review-request calls. Empty means review
	// requests are soft-skipped.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Repo is the hosted repository in owner/name form. Required when
	// Token is set.
	Repo string `json:"repo,omitempty" yaml:"repo,omitempty"`
}

// SlackConfig holds the notification webhook.
type SlackConfig struct {
	// WebhookURL receives the end-of-batch notification. Empty means the
	// notification is soft-skipped.
	WebhookURL string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty"`
}

// LoggingConfig manages log verbosity and format.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. Default: info
	Level string `json:"level" yaml:"level"`

	// Format is text or json. Default: text
	Format string `json:"format" yaml:"format"`

	// Verbose forces debug-level output.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Quiet suppresses everything below warn.
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// Environment variable names consumed by the EnvParser.
const (
	EnvRepoDir      = "CONVEYOR_REPO_DIR"
	EnvTrunkBranch  = "CONVEYOR_TRUNK_BRANCH"
	EnvRecipes      = "CONVEYOR_RECIPES"
	EnvOverridesDir = "CONVEYOR_OVERRIDES_DIR"
	EnvReportPath   = "CONVEYOR_REPORT_PATH"
	EnvAutoPkgPath  = "CONVEYOR_AUTOPKG_PATH"
	EnvGitHubToken  = "CONVEYOR_GITHUB_TOKEN"
	EnvReviewRepo   = "CONVEYOR_REVIEW_REPO"
	EnvSlackWebhook = "CONVEYOR_SLACK_WEBHOOK"
	EnvLogLevel     = "CONVEYOR_LOG_LEVEL"
	EnvLogFormat    = "CONVEYOR_LOG_FORMAT"
	EnvVerbose      = "CONVEYOR_VERBOSE"
	EnvQuiet        = "CONVEYOR_QUIET"

	// Fallbacks honored for compatibility with CI environments that
	// already export the classic variables.
	EnvGitHubTokenFallback  = "GITHUB_TOKEN"
	EnvRecipesFallback      = "INPUT_RECIPES"
	EnvSlackWebhookFallback = "SLACK_WEBHOOK"
	EnvWorkspaceFallback    = "GITHUB_WORKSPACE"
)
