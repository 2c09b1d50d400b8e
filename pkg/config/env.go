package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvParser overlays environment variables onto a Config. The getter is
// injectable so tests can run against a fixed environment.
type EnvParser struct {
	getEnv func(string) string
}

// NewEnvParser creates an environment parser backed by the process env.
func NewEnvParser() *EnvParser {
	return &EnvParser{getEnv: os.Getenv}
}

// NewEnvParserWithGetter creates an environment parser with a custom getter.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{getEnv: getter}
}

// Apply overlays all recognized environment variables onto config.
func (p *EnvParser) Apply(config *Config) {
	p.applyRepo(config)
	p.applyRecipes(config)
	p.applyIntegration(config)
	p.applyLogging(config)
}

func (p *EnvParser) applyRepo(config *Config) {
	if dir := p.getEnv(EnvRepoDir); dir != "" {
		config.Repo.Dir = dir
	} else if workspace := p.getEnv(EnvWorkspaceFallback); workspace != "" {
		// CI convention: the munki repo is checked out inside the
		// workspace directory.
		config.Repo.Dir = filepath.Join(workspace, "munki_repo")
	}

	if trunk := p.getEnv(EnvTrunkBranch); trunk != "" {
		config.Repo.Trunk = trunk
	}
}

func (p *EnvParser) applyRecipes(config *Config) {
	recipes := p.getEnv(EnvRecipes)
	if recipes == "" {
		recipes = p.getEnv(EnvRecipesFallback)
	}
	if recipes != "" {
		config.Recipes.List = strings.Fields(recipes)
	}

	if dir := p.getEnv(EnvOverridesDir); dir != "" {
		config.Recipes.OverridesDir = dir
	}
	if path := p.getEnv(EnvReportPath); path != "" {
		config.Recipes.ReportPath = path
	}
	if path := p.getEnv(EnvAutoPkgPath); path != "" {
		config.AutoPkg.Path = path
	}
}

func (p *EnvParser) applyIntegration(config *Config) {
	token := p.getEnv(EnvGitHubToken)
	if token == "" {
		token = p.getEnv(EnvGitHubTokenFallback)
	}
	if token != "" {
		config.Integration.GitHub.Token = strings.TrimSpace(token)
	}

	if repo := p.getEnv(EnvReviewRepo); repo != "" {
		config.Integration.GitHub.Repo = repo
	}

	webhook := p.getEnv(EnvSlackWebhook)
	if webhook == "" {
		webhook = p.getEnv(EnvSlackWebhookFallback)
	}
	if webhook != "" {
		config.Integration.Slack.WebhookURL = webhook
	}
}

func (p *EnvParser) applyLogging(config *Config) {
	if level := p.getEnv(EnvLogLevel); level != "" {
		config.Logging.Level = level
	}
	if format := p.getEnv(EnvLogFormat); format != "" {
		config.Logging.Format = format
	}
	if verbose := p.getEnv(EnvVerbose); isTruthy(verbose) {
		config.Logging.Verbose = true
	}
	if quiet := p.getEnv(EnvQuiet); isTruthy(quiet) {
		config.Logging.Quiet = true
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
