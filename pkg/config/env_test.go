package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envGetter(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestEnvParserApply(t *testing.T) {
	parser := NewEnvParserWithGetter(envGetter(map[string]string{
		EnvRepoDir:      "/srv/munki_repo",
		EnvTrunkBranch:  "master",
		EnvRecipes:      "Foo.munki.recipe Bar.munki.recipe",
		EnvGitHubToken:  "tok-123",
		EnvReviewRepo:   "org/munki_repo",
		EnvSlackWebhook: "https://hooks.slack.example/abc",
		EnvLogLevel:     "debug",
		EnvVerbose:      "true",
	}))

	config := New()
	parser.Apply(config)

	if config.Repo.Dir != "/srv/munki_repo" {
		t.Errorf("Repo.Dir = %q", config.Repo.Dir)
	}
	if config.Repo.Trunk != "master" {
		t.Errorf("Repo.Trunk = %q", config.Repo.Trunk)
	}
	want := []string{"Foo.munki.recipe", "Bar.munki.recipe"}
	if diff := cmp.Diff(want, config.Recipes.List); diff != "" {
		t.Errorf("Recipes.List mismatch (-want +got):\n%s", diff)
	}
	if config.Integration.GitHub.Token != "tok-123" {
		t.Errorf("GitHub.Token = %q", config.Integration.GitHub.Token)
	}
	if config.Integration.Slack.WebhookURL != "https://hooks.slack.example/abc" {
		t.Errorf("Slack.WebhookURL = %q", config.Integration.Slack.WebhookURL)
	}
	if config.Logging.Level != "debug" || !config.Logging.Verbose {
		t.Errorf("Logging = %+v", config.Logging)
	}
}

func TestEnvParserFallbacks(t *testing.T) {
	parser := NewEnvParserWithGetter(envGetter(map[string]string{
		EnvWorkspaceFallback:    "/github/workspace",
		EnvRecipesFallback:      "Baz.munki.recipe",
		EnvGitHubTokenFallback:  "classic-token",
		EnvSlackWebhookFallback: "https://hooks.slack.example/legacy",
	}))

	config := New()
	parser.Apply(config)

	if got, want := config.Repo.Dir, filepath.Join("/github/workspace", "munki_repo"); got != want {
		t.Errorf("Repo.Dir = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"Baz.munki.recipe"}, config.Recipes.List); diff != "" {
		t.Errorf("Recipes.List mismatch (-want +got):\n%s", diff)
	}
	if config.Integration.GitHub.Token != "classic-token" {
		t.Errorf("GitHub.Token = %q", config.Integration.GitHub.Token)
	}
	if config.Integration.Slack.WebhookURL != "https://hooks.slack.example/legacy" {
		t.Errorf("Slack.WebhookURL = %q", config.Integration.Slack.WebhookURL)
	}
}

func TestEnvParserNamespacedWinsOverFallback(t *testing.T) {
	parser := NewEnvParserWithGetter(envGetter(map[string]string{
		EnvGitHubToken:         "namespaced",
		EnvGitHubTokenFallback: "classic",
	}))

	config := New()
	parser.Apply(config)

	if config.Integration.GitHub.Token != "namespaced" {
		t.Errorf("GitHub.Token = %q, want %q", config.Integration.GitHub.Token, "namespaced")
	}
}

func TestEnvParserLeavesDefaults(t *testing.T) {
	parser := NewEnvParserWithGetter(envGetter(nil))

	config := New()
	parser.Apply(config)

	if config.Repo.Trunk != "main" {
		t.Errorf("Repo.Trunk = %q, want default", config.Repo.Trunk)
	}
	if config.Recipes.ReportPath != "report.plist" {
		t.Errorf("ReportPath = %q, want default", config.Recipes.ReportPath)
	}
	if config.AutoPkg.Path != "/usr/local/bin/autopkg" {
		t.Errorf("AutoPkg.Path = %q, want default", config.AutoPkg.Path)
	}
}
