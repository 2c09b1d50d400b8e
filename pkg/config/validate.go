package config

import (
	"fmt"
	"strings"
)

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks the built configuration, aggregating all problems into
// one error.
func Validate(config *Config) error {
	var errs []string

	if config.Repo.Dir == "" {
		errs = append(errs, "repo dir is required (set --repo-dir or "+EnvRepoDir+")")
	}
	if config.Repo.Trunk == "" {
		errs = append(errs, "trunk branch must not be empty")
	}
	if config.Recipes.ReportPath == "" {
		errs = append(errs, "report path must not be empty")
	}
	if config.AutoPkg.Path == "" {
		errs = append(errs, "autopkg path must not be empty")
	}

	if !validLevels[config.Logging.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level %q", config.Logging.Level))
	}
	if !validFormats[config.Logging.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format %q", config.Logging.Format))
	}

	if config.Integration.GitHub.Token != "" {
		repo := config.Integration.GitHub.Repo
		if parts := strings.Split(repo, "/"); len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			errs = append(errs, fmt.Sprintf("review repo must be owner/name, got %q", repo))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
