package config

import (
	"testing"

	"github.com/spf13/cobra"
)

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, args []string) {}}
	AddFlags(cmd)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute command: %v", err)
	}
	return cmd
}

func TestBuilderPrecedence(t *testing.T) {
	env := NewEnvParserWithGetter(envGetter(map[string]string{
		EnvRepoDir:     "/from/env",
		EnvTrunkBranch: "env-trunk",
	}))
	cmd := newFlagCommand(t, "--trunk-branch", "flag-trunk")

	config, err := NewBuilder().
		FromEnvParser(env).
		FromFlags(cmd).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Env sets what flags don't touch; flags win where both set.
	if config.Repo.Dir != "/from/env" {
		t.Errorf("Repo.Dir = %q, want env value", config.Repo.Dir)
	}
	if config.Repo.Trunk != "flag-trunk" {
		t.Errorf("Repo.Trunk = %q, want flag value", config.Repo.Trunk)
	}
}

func TestBuilderValidatesResult(t *testing.T) {
	// No sources set the required repo dir.
	if _, err := NewBuilder().Build(); err == nil {
		t.Error("expected validation error for missing repo dir")
	}
}

func TestApplyFlagsOnlyChangedValues(t *testing.T) {
	cmd := newFlagCommand(t, "--recipes", "Foo.munki.recipe,Bar.munki.recipe")

	config := New()
	config.Repo.Trunk = "keep-me"
	if err := ApplyFlags(cmd, config); err != nil {
		t.Fatalf("ApplyFlags: %v", err)
	}

	if len(config.Recipes.List) != 2 {
		t.Errorf("Recipes.List = %v", config.Recipes.List)
	}
	if config.Repo.Trunk != "keep-me" {
		t.Errorf("unset flag must not clobber value, Trunk = %q", config.Repo.Trunk)
	}
}
