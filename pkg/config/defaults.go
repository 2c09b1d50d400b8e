package config

// New returns a Config populated with defaults. Sources layered on top
// (file, environment, flags) override individual fields.
func New() *Config {
	return &Config{
		Repo: RepoConfig{
			Trunk: "main",
		},
		Recipes: RecipesConfig{
			OverridesDir: "autopkg/RecipeOverrides",
			ReportPath:   "report.plist",
		},
		AutoPkg: AutoPkgConfig{
			Path: "/usr/local/bin/autopkg",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
