// Package config builds the process configuration from defaults, an
// optional YAML file, environment variables and command-line flags, in that
// precedence order.
package config

import "github.com/spf13/cobra"

// Builder layers configuration sources onto the defaults.
type Builder struct {
	filePath string
	useFile  bool
	env      *EnvParser
	cmd      *cobra.Command
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// FromFile enables the YAML file source. An empty path probes for the
// default file name.
func (b *Builder) FromFile(path string) *Builder {
	b.filePath = path
	b.useFile = true
	return b
}

// FromEnv enables the environment source.
func (b *Builder) FromEnv() *Builder {
	b.env = NewEnvParser()
	return b
}

// FromEnvParser enables the environment source with a custom parser.
func (b *Builder) FromEnvParser(parser *EnvParser) *Builder {
	b.env = parser
	return b
}

// FromFlags enables the flag source, the highest-precedence layer.
func (b *Builder) FromFlags(cmd *cobra.Command) *Builder {
	b.cmd = cmd
	return b
}

// Build assembles and validates the configuration.
func (b *Builder) Build() (*Config, error) {
	config := New()

	if b.useFile {
		path := b.filePath
		if b.cmd != nil && b.cmd.Flags().Changed("config") {
			path, _ = b.cmd.Flags().GetString("config")
		}
		if err := LoadFile(path, config); err != nil {
			return nil, err
		}
	}

	if b.env != nil {
		b.env.Apply(config)
	}

	if b.cmd != nil {
		if err := ApplyFlags(b.cmd, config); err != nil {
			return nil, err
		}
	}

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}
