package processor

import (
	"context"
	"os"
	"os/exec"
)

// autopkgRunner shells out to the AutoPkg binary. Output is streamed to the
// parent's stdout/stderr so runs are observable live.
type autopkgRunner struct {
	binary string
	logger Logger
}

// NewAutoPkgRunner returns a ToolRunner that invokes the AutoPkg binary at
// the given path.
func NewAutoPkgRunner(binary string, logger Logger) ToolRunner {
	return &autopkgRunner{binary: binary, logger: logger}
}

func (r *autopkgRunner) Run(ctx context.Context, recipe, reportPath string) error {
	cmd := exec.CommandContext(ctx, r.binary, "run", "-v", recipe, "--report-plist", reportPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.logger.Info("running autopkg", "recipe", recipe)
	return cmd.Run()
}
