// Package cocoapods shells out to the external pod binary. The merge
// engine never touches it; this is the outer collaborator that turns a
// freshly merged Podfile into installed pods.
package cocoapods

import (
	"context"
	"os/exec"
	"time"

	"github.com/arthur-debert/podmerge/pkg/errors"
	"github.com/arthur-debert/podmerge/pkg/logging"
)

// DefaultTimeout bounds a pod install run.
const DefaultTimeout = 5 * time.Minute

// Runner invokes the pod binary.
type Runner struct {
	binary  string
	timeout time.Duration
}

// NewRunner creates a runner for the given pod binary path ("pod" to
// use PATH lookup). A zero timeout selects DefaultTimeout.
func NewRunner(binary string, timeout time.Duration) *Runner {
	if binary == "" {
		binary = "pod"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{binary: binary, timeout: timeout}
}

// Available verifies the pod binary can be found.
func (r *Runner) Available() error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return errors.Wrapf(err, errors.ErrPodNotFound, "pod binary %q not found; install CocoaPods first", r.binary)
	}
	return nil
}

// Install runs pod install against the given project directory.
func (r *Runner) Install(ctx context.Context, projectDir string) error {
	logger := logging.GetLogger("cocoapods")

	if err := r.Available(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary, "install", "--project-directory="+projectDir)
	logger.Info().
		Str("binary", r.binary).
		Str("projectDir", projectDir).
		Msg("running pod install")

	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		logger.Debug().Str("output", string(out)).Msg("pod install output")
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrPodInstall, "pod install failed in %q", projectDir).
			WithDetail("output", string(out))
	}

	logger.Info().Str("projectDir", projectDir).Msg("pod install completed")
	return nil
}
