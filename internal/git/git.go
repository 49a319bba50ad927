// Package git retrieves committed file versions to diff working copies
// against.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes git commands in a working directory.
type Runner struct {
	Dir string
}

// IsRepo returns true if the working directory is inside a git repository.
func (r *Runner) IsRepo() bool {
	_, err := r.run("rev-parse", "--git-dir")
	return err == nil
}

// ShowFile returns the content of path as committed at ref. The path is
// resolved relative to the runner's directory and must be tracked.
func (r *Runner) ShowFile(ref, path string) (string, error) {
	rel, err := r.run("ls-files", "--full-name", "--", path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", fmt.Errorf("%s is not tracked by git", path)
	}
	out, err := r.run("show", ref+":"+rel)
	if err != nil {
		return "", fmt.Errorf("reading %s at %s: %w", rel, ref, err)
	}
	return out, nil
}

func (r *Runner) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
