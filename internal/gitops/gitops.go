// Package gitops shells out to git for the optional publish step after a
// content edit. The site deploys straight from the repository, so a push is
// all "publishing" means here.
package gitops

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitError wraps a failed git invocation with its combined output.
type GitError struct {
	Args   []string
	Output string
	Err    error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, strings.TrimSpace(e.Output))
}

func (e *GitError) Unwrap() error { return e.Err }

// Result reports what was committed.
type Result struct {
	Status  string   `json:"status"`
	Paths   []string `json:"paths"`
	Message string   `json:"message"`
}

// StageCommitPush stages the given paths, commits with message, and pushes.
// A no-op diff (nothing staged) is reported as status "unchanged" rather
// than an error.
func StageCommitPush(ctx context.Context, repoRoot string, paths []string, message string) (Result, error) {
	if len(paths) == 0 {
		return Result{}, &GitError{Args: []string{"add"}, Err: fmt.Errorf("no paths to stage")}
	}
	if _, err := run(ctx, repoRoot, append([]string{"add", "--"}, paths...)...); err != nil {
		return Result{}, err
	}

	// diff --cached --quiet exits zero only when nothing is staged.
	if _, err := run(ctx, repoRoot, "diff", "--cached", "--quiet"); err == nil {
		return Result{Status: "unchanged", Paths: paths, Message: message}, nil
	}

	if _, err := run(ctx, repoRoot, "commit", "-m", message); err != nil {
		return Result{}, err
	}
	if _, err := run(ctx, repoRoot, "push"); err != nil {
		return Result{}, err
	}
	return Result{Status: "ok", Paths: paths, Message: message}, nil
}

func run(ctx context.Context, repoRoot string, args ...string) (string, error) {
	full := append([]string{"-C", repoRoot}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return out.String(), &GitError{Args: args, Output: out.String(), Err: err}
	}
	return out.String(), nil
}
