package gitops

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRepo builds a working clone wired to a local bare remote so push
// has somewhere to go.
func newTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	base := t.TempDir()
	remote := filepath.Join(base, "remote.git")
	work := filepath.Join(base, "work")

	git(t, base, "init", "--bare", "--initial-branch=main", remote)
	git(t, base, "clone", remote, work)
	git(t, work, "config", "user.email", "test@example.com")
	git(t, work, "config", "user.name", "Test")
	git(t, work, "checkout", "-b", "main")

	require.NoError(t, os.WriteFile(filepath.Join(work, "README.md"), []byte("seed\n"), 0o644))
	git(t, work, "add", "README.md")
	git(t, work, "commit", "-m", "seed")
	git(t, work, "push", "-u", "origin", "main")
	return work
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func TestStageCommitPush(t *testing.T) {
	t.Parallel()

	work := newTestRepo(t)
	path := filepath.Join("content", "site.json")
	require.NoError(t, os.MkdirAll(filepath.Join(work, "content"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, path), []byte(`{}`), 0o644))

	res, err := StageCommitPush(context.Background(), work, []string{path}, "AI update: site.json (replace)")
	require.NoError(t, err)
	require.Equal(t, "ok", res.Status)
	require.Equal(t, []string{path}, res.Paths)

	// The commit made it to the remote.
	cmd := exec.Command("git", "-C", work, "log", "--oneline", "origin/main")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err)
	require.Contains(t, string(out), "AI update: site.json (replace)")
}

func TestStageCommitPushUnchanged(t *testing.T) {
	t.Parallel()

	work := newTestRepo(t)
	res, err := StageCommitPush(context.Background(), work, []string{"README.md"}, "no-op")
	require.NoError(t, err)
	require.Equal(t, "unchanged", res.Status)
}

func TestStageCommitPushNoPaths(t *testing.T) {
	t.Parallel()

	_, err := StageCommitPush(context.Background(), t.TempDir(), nil, "msg")
	var ge *GitError
	require.ErrorAs(t, err, &ge)
}

func TestStageCommitPushBadPath(t *testing.T) {
	t.Parallel()

	work := newTestRepo(t)
	_, err := StageCommitPush(context.Background(), work, []string{"missing.json"}, "msg")
	var ge *GitError
	require.ErrorAs(t, err, &ge)
	require.Contains(t, ge.Output, "missing.json")
}
