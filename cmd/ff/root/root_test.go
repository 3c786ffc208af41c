package root

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/limbo/focusflow/pkg/cleanup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	cleanup.CleanUp()
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ff.db"))
	t.Setenv("API_KEY", "")
}

func TestAddDoneAndDay(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "add", "Buy", "milk", "--date", "2025-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")

	tasks := current.app.Store.Tasks()
	require.Len(t, tasks, 1)
	id := tasks[0].ID

	out, err = run(t, "done", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "+10 xp")

	out, err = run(t, "day", "2025-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "1 done, 0 open")

	out, err = run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "10/100")
}

func TestMoneyCommands(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "earn", "50", "freelance", "--date", "2025-06-01")
	require.NoError(t, err)
	_, err = run(t, "spend", "20", "groceries", "--date", "2025-06-01")
	require.NoError(t, err)

	out, err := run(t, "balance")
	require.NoError(t, err)
	assert.Contains(t, out, "+30.00")

	_, err = run(t, "spend", "-3")
	assert.Error(t, err)
}

func TestConfirmations(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "add", "temp")
	require.NoError(t, err)
	id := current.app.Store.Tasks()[0].ID

	_, err = run(t, "rm", id)
	assert.Error(t, err)
	_, err = run(t, "reset")
	assert.Error(t, err)
	assert.Len(t, current.app.Store.Tasks(), 1)

	_, err = run(t, "rm", id, "--yes")
	require.NoError(t, err)
	assert.Empty(t, current.app.Store.Tasks())
}

func TestJournalCommand(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "journal", "2025-06-01", "-g", "sunshine", "-g", "tea", "-t", "calm day")
	require.NoError(t, err)
	assert.Contains(t, out, "1. sunshine")
	assert.Contains(t, out, "2. tea")
	assert.True(t, strings.Contains(out, "calm day"))

	_, err = run(t, "journal", "2025-06-01", "-g", "a", "-g", "b", "-g", "c", "-g", "d")
	assert.Error(t, err)
}

func TestDumpWithoutAPIKey(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "dump", "call", "mom")
	assert.Error(t, err)
	assert.Empty(t, current.app.Store.Tasks())
	assert.Empty(t, current.app.Store.BrainDumps())
}

func TestResolveTaskIDAmbiguous(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "add", "one")
	require.NoError(t, err)
	_, err = resolveTaskID("")
	assert.NoError(t, err)
	_, err = run(t, "add", "two")
	require.NoError(t, err)
	_, err = resolveTaskID("")
	assert.Error(t, err)
	_, err = resolveTaskID("zzzz-not-an-id")
	assert.Error(t, err)
}
