package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/kwsearch/internal/json"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

func TestSearchCmd_PlainOutput(t *testing.T) {
	newWorkspace(t)

	stdout, _, err := executeCommand(t, "", "search", "notes.txt", "MCP")
	require.NoError(t, err)
	assert.Equal(t, "Found 2 match(es) for 'MCP' in notes.txt.\n2: beta [MCP] here\n4: [MCP] again\n", stdout)
}

func TestSearchCmd_ContextOutput(t *testing.T) {
	newWorkspace(t)

	stdout, _, err := executeCommand(t, "", "search", "notes.txt", "mcp", "-C", "1")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Found 2 match(es) for 'mcp' in notes.txt.",
		"1- alpha",
		"2: beta [MCP] here",
		"3- gamma",
		"--",
		"3- gamma",
		"4: [MCP] again",
		"",
	}, "\n"), stdout)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	newWorkspace(t)

	stdout, _, err := executeCommand(t, "", "search", "notes.txt", "MCP", "--json", "-m", "1", "-C", "1")
	require.NoError(t, err)

	var result kwsearch.SearchResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, kwsearch.SearchResult{
		TotalMatches: 1,
		Matches: []kwsearch.MatchRecord{
			{LineNumber: 2, Column: 6, Line: "beta MCP here", ContextBefore: []string{"alpha"}, ContextAfter: []string{"gamma"}},
		},
	}, result)
}

func TestSearchCmd_CaseSensitiveNoMatches(t *testing.T) {
	newWorkspace(t)

	stdout, _, err := executeCommand(t, "", "search", "notes.txt", "mcp", "--case-sensitive")
	require.NoError(t, err, "zero matches is success")
	assert.Equal(t, "No matches for 'mcp' in notes.txt (case sensitive search).\n", stdout)
}

func TestSearchCmd_WorkspaceRootFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("needle\n"), 0o644))
	t.Setenv(kwsearch.WorkspaceRootEnv, t.TempDir())

	stdout, _, err := executeCommand(t, "", "search", "a.txt", "needle", "--workspace-root", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1: [needle]")
}

func TestSearchCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"explicit zero max matches", []string{"search", "notes.txt", "MCP", "-m", "0"}, kwsearch.ExitInvalidArgument},
		{"max matches over ceiling", []string{"search", "notes.txt", "MCP", "-m", "501"}, kwsearch.ExitInvalidArgument},
		{"negative context", []string{"search", "notes.txt", "MCP", "-C", "-1"}, kwsearch.ExitInvalidArgument},
		{"empty keyword", []string{"search", "notes.txt", ""}, kwsearch.ExitInvalidArgument},
		{"json with interactive", []string{"search", "notes.txt", "MCP", "--json", "-i"}, kwsearch.ExitInvalidArgument},
		{"interactive without terminal", []string{"search", "notes.txt", "MCP", "-i"}, kwsearch.ExitInvalidArgument},
		{"missing file", []string{"search", "missing.txt", "MCP"}, kwsearch.ExitResourceUnavailable},
		{"outside root", []string{"search", "../notes.txt", "MCP"}, kwsearch.ExitResourceUnavailable},
		{"missing keyword", []string{"search", "notes.txt"}, kwsearch.ExitUsageError},
		{"too many args", []string{"search", "a", "b", "c"}, kwsearch.ExitUsageError},
		{"unknown flag", []string{"search", "notes.txt", "MCP", "--regex"}, kwsearch.ExitUsageError},
		{"non-numeric max matches", []string{"search", "notes.txt", "MCP", "-m", "many"}, kwsearch.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newWorkspace(t)
			t.Setenv("KWSEARCH_NON_INTERACTIVE", "1")

			_, _, err := executeCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, kwsearch.ExitCodeForError(err), "error: %v", err)
		})
	}
}

func TestSearchCmd_ConfigLowersCeiling(t *testing.T) {
	dir := newWorkspace(t)
	cfgPath := filepath.Join(dir, "kwsearch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("limits:\n  max_matches: 1\n"), 0o644))

	stdout, _, err := executeCommand(t, "", "search", "notes.txt", "MCP", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 1 match(es)", "default is clamped to the lowered ceiling")

	_, _, err = executeCommand(t, "", "search", "notes.txt", "MCP", "--config", cfgPath, "-m", "2")
	require.Error(t, err)
	assert.Equal(t, kwsearch.ExitInvalidArgument, kwsearch.ExitCodeForError(err))
}

func TestSearchCmd_InvalidConfig(t *testing.T) {
	dir := newWorkspace(t)

	raised := filepath.Join(dir, "raised.yaml")
	require.NoError(t, os.WriteFile(raised, []byte("limits:\n  max_matches: 1000\n"), 0o644))
	_, _, err := executeCommand(t, "", "search", "notes.txt", "MCP", "--config", raised)
	require.ErrorIs(t, err, kwsearch.ErrInvalidConfig)

	_, _, err = executeCommand(t, "", "search", "notes.txt", "MCP", "--config", filepath.Join(dir, "absent.yaml"))
	require.ErrorIs(t, err, kwsearch.ErrInvalidConfig)
	assert.Equal(t, kwsearch.ExitInvalidArgument, kwsearch.ExitCodeForError(err))
}

func TestSearchCmd_VerboseLogsToStderr(t *testing.T) {
	newWorkspace(t)

	stdout, stderr, err := executeCommand(t, "", "search", "notes.txt", "MCP", "-v")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "[VERBOSE]")
	assert.Contains(t, stderr, "[VERBOSE] Workspace root:")
}
