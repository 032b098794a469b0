package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_WritesEveryLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	stdout, stderr, err := execute(t, "--file", path, "--producers", "3", "--lines", "10", "--zap-summary=false")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, fmt.Sprintf("wrote 30 lines to %s (dropped 0)\n", path), stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 30)
	for id := 0; id < 3; id++ {
		for i := 0; i < 10; i++ {
			assert.Contains(t, lines, fmt.Sprintf("Log entry %d from thread %d", i, id))
		}
	}
}

func TestRun_ZapSummaryIsLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	_, _, err := execute(t, "-f", path, "-p", "2", "-n", "5")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 11)

	last := lines[len(lines)-1]
	assert.Contains(t, last, "producers finished")
	assert.Contains(t, last, `"producers": 2`)
}

func TestRun_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "log.txt")

	stdout, stderr, err := execute(t, "--file", path, "-p", "2", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 0 lines")
	assert.Contains(t, stdout, "sink stopped early")
	assert.Contains(t, stderr, "log sink stopped writing")
}

func TestRun_RejectsNegativeCounts(t *testing.T) {
	_, _, err := execute(t, "--producers=-1")
	require.Error(t, err)
}
