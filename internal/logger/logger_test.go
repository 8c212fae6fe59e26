package logger_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"swept-aabb/internal/logger"
)

func TestLogger(t *testing.T) {
	t.Chdir(t.TempDir())

	l := logger.New()
	l.Log("start: step=0.0120")
	l.Logf("impact: t=%.4f normal=(%.0f, %.0f)", 0.8, 1.0, 0.0)

	lines := l.Lines()
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "start: step=0.0120")
	require.Contains(t, lines[1], "impact: t=0.8000 normal=(1, 0)")
	// Entries carry a [timestamp] prefix.
	require.True(t, strings.HasPrefix(lines[0], "["))

	data, err := os.ReadFile(logger.LogFilePath)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), "\n"))
}
