package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// AssertFileExists asserts that a regular file exists at path.
func AssertFileExists(t testing.TB, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "expected file to exist: %s", path)
	assert.False(t, info.IsDir(), "expected file but got directory: %s", path)
}

// AssertFileContains asserts that the file at path contains expected.
func AssertFileContains(t testing.TB, path, expected string, msgAndArgs ...interface{}) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file: %s", path)
	assert.Contains(t, string(content), expected, msgAndArgs...)
}

// AssertYAMLEquals asserts that two YAML documents decode to the same value.
func AssertYAMLEquals(t testing.TB, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var want, got interface{}
	require.NoError(t, yaml.Unmarshal([]byte(expected), &want), "failed to parse expected YAML")
	require.NoError(t, yaml.Unmarshal([]byte(actual), &got), "failed to parse actual YAML")
	assert.Equal(t, want, got, msgAndArgs...)
}

// AssertEventually polls condition every 10ms until it holds or timeout
// passes.
func AssertEventually(t testing.TB, condition func() bool, timeout time.Duration, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Eventually(t, condition, timeout, 10*time.Millisecond, msgAndArgs...)
}
