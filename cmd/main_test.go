package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/eduardolat/shortid"
	"github.com/eduardolat/shortid/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// runCLI executes the CLI in-process with an empty config file
func runCLI(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	configPath := writeConfig(t, "")
	return runCLIWithConfig(t, configPath, args...)
}

func runCLIWithConfig(t *testing.T, configPath string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	var out, errOut bytes.Buffer
	args = append([]string{"--config", configPath}, args...)
	code := run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRun_Default(t *testing.T) {
	stdout, _, code := runCLI(t)
	require.Equal(t, ExitSuccess, code)

	ids := lines(stdout)
	require.Len(t, ids, 1)
	assert.Len(t, ids[0], shortid.DefaultLength)
	assert.Regexp(t, idPattern, ids[0])
}

func TestRun_Count(t *testing.T) {
	stdout, _, code := runCLI(t, "--count", "50")
	require.Equal(t, ExitSuccess, code)

	ids := lines(stdout)
	require.Len(t, ids, 50)

	seen := make(map[string]bool)
	for _, id := range ids {
		assert.Len(t, id, 14)
		assert.False(t, seen[id], "duplicate ID: %s", id)
		seen[id] = true
	}
}

func TestRun_Bytes(t *testing.T) {
	tests := []struct {
		bytes string
		want  int
	}{
		{bytes: "1", want: 2},
		{bytes: "6", want: 8},
		{bytes: "16", want: 22},
		{bytes: "32", want: 43},
	}

	for _, tt := range tests {
		t.Run(tt.bytes, func(t *testing.T) {
			stdout, _, code := runCLI(t, "--bytes", tt.bytes)
			require.Equal(t, ExitSuccess, code)
			assert.Len(t, strings.TrimSpace(stdout), tt.want)
		})
	}
}

func TestRun_InvalidBytes(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero", args: []string{"--bytes", "0"}},
		{name: "above max", args: []string{"--bytes", "33"}},
		{name: "ordered below timestamp", args: []string{"--ordered", "--bytes", "7"}},
		{name: "ordered above max", args: []string{"--ordered", "--bytes", "33"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.args...)
			assert.Equal(t, ExitFailure, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "invalid byte count")
		})
	}
}

func TestRun_InvalidCount(t *testing.T) {
	_, stderr, code := runCLI(t, "--count", "0")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "invalid count")
}

func TestRun_UnknownFlag(t *testing.T) {
	_, _, code := runCLI(t, "--nope")
	assert.Equal(t, ExitFailure, code)
}

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--help"}, &out, &errOut)
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, errOut.String(), "Usage:")
	assert.Contains(t, errOut.String(), "--ordered")
}

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--version"}, &out, &errOut)
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out.String(), "Version:")
	assert.Contains(t, out.String(), "Commit:")
}

func TestRun_ConfigDefaults(t *testing.T) {
	configPath := writeConfig(t, `
defaults:
  bytes: 16
  count: 3
`)

	stdout, _, code := runCLIWithConfig(t, configPath)
	require.Equal(t, ExitSuccess, code)

	ids := lines(stdout)
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.Len(t, id, 22)
	}
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	configPath := writeConfig(t, `
defaults:
  bytes: 16
  count: 3
`)

	stdout, _, code := runCLIWithConfig(t, configPath, "--count", "2", "--bytes", "6")
	require.Equal(t, ExitSuccess, code)

	ids := lines(stdout)
	require.Len(t, ids, 2)
	for _, id := range ids {
		assert.Len(t, id, 8)
	}
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	_, stderr, code := runCLIWithConfig(t, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "failed to load configuration")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := writeConfig(t, "defaults:\n  bytes: 99\n")

	_, stderr, code := runCLIWithConfig(t, configPath)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "failed to load configuration")
}

func TestRun_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ids.txt")

	stdout, stderr, code := runCLI(t, "--count", "10", "--output", dest)
	require.Equal(t, ExitSuccess, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "IDs written")

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	ids := lines(string(content))
	assert.Len(t, ids, 10)

	stat, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), stat.Mode().Perm())
}

func TestRun_OutputFileFromConfig(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ids.txt")
	configPath := writeConfig(t, "output:\n  path: \""+dest+"\"\n  file_mode: 0600\n")

	_, _, code := runCLIWithConfig(t, configPath, "--quiet")
	require.Equal(t, ExitSuccess, code)

	stat, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())
}

func TestRun_OutputFileFailure(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "ids.txt")

	_, stderr, code := runCLI(t, "--output", dest)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "failed to write output file")
}

func TestRun_SilentSuppressesInfo(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ids.txt")

	_, stderr, code := runCLI(t, "--silent", "--output", dest)
	require.Equal(t, ExitSuccess, code)
	assert.Empty(t, stderr)
}

func TestRun_DebugLogsParameters(t *testing.T) {
	_, stderr, code := runCLI(t, "--debug", "--bytes", "16")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, "generating IDs")
	assert.Contains(t, stderr, "length=22")
}

func TestRunWithDeps_Ordered(t *testing.T) {
	frozen := time.UnixMicro(0x0102030405060708)
	d := deps{
		generator: shortid.NewGeneratorWithDeps(
			bytes.NewReader(bytes.Repeat([]byte{0xFF}, 4)),
			shortid.ClockFunc(func() time.Time { return frozen }),
		),
		writer: output.New(),
	}

	var out, errOut bytes.Buffer
	code := runWithDeps([]string{"--config", writeConfig(t, ""), "--ordered", "--count", "2"}, &out, &errOut, d)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "AQIDBAUGBwj__w\nAQIDBAUGBwj__w\n", out.String())
}

func TestRunWithDeps_ClockUnavailable(t *testing.T) {
	d := deps{
		generator: shortid.NewGeneratorWithDeps(nil, unavailable{}),
		writer:    output.New(),
	}

	var out, errOut bytes.Buffer
	code := runWithDeps([]string{"--config", writeConfig(t, ""), "--ordered"}, &out, &errOut, d)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut.String(), "failed to generate ID")
}

type unavailable struct{}

func (unavailable) Now() (time.Time, error) {
	return time.Time{}, shortid.ErrClockUnavailable
}
