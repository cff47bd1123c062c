package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/argspec/internal/cli"
	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/testutil"
)

// run executes the root command and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	testutil.IsolateXDG(t)

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "argspec version dev")
	assert.Contains(t, out, "Commit: unknown")
}

func TestBuildCmd(t *testing.T) {
	testutil.IsolateXDG(t)

	out, stderr, err := run(t, "build", "--no-defaults", "--format", "text",
		"-A", "foo@arg1,arg2/s;bar@fparg1", "-R", "foo@retval")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	expected := "argspec: 2 entries\n" +
		"  bar  fparg1\n" +
		"  foo  arg1,arg2/s\n" +
		"retspec: 1 entry\n" +
		"  foo  retval\n"
	assert.Equal(t, expected, out)
}

func TestBuildCmd_Category(t *testing.T) {
	testutil.IsolateXDG(t)

	out, _, err := run(t, "build", "--no-defaults", "--format", "text",
		"-A", "foo@arg1", "-R", "foo@retval", "--category", "rets")
	require.NoError(t, err)
	assert.Equal(t, "retspec: 1 entry\n  foo  retval\n", out)

	_, _, err = run(t, "build", "--category", "bogus")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestBuildCmd_WarnsOnSkippedRecords(t *testing.T) {
	testutil.IsolateXDG(t)

	out, stderr, err := run(t, "build", "--no-defaults", "--format", "text",
		"-A", "foo@arg1;bad@arg1/zz")
	require.NoError(t, err)
	assert.Contains(t, stderr, `skipped argspec record "bad@arg1/zz"`)
	assert.Equal(t, 1, strings.Count(stderr, "bad@arg1/zz"), "reported once: %s", stderr)
	assert.Contains(t, out, "argspec: 1 entry")
}

func TestBuildCmd_EnvTriggerKeepsRecordOrder(t *testing.T) {
	testutil.IsolateXDG(t)
	t.Setenv("ARGSPEC_TRIGGERS", "a@arg1;b@arg2")

	out, _, err := run(t, "export", "--no-defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "argspec:a@arg1;b@arg2\n")
}

func TestBuildCmd_Triggers(t *testing.T) {
	testutil.IsolateXDG(t)

	out, _, err := run(t, "build", "--no-defaults", "--format", "text",
		"-T", "foo@trace-on,arg1/x,retval", "-T", "bar@depth=1,arg2")
	require.NoError(t, err)

	expected := "argspec: 2 entries\n" +
		"  bar  arg2\n" +
		"  foo  arg1/x\n" +
		"retspec: 1 entry\n" +
		"  foo  retval\n"
	assert.Equal(t, expected, out)
}

func TestLookupCmd_Defaults(t *testing.T) {
	testutil.IsolateXDG(t)

	out, _, err := run(t, "lookup", "malloc", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "malloc [argspec]")
	assert.Contains(t, out, "specs: arg1/u")
	assert.Contains(t, out, "malloc [retspec]")
	assert.Contains(t, out, "specs: retval/x")
}

func TestLookupCmd_QuietStderr(t *testing.T) {
	testutil.IsolateXDG(t)

	_, stderr, err := run(t, "lookup", "malloc", "--format", "text")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestLookupCmd_VerboseLogsConfig(t *testing.T) {
	testutil.IsolateXDG(t)

	_, stderr, err := run(t, "lookup", "malloc", "--format", "text", "-vvv")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Configuration resolved")
}

func TestLookupCmd_OutputConfig(t *testing.T) {
	env := testutil.IsolateXDG(t)
	testutil.CreateFile(t, env.ConfigHome, "argspec/config.toml", `
[output]
format = "json"
`)

	out, _, err := run(t, "lookup", "malloc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), out)
	assert.Contains(t, out, `"name": "malloc"`)

	out, _, err = run(t, "lookup", "malloc", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "malloc [argspec]")
}

func TestRootCmd_BadFormat(t *testing.T) {
	testutil.IsolateXDG(t)

	_, _, err := run(t, "lookup", "malloc", "--format", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLookupCmd_NotFound(t *testing.T) {
	testutil.IsolateXDG(t)

	_, _, err := run(t, "lookup", "no_such_function", "--no-defaults")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestLookupCmd_ConfigFile(t *testing.T) {
	env := testutil.IsolateXDG(t)
	testutil.CreateFile(t, env.ConfigHome, "argspec/config.toml", `
use_defaults = false
auto_args = "mine@arg1/s,arg2/i32"
`)

	out, _, err := run(t, "lookup", "mine", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "specs: arg1/s, arg2/i32")

	_, _, err = run(t, "lookup", "malloc")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestExtractCmd(t *testing.T) {
	testutil.IsolateXDG(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "argument and retval",
			args:     []string{"extract", "foo@arg1,retval"},
			expected: "argspec: foo@arg1\nretspec: foo@retval\nstatus:  2\n",
		},
		{
			name:     "other actions dropped",
			args:     []string{"extract", "foo@trace-on;bar@depth=2,arg1/s,trace-off,arg2/x64"},
			expected: "argspec: bar@arg1/s,arg2/x64\nretspec: (none)\nstatus:  1\n",
		},
		{
			name:     "existing specs appended",
			args:     []string{"extract", "foo@arg1", "--existing-args", "old@arg2"},
			expected: "argspec: foo@arg1;old@arg2\nretspec: (none)\nstatus:  1\n",
		},
		{
			name:     "nothing extracted",
			args:     []string{"extract", "foo@backtrace"},
			expected: "argspec: (none)\nretspec: (none)\nstatus:  0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append(tt.args, "--format", "text")...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestExtractCmd_JSON(t *testing.T) {
	testutil.IsolateXDG(t)

	out, _, err := run(t, "extract", "foo@arg1,retval", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"argspec":"foo@arg1","retspec":"foo@retval","status":2}`, out)
}

func TestExportImportCmd(t *testing.T) {
	testutil.IsolateXDG(t)

	out, _, err := run(t, "export", "--no-defaults", "-A", "foo@arg1", "-T", "bar@arg2,retval")
	require.NoError(t, err)
	assert.Equal(t, "argspec:bar@arg2\nretspec:bar@retval\nauto-args:foo@arg1\n", out)

	for _, as := range []string{"info", "toml", "yaml", "xml"} {
		t.Run(as, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "info."+as)
			_, _, err := run(t, "export", "--no-defaults", "-A", "foo@arg1",
				"-T", "bar@arg2,retval", "--as", as, "-o", path)
			require.NoError(t, err)
			require.True(t, testutil.FileExists(t, path))

			out, _, err := run(t, "import", path, "--as", as, "--format", "text")
			require.NoError(t, err)

			expected := "argspec: 2 entries\n" +
				"  bar  arg2\n" +
				"  foo  arg1\n" +
				"retspec: 1 entry\n" +
				"  bar  retval\n"
			assert.Equal(t, expected, out)
		})
	}
}

func TestImportCmd_MissingFile(t *testing.T) {
	testutil.IsolateXDG(t)

	_, _, err := run(t, "import", filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
}

func TestExportCmd_BadFormat(t *testing.T) {
	testutil.IsolateXDG(t)

	_, _, err := run(t, "export", "--as", "json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmd_BadConfig(t *testing.T) {
	testutil.IsolateXDG(t)

	_, _, err := run(t, "build", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestReplayCmd(t *testing.T) {
	testutil.IsolateXDG(t)

	out, _, err := run(t, "replay", "--no-defaults", "-A", "foo@arg1,arg2/s", "-R", "bar@retval/x", "foo", "bar")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)

	events := make([]map[string]interface{}, len(lines))
	for i, line := range lines {
		require.NoError(t, json.Unmarshal([]byte(line), &events[i]), line)
	}

	assert.Equal(t, "Script session started", events[0]["message"])

	assert.Equal(t, "entry", events[1]["message"])
	assert.Equal(t, "foo", events[1]["symname"])
	assert.Equal(t, []interface{}{"arg1", "arg2/s"}, events[1]["args"])

	assert.Equal(t, "entry", events[2]["message"])
	assert.Equal(t, "bar", events[2]["symname"])
	assert.NotContains(t, events[2], "args")

	assert.Equal(t, "exit", events[3]["message"])
	assert.Equal(t, "bar", events[3]["symname"])
	assert.Equal(t, []interface{}{"retval/x"}, events[3]["args"])
	assert.Contains(t, events[3], "duration")

	assert.Equal(t, "exit", events[4]["message"])
	assert.Equal(t, "foo", events[4]["symname"])
	assert.NotContains(t, events[4], "args")

	assert.Equal(t, "Script session ended", events[5]["message"])
}

func TestReplayCmd_NeedsFunction(t *testing.T) {
	testutil.IsolateXDG(t)

	_, _, err := run(t, "replay")
	assert.Error(t, err)
}
