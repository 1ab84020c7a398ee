package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/pwtool/internal/config"
	"github.com/vaultpass/pwtool/internal/crypto"
	"github.com/vaultpass/pwtool/internal/model"
	"github.com/vaultpass/pwtool/internal/strength"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd(config.Config{DefaultLength: 12})
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := execute(t, "", "generate")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 12)
}

func TestGenerateCommand_Flags(t *testing.T) {
	out, _, err := execute(t, "", "generate", "--length", "20", "--special=false", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	alphabet := crypto.Alphabet(crypto.GeneratorOptions{Digits: true})
	for _, line := range lines {
		assert.Len(t, line, 20)
		for _, ch := range line {
			assert.Contains(t, alphabet, string(ch))
		}
	}
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "letters only", args: []string{"generate", "--digits=false", "--special=false"}, want: "digits or special"},
		{name: "too short", args: []string{"generate", "-l", "7"}, want: "at least 8"},
		{name: "too long", args: []string{"generate", "-l", "500"}, want: "between 8 and 128"},
		{name: "bad count", args: []string{"generate", "-n", "0"}, want: "count must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, out)
		})
	}
}

func TestGenerateCommand_Copy(t *testing.T) {
	orig := copyToClipboard
	t.Cleanup(func() { copyToClipboard = orig })

	var copied string
	copyToClipboard = func(text string) bool {
		copied = text
		return true
	}
	out, stderr, err := execute(t, "", "generate", "--copy", "-n", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, lines[len(lines)-1], copied)
	assert.Contains(t, stderr, "Copied")

	copyToClipboard = func(string) bool { return false }
	_, stderr, err = execute(t, "", "generate", "--copy")
	require.NoError(t, err, "clipboard failure must not fail the command")
	assert.Contains(t, stderr, "could not copy")
}

func TestCheckCommand_Argument(t *testing.T) {
	out, _, err := execute(t, "", "check", "Tr0ub4dor&3Zx")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 8/8 (100%) Excellent")
	assert.Contains(t, out, "✓ sequences")
}

func TestCheckCommand_Stdin(t *testing.T) {
	out, _, err := execute(t, "password\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "✗ common")
	assert.Contains(t, out, "Score: 3/8 (38%) Weak")
}

func TestCheckCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "", "check", "--json", "aaa111")
	require.NoError(t, err)

	var resp model.CheckResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 50, resp.Percent)
	assert.Equal(t, strength.Medium, resp.Level)
}

func TestCheckCommand_EmptyInput(t *testing.T) {
	out, _, err := execute(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 2/8 (25%) Weak")
}
