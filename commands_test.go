package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// runCmd executes the command tree against an empty config file and no .env,
// so the developer's own setup never leaks into the result.
func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{}\n"), 0o644))

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--config", cfgPath, "--env-file", filepath.Join(dir, "missing.env")))

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestExportHTML(t *testing.T) {
	out, _, err := runCmd(t, "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<section id="pricing">`)
	assert.NoError(t, inspectHTML(strings.NewReader(out)))
}

func TestExportMarkdown(t *testing.T) {
	out, _, err := runCmd(t, "export", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Choose Your Power")
	assert.Contains(t, out, "MOST POPULAR")
	assert.Less(t, strings.Index(out, "Why Ginger Shot?"), strings.Index(out, "The Community"))
}

func TestExportYAML(t *testing.T) {
	out, _, err := runCmd(t, "export", "-f", "yaml")
	require.NoError(t, err)

	var page Page
	require.NoError(t, yaml.Unmarshal([]byte(out), &page))
	assert.Equal(t, defaultPage(), page)
	assert.Contains(t, out, "headlineAccent: Natural Power.")
}

func TestExportJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.json")
	out, errOut, err := runCmd(t, "export", "-f", "json", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var page Page
	require.NoError(t, json.Unmarshal(data, &page))
	plan, ok := page.FeaturedPlan()
	require.True(t, ok)
	assert.Equal(t, 18000, plan.Price)
}

func TestExportUnknownFormat(t *testing.T) {
	_, _, err := runCmd(t, "export", "-f", "pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPlansCommand(t *testing.T) {
	out, _, err := runCmd(t, "plans")
	require.NoError(t, err)
	assert.Contains(t, out, "Power Bundle")
	assert.Contains(t, out, "₦18,000")
}

func TestCheckCommand(t *testing.T) {
	out, _, err := runCmd(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "ok: 4 nav links resolve, featured plan \"Power Bundle\"\n", out)
}

func TestConfigCommand(t *testing.T) {
	out, _, err := runCmd(t, "config", "--compact-threshold", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "compact-threshold")
	assert.Contains(t, out, "120")
}

func TestInvalidFlagValue(t *testing.T) {
	_, _, err := runCmd(t, "check", "--row-height", "0")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCommandsRejectArgs(t *testing.T) {
	_, _, err := runCmd(t, "export", "extra")
	assert.Error(t, err)
}
