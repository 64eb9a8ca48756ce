package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args against an isolated home
// directory and config file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_WritesFigures(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--output-dir", dir, "--dpi", "15", "--seed", "1")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "parkinson_ctag_diagram.png"))
	assert.FileExists(t, filepath.Join(dir, "advanced_parkinson_genomics.png"))
	assert.Contains(t, out, "Genomic analysis complete!")
}

func TestRoot_EnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PDCTAG_OUTPUT_DIR", dir)
	t.Setenv("PDCTAG_OUTPUT_DPI", "15")
	t.Setenv("PDCTAG_OUTPUT_PRIMARY", "primary.png")

	_, err := execute(t)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "primary.png"))
	assert.FileExists(t, filepath.Join(dir, "advanced_parkinson_genomics.png"))
}

func TestRoot_SubUnitDPI(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--output-dir", dir, "--dpi", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dpi")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestReport_NoFigures(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PDCTAG_OUTPUT_DIR", dir)

	out, err := execute(t, "report")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, out, "5. GLOBAL STATISTICS:")
	assert.Contains(t, out, "Mean mutation frequency: 5.4%")
}

func TestTable(t *testing.T) {
	out, err := execute(t, "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	assert.Equal(t, "Gene\tMutation_Frequency\tMutation_Type\tClinical_Significance", lines[0])
	assert.Equal(t, "SNCA\t0.15\tMissense\tPathogenic", lines[1])
}

func TestTable_FilterGenes(t *testing.T) {
	out, err := execute(t, "table", "--gene", "GBA", "--gene", "SNCA")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "SNCA\t"))
	assert.True(t, strings.HasPrefix(lines[2], "GBA\t"))
}

func TestQuery(t *testing.T) {
	out, err := execute(t, "query",
		"SELECT mutation_type, COUNT(*) AS n FROM mutation_records GROUP BY mutation_type ORDER BY n DESC, mutation_type")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "mutation_type\tn", lines[0])
	assert.Equal(t, "Missense\t11", lines[1])
}

func TestQuery_InvalidSQL(t *testing.T) {
	_, err := execute(t, "query", "SELEC nonsense")
	assert.Error(t, err)
}

func TestQuery_RequiresArg(t *testing.T) {
	_, err := execute(t, "query")
	assert.Error(t, err)
}

func TestConfigSetGet(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "pdctag.yaml")

	out, err := execute(t, "--config", cfg, "config", "set", "output.dpi", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "Set output.dpi = 150 in "+cfg)

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, 150, saved["output"].(map[string]any)["dpi"])

	out, err = execute(t, "--config", cfg, "config", "get", "output.dpi")
	require.NoError(t, err)
	assert.Equal(t, "150\n", out)
}

func TestConfigSet_Bool(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "pdctag.yaml")

	_, err := execute(t, "--config", cfg, "config", "set", "display.enabled", "yes")
	require.NoError(t, err)

	out, err := execute(t, "--config", cfg, "config", "get", "display.enabled")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestConfigGet_Unset(t *testing.T) {
	_, err := execute(t, "config", "get", "no.such.key")
	assert.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	var settings map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &settings))
	output := settings["output"].(map[string]any)
	assert.Equal(t, "parkinson_ctag_diagram.png", output["primary"])
}

func TestConfig_MalformedFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: [unclosed"), 0o644))

	_, err := execute(t, "--config", cfg, "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"off", false},
		{"300", int64(300)},
		{"1.5", 1.5},
		{"out/figs", "out/figs"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.in))
		})
	}
}
