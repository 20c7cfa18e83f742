package bench

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verstree/verstree/logging"
)

func TestParseConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - name: smoke
    engines: [naive, nodecopy]
    sizes: [8, 16]
    seed: 7
    deletes: true
`), 0o644))

	cfg, err := ParseConfigFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 1)
	require.Equal(t, "smoke", cfg.Scenarios[0].Name)
	require.Equal(t, []string{"naive", "nodecopy"}, cfg.Scenarios[0].Engines)
	require.Equal(t, []int{8, 16}, cfg.Scenarios[0].Sizes)
	require.True(t, cfg.Scenarios[0].Deletes)
}

func TestParseConfigFileRejectsUnknownEngine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - name: bad
    engines: [btree]
    sizes: [8]
`), 0o644))

	_, err := ParseConfigFile(path)
	require.Error(t, err)
}

func TestParseConfigFileRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - name: bad
    engines: [naive]
    sizes: [8]
    warmup: true
`), 0o644))

	_, err := ParseConfigFile(path)
	require.Error(t, err)
}

func TestRunnerSmoke(t *testing.T) {
	cfg := &Configuration{
		Scenarios: []Scenario{
			{
				Name:    "smoke",
				Engines: []string{"naive", "fatnode", "nodecopy", "full"},
				Sizes:   []int{16, 32},
				Seed:    7,
				Deletes: true,
			},
		},
	}

	runner := NewRunner(cfg, logging.NewLogger(io.Discard, io.Discard))
	report, err := runner.Run()
	require.NoError(t, err)
	require.Len(t, report.Cells, 8)

	for _, c := range report.Cells {
		require.Equal(t, "smoke", c.Scenario)
		require.Positive(t, c.Insert, "%s n=%d", c.Engine, c.Size)
	}
}

func TestReportRoundTripAndRender(t *testing.T) {
	report := NewReport()
	report.Cells = append(report.Cells, Cell{
		Scenario: "s", Engine: "naive", Size: 8, Insert: 1000, Delete: 2000, Bytes: 4096,
	})

	var buf bytes.Buffer
	require.NoError(t, report.Serialize(&buf))
	restored, err := DeserializeReport(&buf)
	require.NoError(t, err)
	require.Equal(t, report.Identifier, restored.Identifier)
	require.Equal(t, report.Cells, restored.Cells)

	var out bytes.Buffer
	require.NoError(t, restored.Render(&out))
	require.Contains(t, out.String(), "naive")
	require.Contains(t, out.String(), "4.0 KiB")
}

func TestDefaultConfigurationIsValid(t *testing.T) {
	cfg := DefaultConfiguration()
	require.NotEmpty(t, cfg.Scenarios)
	for _, s := range cfg.Scenarios {
		require.NotEmpty(t, s.Engines)
		require.NotEmpty(t, s.Sizes)
	}
}
