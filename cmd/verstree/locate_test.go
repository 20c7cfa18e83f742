package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verstree/verstree/appcontext"
	"github.com/verstree/verstree/config"
	"github.com/verstree/verstree/geom"
	"github.com/verstree/verstree/logging"
)

func testContext(t *testing.T) *appcontext.AppContext {
	t.Helper()

	cfg, err := config.LoadOrCreate(filepath.Join(t.TempDir(), "verstree.yml"))
	require.NoError(t, err)

	ctx := appcontext.NewAppContext()
	t.Cleanup(ctx.Close)
	ctx.Config = cfg
	ctx.Stdout = io.Discard
	ctx.Stderr = io.Discard
	ctx.SetLogger(logging.NewLogger(io.Discard, io.Discard))
	return ctx
}

func TestPointListSet(t *testing.T) {
	var points pointList

	require.NoError(t, points.Set("0.5,0.5"))
	require.NoError(t, points.Set(" 1 , 2 "))
	require.Equal(t, pointList{{X: 0.5, Y: 0.5}, {X: 1, Y: 2}}, points)
	require.Equal(t, "0.5,0.5 1,2", points.String())

	require.Error(t, points.Set("1"))
	require.Error(t, points.Set("a,b"))
	require.Error(t, points.Set("1,2,3"))
}

func TestCmdLocate(t *testing.T) {
	ctx := testContext(t)
	out := filepath.Join(t.TempDir(), "report.msgpack")

	status := cmdLocate(ctx, []string{
		"-obj", "testdata/square.obj",
		"-p", "0.7,0.3",
		"-p", "0.3,0.7",
		"-p", "5,5",
		"-out", out,
	})
	require.Zero(t, status)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	report, err := geom.DeserializeLocationReport(f)
	require.NoError(t, err)
	require.Len(t, report.Points, 3)
	require.Equal(t, "F0", report.Points[0].Face)
	require.Equal(t, "F1", report.Points[1].Face)
	require.Empty(t, report.Points[2].Face)
}

func TestCmdLocateMissingArguments(t *testing.T) {
	ctx := testContext(t)

	require.NotZero(t, cmdLocate(ctx, []string{"-p", "1,1"}))
	require.NotZero(t, cmdLocate(ctx, []string{"-obj", "testdata/square.obj"}))
	require.NotZero(t, cmdLocate(ctx, []string{"-obj", "testdata/missing.obj", "-p", "1,1"}))
}

func TestCmdBenchSmoke(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`scenarios:
  - name: smoke
    engines: [nodecopy]
    sizes: [16]
    seed: 3
    deletes: true
`), 0o644))

	status := cmdBench(ctx, []string{"-config", cfgPath})
	require.Zero(t, status)
}