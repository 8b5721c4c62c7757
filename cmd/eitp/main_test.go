package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gomosek/backtest"
	"github.com/bartolsthoorn/gomosek/portfolio"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"MSK_IPAR_NUM_THREADS=4", " MSK_DPAR_OPTIMIZER_MAX_TIME = 10.5"})
	require.NoError(t, err)
	assert.Equal(t, []param{
		{"MSK_IPAR_NUM_THREADS", "4"},
		{"MSK_DPAR_OPTIMIZER_MAX_TIME", "10.5"},
	}, params)

	for _, bad := range []string{"MSK_IPAR_LOG", "=1"} {
		_, err := parseParams([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestParseFloats(t *testing.T) {
	v, err := parseFloats("0, 0.001,1e-2")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.001, 0.01}, v)

	_, err = parseFloats("0,x")
	assert.Error(t, err)
}

func TestLoadConfigDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := loadConfig("")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(defaultConfigDir, "eitp.yaml"))
	assert.Equal(t, "data", v.GetString(cfgKeyDataDir))
	assert.Equal(t, "results", v.GetString(cfgKeyResultsDir))
	assert.Equal(t, 0, v.GetInt(cfgKeySolverThreads))
	assert.Equal(t, filepath.Join("results", "runs.db"), storePath(v))
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/sp500\nstore: /tmp/ledger.db\nsolver:\n  threads: 2\n"), 0o644))
	t.Setenv("EITP_SOLVER_LOG", "true")
	t.Setenv("EITP_RESULTS_DIR", "out")

	v, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/sp500", v.GetString(cfgKeyDataDir))
	assert.Equal(t, 2, v.GetInt(cfgKeySolverThreads))
	assert.True(t, v.GetBool(cfgKeySolverLog))
	assert.Equal(t, "out", v.GetString(cfgKeyResultsDir))
	assert.Equal(t, "/tmp/ledger.db", storePath(v))
}

func TestNewStrategy(t *testing.T) {
	t.Chdir(t.TempDir())
	v, err := loadConfig("")
	require.NoError(t, err)
	cfg = v

	s, err := newStrategy("dro", "0,0.1")
	require.NoError(t, err)
	dro, ok := s.(portfolio.TrackingDRO)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0.1}, dro.Radii)

	s, err = newStrategy("dro", "")
	require.NoError(t, err)
	assert.Len(t, s.(portfolio.TrackingDRO).Radii, 31)

	_, err = newStrategy("saa", "")
	assert.NoError(t, err)
	_, err = newStrategy("excess", "")
	assert.NoError(t, err)
	s, err = newStrategy("excess-dro", "")
	require.NoError(t, err)
	assert.Equal(t, portfolio.ExcessRadii(), s.(portfolio.ExcessCVaRDRO).Radii)

	s, err = newStrategy("excess-dro", "0,1e-5")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1e-5}, s.(portfolio.ExcessCVaRDRO).Radii)

	_, err = newStrategy("excess-dro", "0,x")
	assert.ErrorContains(t, err, "--radii")
	_, err = newStrategy("minvar", "")
	assert.Error(t, err)
}

func TestExperimentParams(t *testing.T) {
	radii := []float64{0, 1e-3, 1e-2}
	p := experimentParams(backtest.Excess, []int{63}, 126, 5, 2, 0.9, 0, 0.02, radii)
	assert.Equal(t, radii, p["radii"])
	assert.Equal(t, "excess", p["model"])
	assert.Equal(t, []int{63}, p["training_sizes"])

	assert.Equal(t, "excess-experiment2", experimentName(backtest.Excess, "2"))
	assert.Equal(t, "experiment1", experimentName(backtest.Tracking, "1"))
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestEnumsCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "enums")
	assert.Contains(t, out, "soltype\n")
	assert.Contains(t, out, "rescode\n")

	out = execute(t, "enums", "soltype")
	assert.Equal(t, "     0  MSK_SOL_ITR\n     1  MSK_SOL_BAS\n     2  MSK_SOL_ITG\n", out)
}

func TestRunsCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	results := t.TempDir()

	out := execute(t, "runs", "--results-dir", results)
	assert.Equal(t, "no runs recorded\n", out)
	assert.FileExists(t, filepath.Join(results, "runs.db"))

	out = execute(t, "runs", "--results-dir", results, "--json")
	assert.Equal(t, "null\n", out)
}
