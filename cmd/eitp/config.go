package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultConfigDir = ".eitp"
	configFileName   = "eitp"
	configFileType   = "yaml"

	cfgKeyDataDir       = "data_dir"
	cfgKeyResultsDir    = "results_dir"
	cfgKeyStore         = "store"
	cfgKeySolverThreads = "solver.threads"
	cfgKeySolverLog     = "solver.log"
)

// defaultConfigYAML is written to .eitp/eitp.yaml on first run.
const defaultConfigYAML = `# eitp configuration
# Every key can be overridden with an EITP_ environment variable,
# for example EITP_SOLVER_THREADS=4.

# Directory with SP500/HistoricalConstituents.csv and the price files
data_dir: data

# Directory for experiment arrays and checkpoints
results_dir: results

# Run ledger (default: <results_dir>/runs.db)
# store:

solver:
  threads: 0
  log: false
`

// loadConfig reads the configuration file. An empty path selects
// .eitp/eitp.yaml in the working directory, created with defaults when it
// does not exist. A missing file is not an error.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDataDir, "data")
	v.SetDefault(cfgKeyResultsDir, "results")
	v.SetDefault(cfgKeySolverThreads, 0)
	v.SetDefault(cfgKeySolverLog, false)
	v.SetEnvPrefix("EITP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if err := ensureDefaultConfig(defaultConfigDir); err != nil {
			return nil, errors.Wrap(err, "default config")
		}
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(defaultConfigDir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	return v, nil
}

// ensureDefaultConfig creates dir and a default eitp.yaml inside it unless
// the file exists.
func ensureDefaultConfig(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, configFileName+"."+configFileType)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// storePath returns the run ledger path.
func storePath(v *viper.Viper) string {
	if p := v.GetString(cfgKeyStore); p != "" {
		return p
	}
	return filepath.Join(v.GetString(cfgKeyResultsDir), "runs.db")
}
