package main

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bartolsthoorn/gomosek/portfolio"
)

// Global flag values.
var (
	flagConfig     string
	flagVerbose    bool
	flagDataDir    string
	flagResultsDir string
)

// cfg is loaded by PersistentPreRunE for every subcommand.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "eitp",
	Short: "Enhanced index tracking with MOSEK",
	Long: `eitp solves optimization problems stored in MOSEK file formats and runs
the enhanced index tracking models and experiments on S&P 500 data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetHandler(cli.Default)
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		// Skip config for commands that only inspect the binding.
		switch cmd.Name() {
		case "version", "enums":
			return nil
		}

		v, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		flags := cmd.Root().PersistentFlags()
		if err := v.BindPFlag(cfgKeyDataDir, flags.Lookup("data-dir")); err != nil {
			return err
		}
		if err := v.BindPFlag(cfgKeyResultsDir, flags.Lookup("results-dir")); err != nil {
			return err
		}
		cfg = v
		log.WithField("config", v.ConfigFileUsed()).Debug("configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .eitp/eitp.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the SP500 CSV files")
	rootCmd.PersistentFlags().StringVar(&flagResultsDir, "results-dir", "", "directory for experiment results")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(experimentCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(enumsCmd)
}

// solverOptions returns the model options from the configuration.
func solverOptions() portfolio.Options {
	return portfolio.Options{
		Logger:    log.Log,
		SolverLog: cfg.GetBool(cfgKeySolverLog),
		Threads:   cfg.GetInt(cfgKeySolverThreads),
	}
}
