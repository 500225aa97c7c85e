package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var (
	cfgFile     string
	scenarioFile string
	seed        int64
	jsonOut     bool
	verbose     bool
)

// Logger is the package-wide structured logger, bridged through
// otelslog the way the rest of the corpus wires its service loggers.
var Logger = otelslog.NewLogger("planctl")

// rootCmd is the base command when planctl is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:          "planctl",
	Short:        "Tactical planner scenario runner",
	SilenceUsage: true,
	Long: `planctl runs scenario files through the GOAP tactical planner headlessly.

Examples:
  planctl run scenario.json              Run a scenario to completion
  planctl run scenario.json --seed 42    Run with a fixed RNG seed
  planctl step scenario.json             Advance exactly one AI turn

Global Flags:
  --scenario string   Scenario JSON file; overrides the positional argument
  --seed int          RNG seed for combat resolution (or set PLANCTL_SEED env var)
  --json              Output in JSON format
  --verbose           Show detailed debug information`,
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.planctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&scenarioFile, "scenario", "", "scenario JSON file; overrides the positional argument")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "RNG seed for combat resolution (env: PLANCTL_SEED)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "show detailed debug information")

	viper.BindPFlag("scenario", rootCmd.PersistentFlags().Lookup("scenario"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig loads a .env file if present, then reads config file and
// PLANCTL_-prefixed environment variables.
func initConfig() {
	if err := godotenv.Load(); err != nil && verbose {
		fmt.Fprintln(os.Stderr, "no .env file loaded:", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".planctl")
	}

	viper.SetEnvPrefix("PLANCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if verbose {
		Logger.Info("config initialized", "scenario", getScenarioPath(), "seed", getSeed())
	} else {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}
}

func getScenarioPath() string {
	if rootCmd.PersistentFlags().Changed("scenario") {
		return scenarioFile
	}
	return viper.GetString("scenario")
}

func getSeed() int64 {
	if rootCmd.PersistentFlags().Changed("seed") {
		return seed
	}
	return viper.GetInt64("seed")
}

func isJSONOutput() bool { return viper.GetBool("json") }
func isVerbose() bool    { return viper.GetBool("verbose") }
