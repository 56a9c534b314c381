package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sitemasterhq/sitemaster/sitemaster"
)

var rootCmd = &cobra.Command{
	Use:   "sitemaster",
	Short: "Sitemaster - personal construction-site management",
	Long: `Sitemaster tracks a personal construction project from the command line:
purchased materials, the step-by-step workflow, worker attendance and wages,
equipment rentals, a unit-price comparator and a work-time stopwatch.

All state lives in a single JSON document on disk. Use --data to point at a
specific document, or set SITEMASTER_DATA.

Examples:
  # Record a purchase
  sitemaster material add "Portland cement" --price 145 --vendor "Thai Watsadu"

  # Close the working day for the present crew
  sitemaster crew checkout

  # Compare two offers per unit
  sitemaster compare --name "Cement" --price-a 145 --qty-a 50 --price-b 350 --qty-b 100`,
}

var (
	// Global flags that apply to all commands
	dataPath string
	format   string
	verbose  bool
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Site document path (default ~/.sitemaster/site.json)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "Output format: table|json|yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	rootCmd.AddCommand(
		materialCmd,
		workflowCmd,
		timerCmd,
		crewCmd,
		vendorCmd,
		rentalCmd,
		compareCmd,
		estimateCmd,
		calendarCmd,
		backupCmd,
	)
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".sitemaster"))
	}
	viper.SetEnvPrefix("SITEMASTER")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func resolveDataPath() string {
	if p := viper.GetString("data"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "site.json"
	}
	return filepath.Join(home, ".sitemaster", "site.json")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func openStore() (*sitemaster.Store, error) {
	return sitemaster.Open(resolveDataPath(), sitemaster.WithLogger(newLogger()))
}
