// Package main provides the slashkit CLI application entry point.
// slashkit validates, compiles and inspects command manifests for
// platform application-command registration.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slashkit/internal/logger"
	"slashkit/internal/output"
	"slashkit/internal/version"
)

var (
	logLevel string
	logFile  string
	plain    bool
)

// printer is the shared CLI output handler, configured in initConfig.
var printer *output.Printer

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slashkit",
	Short: "slashkit - command schema compiler and inspector",
	Long: `slashkit turns declarative command manifests into validated schemas and
registration payloads, and inspects how deployed registrations drift from
their manifests.`,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of slashkit.`,
	Run: func(_ *cobra.Command, _ []string) {
		info := version.GetInfo()
		fmt.Printf("slashkit v%s (%s, %s)\n", info.Version, info.GoVersion, info.Platform)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled output")

	// Bind flags to viper
	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding plain flag: %v\n", err)
		os.Exit(1)
	}

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Pick up SLASHKIT_* variables from a local .env if present
	_ = godotenv.Load()

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}

	opts := []output.Option{}
	if plain {
		opts = append(opts, output.WithPlain())
	}
	printer = output.NewPrinter(opts...)
}
