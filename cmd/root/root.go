// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/bai-csv/internal/baiparser"
	"fjacquet/bai-csv/internal/config"
	"fjacquet/bai-csv/internal/export"
	"fjacquet/bai-csv/internal/fileutils"
	"fjacquet/bai-csv/internal/logging"
	"fjacquet/bai-csv/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input        string
	Output       string
	StrictTotals bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Logger is the adapter handed to the parsing pipeline
	Logger logging.Logger = logging.NewLogrusAdapterFromLogger(Log)

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bai-csv",
		Short: "A CLI tool to convert BAI cash-management files to CSV.",
		Long: `bai-csv parses BAI cash-management transmissions into a structured
document of groups, accounts, balances and transaction details, and can
render the document for inspection or export it to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bai-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			Logger = logging.NewLogrusAdapterFromLogger(Log)
			fileutils.SetLogger(Logger)
			export.SetLogger(Logger)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			models.SetDefaultCurrency(models.Currency(cfg.Bai.DefaultCurrency))
			if cfg.Bai.CodeOverlayFile != "" {
				if err := models.LoadCodeOverlay(cfg.Bai.CodeOverlayFile); err != nil {
					Log.Warnf("Failed to load type-code overlay: %v", err)
				}
			}
			if delim := cfg.CSV.Delimiter; delim != "" {
				export.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input BAI file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.StrictTotals, "strict-totals", false,
		"Cross-check trailer control totals against the assembled document")
}

// ParseOptions assembles the conversion options from flags and configuration.
func ParseOptions() baiparser.Options {
	strict := SharedFlags.StrictTotals
	if Cfg != nil && Cfg.Bai.StrictTotals {
		strict = true
	}
	return baiparser.Options{StrictTotals: strict}
}

// OpenInput opens the configured input file, exiting when it is unusable.
func OpenInput() *os.File {
	if SharedFlags.Input == "" {
		Log.Fatal("No input file given, use --input")
	}
	file, err := os.Open(SharedFlags.Input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		Log.Fatalf("Error opening input file: %v", err)
	}
	return file
}
