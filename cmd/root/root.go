// Package root contains the root command for the application
package root

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sjtech/spicon-recon/internal/apiclient"
	"sjtech/spicon-recon/internal/config"
	"sjtech/spicon-recon/internal/export"
	"sjtech/spicon-recon/internal/reports"
	"sjtech/spicon-recon/internal/source"
	"sjtech/spicon-recon/internal/store"
	"sjtech/spicon-recon/internal/workerledger"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Registrations string
	Payments      string
	Requests      string
	APIURL        string
	Region        string
	Output        string
	PricingFile   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the loaded application configuration
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spicon-recon",
		Short: "A CLI tool to reconcile event registrations against payments and export the back-office reports.",
		Long: `spicon-recon fetches registration and payment collections from the
back-office API (or from exported JSON files) and produces the treasurer's
reconciliation tables: district abstract, payment collections, category
summary, place-wise summary, attendance and worker ledgers.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to spicon-recon!")
			Log.Info("Use --help to see available reports")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			AppConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for all packages
			apiclient.SetLogger(Log)
			source.SetLogger(Log)
			store.SetLogger(Log)
			reports.SetLogger(Log)
			workerledger.SetLogger(Log)
			export.SetLogger(Log)

			export.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			// Flags win over config file and environment.
			if SharedFlags.APIURL == "" {
				SharedFlags.APIURL = cfg.API.BaseURL
			}
			if SharedFlags.Region == "" {
				SharedFlags.Region = cfg.Report.Region
			}
			if SharedFlags.PricingFile == "" {
				SharedFlags.PricingFile = cfg.Pricing.File
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.Registrations, "registrations", "", "Registrations envelope JSON file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Payments, "payments", "", "Payments envelope JSON file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Requests, "requests", "", "Payment requests envelope JSON file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.APIURL, "api-url", "", "Back-office API base URL")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Region, "region", "r", "", "Restrict the report to one region")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.PricingFile, "pricing", "", "Pricing tariff YAML file")
}

// NewSource builds the data source the flags point at: exported files when
// any file flag is set, otherwise the live API.
func NewSource() source.Source {
	if SharedFlags.Registrations != "" || SharedFlags.Payments != "" || SharedFlags.Requests != "" {
		return source.Files{
			RegistrationsPath:   SharedFlags.Registrations,
			PaymentsPath:        SharedFlags.Payments,
			PaymentRequestsPath: SharedFlags.Requests,
		}
	}
	if SharedFlags.APIURL == "" {
		Log.Fatal("No data source configured: set --registrations/--payments files or --api-url")
	}

	timeout := 30 * time.Second
	if AppConfig != nil {
		timeout = time.Duration(AppConfig.API.TimeoutSeconds) * time.Second
	}
	return apiclient.New(SharedFlags.APIURL, timeout)
}

// NewEngine builds the report engine with the configured pricing tariffs.
func NewEngine() *reports.Engine {
	table, err := store.LoadTable(SharedFlags.PricingFile)
	if err != nil {
		Log.Fatalf("Error loading pricing tariffs: %v", err)
	}
	return reports.NewEngine(table)
}
