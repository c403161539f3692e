package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildmaster/cli/internal/config"
	"github.com/buildmaster/cli/internal/output"
)

var (
	// Global flags
	configFlag       string
	serverFlag       string
	outputFormatFlag string
	verboseFlag      bool
	noColorFlag      bool
	mockFlag         bool

	// App wired during PersistentPreRunE
	app *App
)

// NewRootCmd creates the root command for the BuildMaster CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "buildmaster",
		Short:         "BuildMaster PC configurator CLI",
		Long:          `BuildMaster assembles PC builds from a component catalog: browse parts, fill the eight slots of a build, track the total, and save named configurations to your account.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: BUILDMASTER_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Backend base URL (env: BUILDMASTER_SERVER_URL)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: table, yaml, json")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&mockFlag, "mock", false, "Serve the built-in component dataset (env: BUILDMASTER_CATALOG_MOCK)")

	// Add subcommands
	rootCmd.AddCommand(NewComponentCmd())
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewLoginCmd())
	rootCmd.AddCommand(NewLogoutCmd())
	rootCmd.AddCommand(NewRegisterCmd())
	rootCmd.AddCommand(NewWhoamiCmd())
	rootCmd.AddCommand(NewProfileCmd())
	rootCmd.AddCommand(NewAdminCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging, loads configuration, and wires
// the app.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		return err
	}

	// Flags win over file and environment values.
	if serverFlag != "" {
		cfg.Server.URL = serverFlag
	}
	if outputFormatFlag != "" {
		cfg.Output.Format = outputFormatFlag
	}
	if cmd.Flags().Changed("no-color") {
		cfg.Output.NoColor = noColorFlag
	}
	if cmd.Flags().Changed("mock") {
		cfg.Catalog.Mock = mockFlag
	}

	if cfg.Output.NoColor || !output.IsTTY() {
		output.DisableColors()
	}

	app, err = newApp(cfg)
	if err != nil {
		return err
	}

	if verboseFlag {
		output.Debug("initializing CLI",
			"server", cfg.Server.URL,
			"output", cfg.Output.Format,
			"mock", cfg.Catalog.Mock,
			"stateDir", app.Records.Dir(),
		)
	}

	return nil
}

// getApp returns the wired app.
func getApp() *App {
	return app
}

// resolvedFormat parses a command-local format override, falling back
// to the configured default.
func resolvedFormat(local string) output.OutputFormat {
	if local != "" {
		return output.ParseOutputFormat(local)
	}
	return output.ParseOutputFormat(app.Config.Output.Format)
}
