package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/buildmaster/cli/internal/config"
	"github.com/buildmaster/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigViewCmd())

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a default config file to ~/.buildmaster/config.yaml (or the
path given with --config). Refuses to overwrite an existing file unless
--force is passed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
	return cmd
}

func runConfigInit(force bool) error {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("wrote %s", path)))
	return nil
}

// NewConfigViewCmd creates the config view command.
func NewConfigViewCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := renderStructured(resolvedFormat(firstNonTable(outputFlag)), getApp().Config)
			if err != nil {
				return err
			}
			output.Println(rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "yaml", "Output format (yaml, json)")
	return cmd
}

// firstNonTable maps the table format to yaml; config has no tabular
// form.
func firstNonTable(format string) string {
	if format == "" || format == "table" {
		return "yaml"
	}
	return format
}
