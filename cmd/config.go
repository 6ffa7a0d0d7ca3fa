package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mayen007/gitfolio/config"
)

// NewCmdConfig creates the config command with subcommands.
func NewCmdConfig() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Long: `Show or manage configuration.

When run without arguments, shows the current merged configuration.

Subcommands:
  init  Create a minimal config file
  path  Show config file locations
  show  Show current merged config (same as bare 'gitfolio config')
  set   Set a configuration value`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format (yaml, json)")

	cmd.AddCommand(NewCmdConfigInit())
	cmd.AddCommand(NewCmdConfigPath())
	cmd.AddCommand(NewCmdConfigShow())
	cmd.AddCommand(NewCmdConfigSet())

	return cmd
}

// NewCmdConfigInit creates the config init subcommand.
func NewCmdConfigInit() *cobra.Command {
	var global, local bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a minimal config file",
		Long: `Create a minimal config file with starter settings.

Use --global to create in the user config directory (applies everywhere)
Use --local to create in ./.gitfolio.yaml (applies only in this directory)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(global, local)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Create global config file")
	cmd.Flags().BoolVar(&local, "local", false, "Create local config file (./.gitfolio.yaml)")

	return cmd
}

// NewCmdConfigPath creates the config path subcommand.
func NewCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigPath()
		},
	}
}

// NewCmdConfigShow creates the config show subcommand.
func NewCmdConfigShow() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current merged configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format (yaml, json)")
	return cmd
}

// NewCmdConfigSet creates the config set subcommand.
func NewCmdConfigSet() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the global config file.

Supported keys:
  username               GitHub login whose portfolio is shown
  default_format         Output format (table, json, markdown)
  pinned_fallback_limit  Max repositories shown when nothing is pinned`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func runConfigShow(format string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Println(string(data))
	default:
		out, err := cfg.ToYAML()
		if err != nil {
			return err
		}
		fmt.Print(out)
	}
	return nil
}

func runConfigInit(global, local bool) error {
	if global && local {
		return fmt.Errorf("use either --global or --local, not both")
	}

	path := config.ConfigPath()
	if local {
		path = config.LocalConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := config.SaveTo(path, config.MinimalConfig()); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func runConfigPath() error {
	info := config.GetConfigPaths()

	fmt.Printf("Global: %s", info.GlobalPath)
	if info.GlobalExists {
		fmt.Print(" (exists)")
	}
	fmt.Println()

	fmt.Printf("Local:  %s", info.LocalPath)
	if info.LocalExists {
		fmt.Print(" (exists)")
	}
	fmt.Println()

	return nil
}

func runConfigSet(key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch strings.ToLower(key) {
	case "username":
		if err := cfg.SetUsername(value); err != nil {
			return err
		}
	case "default_format":
		switch value {
		case "table", "json", "markdown":
		default:
			return fmt.Errorf("invalid format %q: use table, json, or markdown", value)
		}
		if err := cfg.SetDefaultFormat(value); err != nil {
			return err
		}
	case "pinned_fallback_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid limit %q: use a positive integer", value)
		}
		if err := cfg.SetPinnedFallbackLimit(n); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
