// Package cli provides configuration management commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/config"
	"github.com/mexm/mydmam-browser/internal/constants"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mydmam-browser configuration",
		Long: `Configuration management commands for mydmam-browser.

Commands:
  init  - Interactive configuration setup
  show  - Display current configuration
  test  - Test the server connection
  path  - Show configuration file path`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigTestCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

// configPath returns --config or the default location.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultConfigPath()
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration interactively",
		Long: `Interactive configuration setup for mydmam-browser.

Use --force to overwrite an existing configuration. The proxy password is
never saved; set MYDMAM_PROXY_PASSWORD or answer the prompt when needed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()

			path, err := configPath()
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					fmt.Printf("Configuration already exists at: %s\n", path)
					fmt.Println("Use --force to overwrite or run 'config show' to view current config.")
					return nil
				}
			}

			fmt.Println("MyDMAM Browser Configuration Setup")
			fmt.Println("==================================")
			fmt.Println()

			reader := bufio.NewReader(os.Stdin)
			cfg := config.Default()

			cfg.APIBaseURL = strings.TrimSuffix(promptString(reader, "API base URL", constants.DefaultAPIBaseURL), "/")
			cfg.MaxPageButtons = promptInt(reader, "Page buttons before truncation", constants.DefaultMaxPageButtons)

			fmt.Println()
			if promptYesNo(reader, "Configure proxy?") {
				fmt.Println()
				fmt.Println("Proxy modes: no-proxy, system, basic, ntlm")
				cfg.ProxyMode = promptString(reader, "Proxy mode", "system")
				if mode := strings.ToLower(cfg.ProxyMode); mode == "basic" || mode == "ntlm" {
					cfg.ProxyHost = promptString(reader, "Proxy host", "")
					cfg.ProxyPort = promptInt(reader, "Proxy port", constants.DefaultProxyPort)
					cfg.ProxyUser = promptString(reader, "Proxy user", "")
					cfg.NoProxy = promptString(reader, "Hosts bypassing the proxy (comma-separated)", "")
					cfg.ProxyWarmup = promptYesNo(reader, "Warm the proxy connection up before the first request?")
				}
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			logger.Info().Str("path", path).Msg("Configuration saved")

			fmt.Println()
			fmt.Printf("Configuration saved to: %s\n", path)
			fmt.Println("Test it with: mydmam-browser config test")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the current configuration settings.

This command shows the merged configuration from:
  1. Configuration file (~/.config/mydmam/browser.conf)
  2. Environment variables (MYDMAM_API_URL, MYDMAM_PROXY_PASSWORD)
  3. Command-line flags (--api-url, --proxy-mode)

Priority: flags > environment > config file > defaults`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.MergeWithFlags(apiBaseURL, proxyMode)

			fmt.Println("Current Configuration")
			fmt.Println("=====================")
			fmt.Println()

			fmt.Println("Server:")
			fmt.Printf("  API Base URL:    %s\n", cfg.APIBaseURL)
			fmt.Printf("  Request Timeout: %s\n", cfg.RequestTimeout)
			fmt.Printf("  Search Cache:    %s\n", cfg.SearchCacheTTL)
			fmt.Println()

			fmt.Println("Proxy:")
			fmt.Printf("  Mode: %s\n", cfg.ProxyMode)
			if cfg.ProxyHost != "" {
				fmt.Printf("  Host: %s\n", cfg.ProxyHost)
				fmt.Printf("  Port: %d\n", cfg.ProxyPort)
			}
			if cfg.ProxyUser != "" {
				fmt.Printf("  User: %s\n", cfg.ProxyUser)
				if cfg.ProxyPassword != "" {
					fmt.Println("  Password: <set>")
				} else {
					fmt.Println("  Password: <not set>")
				}
			}
			if cfg.NoProxy != "" {
				fmt.Printf("  No Proxy: %s\n", cfg.NoProxy)
			}
			fmt.Println()

			fmt.Println("Navigator:")
			fmt.Printf("  Page Buttons: %d\n", cfg.MaxPageButtons)
			fmt.Println()

			fmt.Printf("Configuration file: %s\n", path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Println("  (file does not exist - using defaults)")
			}
			if err := cfg.Validate(); err != nil {
				fmt.Printf("  Warning: %v\n", err)
			}
			return nil
		},
	}
}

// newConfigTestCmd creates the 'config test' command.
func newConfigTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test the server connection",
		Long: `Ping the server and list its realms with the current configuration.

Use this to verify the API URL and proxy settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()

			fmt.Println("Testing Server Connection")
			fmt.Println("=========================")
			fmt.Println()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Printf("API URL: %s\n", cfg.APIBaseURL)
			fmt.Println("Testing connection...")
			fmt.Println()

			client, err := api.NewClient(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to create API client: %w", err)
			}

			ctx, cancel := context.WithTimeout(GetContext(), cfg.RequestTimeout)
			defer cancel()

			if _, err := client.Ping(ctx, defaultPingPayload); err != nil {
				logger.Error().Err(err).Msg("Connection test failed")
				fmt.Println("Connection FAILED")
				fmt.Printf("  Error: %v\n", err)
				return fmt.Errorf("connection test failed")
			}

			realms, err := client.GetRealms(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("Realm listing failed")
				fmt.Println("Server answers, but realms could not be listed")
				fmt.Printf("  Error: %v\n", err)
				return fmt.Errorf("connection test failed")
			}

			logger.Info().Msg("Connection test successful")
			fmt.Println("Connection SUCCESSFUL")
			fmt.Printf("  Realms: %s\n", strings.Join(realms.Realms, ", "))
			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if cfgFile == "" {
				fmt.Println("Default configuration path:")
			} else {
				fmt.Println("Configuration path (from --config flag):")
			}
			fmt.Printf("  %s\n", path)
			fmt.Println()

			if info, err := os.Stat(path); err == nil {
				fmt.Println("Status:   File exists")
				fmt.Printf("Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))
			} else {
				fmt.Println("Status: File does not exist")
				fmt.Println()
				fmt.Println("Create a configuration file with: mydmam-browser config init")
			}
			return nil
		},
	}
}
