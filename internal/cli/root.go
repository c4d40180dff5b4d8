// Package cli provides the command-line interface for mydmam-browser.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mexm/mydmam-browser/internal/logging"
	"github.com/mexm/mydmam-browser/internal/version"
)

var (
	// Global flags
	cfgFile    string
	prefsFile  string
	apiBaseURL string
	proxyMode  string
	realmFlag  string
	verbose    bool
	debug      bool

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mydmam-browser",
		Short: "Browse and search a MyDMAM file index",
		Long: `mydmam-browser ` + version.Version + ` - Built: ` + version.BuildTime + `
Navigate the storages indexed by a MyDMAM server page by page, and run
filtered searches across them.

Dates follow the display mode saved in the preferences file
(see "mydmam-browser prefs").`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			if verbose || debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&prefsFile, "prefs", "", "Preferences file path")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api-url", "", "MyDMAM API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&proxyMode, "proxy-mode", "", "Proxy mode: no-proxy, system, basic, ntlm (overrides config)")
	rootCmd.PersistentFlags().StringVar(&realmFlag, "realm", "", "Realm to use for this invocation only")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a tab-completion script for mydmam-browser.

  source <(mydmam-browser completion bash)
  mydmam-browser completion zsh > "${fpath[1]}/_mydmam-browser"
  mydmam-browser completion fish | source`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(out)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			default:
				return rootCmd.GenPowerShellCompletion(out)
			}
		},
	}
	rootCmd.AddCommand(completionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootContext, cancelFunc = context.WithCancel(context.Background())
	defer cancelFunc()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, cancelling...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newRealmsCmd())
	rootCmd.AddCommand(newStoragesCmd())
	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newHashPathCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newPingCmd())
	rootCmd.AddCommand(newPrefsCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetContext returns the global CLI context with signal handling.
// This context will be cancelled when the user presses Ctrl+C.
func GetContext() context.Context {
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}
