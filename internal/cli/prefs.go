package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mexm/mydmam-browser/internal/display"
	"github.com/mexm/mydmam-browser/internal/prefs"
)

// newPrefsCmd creates the 'prefs' command group.
func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change saved preferences",
		Long: `Preferences are saved in preferences.conf next to the configuration
file, and written after every change.

Commands:
  show            - Display saved preferences
  set-page-size   - Entries per listing page
  set-date-mode   - simplified, relative or full
  cycle-date-mode - Switch to the next date mode`,
	}

	cmd.AddCommand(newPrefsShowCmd())
	cmd.AddCommand(newPrefsSetPageSizeCmd())
	cmd.AddCommand(newPrefsSetDateModeCmd())
	cmd.AddCommand(newPrefsCycleDateModeCmd())
	return cmd
}

func newPrefsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := openPreferences()
			if err != nil {
				return err
			}
			realm := prefs.RealmOrEmpty(pf)
			if realm == "" {
				realm = "<not set>"
			}
			fmt.Printf("Date mode: %s\n", pf.DisplayMode())
			fmt.Printf("Page size: %d\n", pf.PageSize())
			fmt.Printf("Realm:     %s\n", realm)
			fmt.Printf("\nPreferences file: %s\n", pf.Path())
			return nil
		},
	}
}

func newPrefsSetPageSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-page-size <n>",
		Short: "Set the number of entries per listing page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid page size %q", args[0])
			}
			pf, err := openPreferences()
			if err != nil {
				return err
			}
			if err := pf.SetPageSize(n); err != nil {
				return fmt.Errorf("failed to save page size: %w", err)
			}
			fmt.Printf("Page size: %d\n", pf.PageSize())
			return nil
		},
	}
}

func newPrefsSetDateModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set-date-mode <simplified|relative|full>",
		Short:     "Set how dates are displayed",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"simplified", "relative", "full"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := display.ParseMode(args[0])
			if err != nil {
				return err
			}
			pf, err := openPreferences()
			if err != nil {
				return err
			}
			if err := pf.SetDisplayMode(mode); err != nil {
				return fmt.Errorf("failed to save date mode: %w", err)
			}
			fmt.Printf("Date mode: %s\n", mode)
			return nil
		},
	}
}

func newPrefsCycleDateModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle-date-mode",
		Short: "Switch to the next date mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := openPreferences()
			if err != nil {
				return err
			}
			mode, err := prefs.CycleDisplayMode(pf)
			if err != nil {
				return fmt.Errorf("failed to save date mode: %w", err)
			}
			fmt.Printf("Date mode: %s\n", mode)
			return nil
		},
	}
}
