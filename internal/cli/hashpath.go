package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/prefs"
)

// newHashPathCmd creates the 'hashpath' command.
func newHashPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hashpath <storage> <path>",
		Short: "Print the hash path of a file",
		Long: `Print the hash path the server uses to identify a file or directory:
the SHA-256 of "realm:storage:path". Nothing is sent to the server.

Example:
  mydmam-browser hashpath media /movies/2024`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			realm := realmFlag
			if realm == "" {
				pf, err := openPreferences()
				if err != nil {
					return err
				}
				realm = prefs.RealmOrEmpty(pf)
			}
			if realm == "" {
				return fmt.Errorf("no realm selected: run 'mydmam-browser realms select <realm>' or pass --realm")
			}

			hash, err := api.HashPath(realm, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
}
