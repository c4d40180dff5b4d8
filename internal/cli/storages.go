package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStoragesCmd creates the 'storages' command.
func newStoragesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "storages",
		Short: "List the storages of the selected realm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			realm, err := s.realm()
			if err != nil {
				return err
			}
			storages := s.files.Storages(GetContext())
			if storages == nil {
				return fmt.Errorf("could not fetch storages of realm %q", realm)
			}
			if len(storages) == 0 {
				fmt.Printf("No storages in realm %s\n", realm)
				return nil
			}
			for _, st := range storages {
				fmt.Println(st)
			}
			return nil
		},
	}
}
