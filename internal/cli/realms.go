package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// newRealmsCmd creates the 'realms' command group.
func newRealmsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "realms",
		Short: "List realms and show the selected one",
		Long: `List the realms indexed by the server. The selected realm is marked
with "*". A saved realm the server no longer knows is forgotten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			realms := s.files.Realms(GetContext())
			if realms == nil {
				return fmt.Errorf("could not fetch realms from %s", s.cfg.APIBaseURL)
			}
			if len(realms) == 0 {
				fmt.Println("No realms found")
				return nil
			}

			selected := s.files.Realm()
			for _, r := range realms {
				mark := " "
				if r == selected {
					mark = "*"
				}
				fmt.Printf("%s %s\n", mark, r)
			}
			return nil
		},
	}

	cmd.AddCommand(newRealmsSelectCmd())
	return cmd
}

// newRealmsSelectCmd creates the 'realms select' command.
func newRealmsSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <realm>",
		Short: "Select and save the realm used by later commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			realms := s.files.Realms(GetContext())
			if realms == nil {
				return fmt.Errorf("could not fetch realms from %s", s.cfg.APIBaseURL)
			}
			if !slices.Contains(realms, args[0]) {
				return fmt.Errorf("unknown realm %q", args[0])
			}
			if err := s.files.SelectRealm(args[0]); err != nil {
				return fmt.Errorf("failed to save realm: %w", err)
			}
			GetLogger().Info().Str("realm", args[0]).Msg("Realm selected")
			return nil
		},
	}
}
