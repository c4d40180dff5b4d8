package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mexm/mydmam-browser/internal/display"
	"github.com/mexm/mydmam-browser/internal/sorting"
	"github.com/mexm/mydmam-browser/internal/state"
)

// newLsCmd creates the 'ls' command.
func newLsCmd() *cobra.Command {
	var (
		skip       int
		limit      int
		page       int
		sortSpec   string
		path       string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ls <storage> [hashPath]",
		Short: "List one page of a directory",
		Long: `List one page of a directory of the selected realm. Without a hash
path (or --path) the storage root is listed.

The page size is the saved preference unless --limit is given. Several
columns can be sorted at once; the server composes them.

Examples:
  # Storage root, first page
  mydmam-browser ls media

  # Third page of a directory, newest first
  mydmam-browser ls media --path /movies --page 3 --sort date=desc

  # 50 entries starting at the 100th
  mydmam-browser ls media 3f2a... --skip 100 --limit 50`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("skip") && cmd.Flags().Changed("page") {
				return fmt.Errorf("--skip and --page are mutually exclusive")
			}
			if len(args) == 2 && path != "" {
				return fmt.Errorf("give either a hash path or --path, not both")
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.realm(); err != nil {
				return err
			}
			s.store.pageSize = limit

			storage := args[0]
			hashPath := ""
			if len(args) == 2 {
				hashPath = args[1]
			} else if path != "" && path != "/" {
				hashPath, err = s.files.HashPath(storage, path)
				if err != nil {
					return err
				}
			}

			listing := state.NewListingState(s.files, s.store, s.bus, GetLogger(), s.cfg.MaxPageButtons)
			if sortSpec != "" {
				fs, err := sorting.ParseSpec(sortSpec)
				if err != nil {
					return fmt.Errorf("invalid --sort: %w", err)
				}
				listing.SetSort(fs)
			}

			if page > 0 {
				skip = (page - 1) * s.store.PageSize()
			}
			resp := listing.OpenAt(GetContext(), storage, hashPath, skip)
			if resp == nil {
				return fmt.Errorf("could not list %s", storage)
			}

			if outputJSON {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			p := &listingPrinter{
				out:       cmd.OutOrStdout(),
				formatter: display.NewFormatter(nil),
				mode:      s.store.DisplayMode(),
				nowMs:     time.Now().UnixMilli(),
				width:     terminalWidth(),
			}
			p.listing(resp, s.files.Breadcrumb(resp), listing.Window(), listing.Sort())
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of entries to skip")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Entries per page (default: saved page size)")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "1-based page to show")
	cmd.Flags().StringVarP(&sortSpec, "sort", "s", "", "Sort columns, e.g. name=asc,date=desc (columns: name, type, date, size)")
	cmd.Flags().StringVar(&path, "path", "", "Directory path inside the storage, hashed locally")
	cmd.Flags().BoolVarP(&outputJSON, "json", "J", false, "Output the raw response as JSON")

	return cmd
}
