package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mexm/mydmam-browser/internal/constraints"
	"github.com/mexm/mydmam-browser/internal/display"
	"github.com/mexm/mydmam-browser/internal/models"
	"github.com/mexm/mydmam-browser/internal/state"
	"github.com/mexm/mydmam-browser/internal/util/sanitize"
)

// searchFilters holds the advanced filter flags of 'search'.
type searchFilters struct {
	advanced   bool
	conditions map[constraints.ConditionField]*string
	dateFrom   string
	dateTo     string
	sizeMin    int64
	sizeMax    int64
	storages   []string
	parentPath string
}

func (f *searchFilters) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.advanced, "advanced", false, "Send advanced filters even when none is set")
	f.conditions = make(map[constraints.ConditionField]*string, len(constraints.ConditionFields))
	for _, field := range constraints.ConditionFields {
		v := new(string)
		f.conditions[field] = v
		flags.StringVar(v, string(field), "", "Filter on "+string(field)+" entries: ignore, must, must-not")
	}
	flags.StringVar(&f.dateFrom, "date-from", "", "Modified on or after (RFC3339 or YYYY-MM-DD)")
	flags.StringVar(&f.dateTo, "date-to", "", "Modified on or before (RFC3339 or YYYY-MM-DD, default now)")
	flags.Int64Var(&f.sizeMin, "size-min", 0, "Minimum size in bytes (excludes directories)")
	flags.Int64Var(&f.sizeMax, "size-max", 0, "Maximum size in bytes (excludes directories)")
	flags.StringArrayVar(&f.storages, "storage", nil, "Only search this storage (repeatable)")
	flags.StringVar(&f.parentPath, "parent-path", "", "Only search below this directory")
}

// active reports whether any filter flag was given.
func (f *searchFilters) active(flags *pflag.FlagSet) bool {
	if f.advanced {
		return true
	}
	for _, name := range []string{"date-from", "date-to", "size-min", "size-max", "storage", "parent-path"} {
		if flags.Changed(name) {
			return true
		}
	}
	for field := range f.conditions {
		if flags.Changed(string(field)) {
			return true
		}
	}
	return false
}

// apply switches filters on and writes every given flag into m.
func (f *searchFilters) apply(m *constraints.Model, flags *pflag.FlagSet, now time.Time) error {
	m.EnableAdvancedFilters()

	// Size before conditions so that an explicit --directory wins.
	if flags.Changed("size-min") || flags.Changed("size-max") {
		max := f.sizeMax
		if !flags.Changed("size-max") {
			max = constraints.SizeEditorMax(models.NoRange)
		}
		if f.sizeMin > max {
			return fmt.Errorf("--size-min is greater than --size-max")
		}
		if err := m.SetRange(constraints.FieldSize, models.SearchConstraintRange{Restricted: true, Min: f.sizeMin, Max: max}); err != nil {
			return err
		}
	}

	for _, field := range constraints.ConditionFields {
		if !flags.Changed(string(field)) {
			continue
		}
		c, err := models.ParseCondition(*f.conditions[field])
		if err != nil {
			return fmt.Errorf("--%s: %w", field, err)
		}
		if err := m.SetCondition(field, c); err != nil {
			return err
		}
	}

	if flags.Changed("date-from") || flags.Changed("date-to") {
		from, to := time.UnixMilli(0), now
		var err error
		if f.dateFrom != "" {
			if from, err = parseDate(f.dateFrom); err != nil {
				return fmt.Errorf("--date-from: %w", err)
			}
		}
		if f.dateTo != "" {
			if to, err = parseDate(f.dateTo); err != nil {
				return fmt.Errorf("--date-to: %w", err)
			}
		}
		if from.After(to) {
			return fmt.Errorf("--date-from is after --date-to")
		}
		if err := m.SetRange(constraints.FieldDate, models.SearchConstraintRange{Restricted: true, Min: from.UnixMilli(), Max: to.UnixMilli()}); err != nil {
			return err
		}
	}

	if flags.Changed("storage") {
		if err := m.SetStorages(f.storages); err != nil {
			return err
		}
	}
	if flags.Changed("parent-path") {
		if err := m.SetParentPath(f.parentPath); err != nil {
			return err
		}
	}
	return nil
}

// parseDate accepts RFC3339 or a local calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// newSearchCmd creates the 'search' command.
func newSearchCmd() *cobra.Command {
	var (
		limit      int
		resolve    bool
		suggest    bool
		outputJSON bool
		filters    searchFilters
	)

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search files in the selected realm",
		Long: `Full-text search in the selected realm.

Any filter flag switches advanced filters on; the query is then sent with
them in a single request. Without filters, identical searches are served
from a short-lived cache.

Examples:
  mydmam-browser search holiday
  mydmam-browser search report --directory must-not --size-min 1000000
  mydmam-browser search "raw footage" --storage media --parent-path /2024
  mydmam-browser search hol --suggest`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := sanitize.Query(strings.Join(args, " "))
			if q == "" {
				return fmt.Errorf("empty query")
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.realm(); err != nil {
				return err
			}
			ctx := GetContext()
			now := time.Now()
			out := cmd.OutOrStdout()

			if suggest {
				for _, hit := range s.search.Suggest(ctx, q) {
					fmt.Fprintln(out, sanitize.DisplayName(hit.Name))
				}
				return nil
			}

			session := state.NewSearchSession(s.search, s.bus, GetLogger(), limit, resolve)
			session.SetQuery(q)

			var resp *models.OpenSearchResponse
			if filters.active(cmd.Flags()) {
				resp, err = session.Apply(ctx, func(m *constraints.Model) error {
					return filters.apply(m, cmd.Flags(), now)
				})
				if err != nil {
					return err
				}
			} else {
				resp = session.SearchAgain(ctx)
			}
			if resp == nil {
				return fmt.Errorf("search %q failed", q)
			}

			if outputJSON {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			p := &listingPrinter{
				out:       out,
				formatter: display.NewFormatter(nil),
				mode:      s.store.DisplayMode(),
				nowMs:     now.UnixMilli(),
				width:     terminalWidth(),
			}
			if c, ok := session.Constraints(); ok {
				p.filters(c)
			}
			p.results(resp, q)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (0: server maximum)")
	cmd.Flags().BoolVar(&resolve, "resolve", true, "Ask the server for size and date of every hit")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "Print search-as-you-type suggestions only")
	cmd.Flags().BoolVarP(&outputJSON, "json", "J", false, "Output the raw response as JSON")
	filters.register(cmd.Flags())

	return cmd
}
