package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/constants"
)

const defaultPingPayload = "mydmam-browser"

// newPingCmd creates the 'ping' command.
func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping [payload]",
		Short: "Check the server answers",
		Long: fmt.Sprintf(`Send a payload to the server and print its answer, "pong: " followed
by the upper-cased payload. The payload must be %d to %d characters long.`,
			constants.PingPayloadMinLength, constants.PingPayloadMaxLength),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := defaultPingPayload
			if len(args) == 1 {
				payload = args[0]
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			start := time.Now()
			pong, err := s.client.Ping(GetContext(), payload)
			if errors.Is(err, api.ErrInvalidPayload) {
				return fmt.Errorf("payload must be %d to %d characters and not blank",
					constants.PingPayloadMinLength, constants.PingPayloadMaxLength)
			}
			if err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}
			fmt.Printf("%s (%s)\n", pong, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
