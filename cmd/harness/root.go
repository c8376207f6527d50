package main

import (
	"encoding/json"
	"fmt"
	"os"
	"rentdesk/di"
	"rentdesk/internal/domains/harness/model/dto"
	"rentdesk/internal/domains/harness/payload"
	"rentdesk/internal/domains/harness/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const flagSet = "set"

var rootCmd = &cobra.Command{
	Use:   "harness",
	Short: "Send synthetic CMS bookings and payment events to the platform functions",
	Long: `harness builds realistic test payloads and posts them to the same platform
functions production traffic reaches. The function's status and body are printed
as returned, including non-2xx answers.

Any payload field can be replaced with --set path=value. Values are read as JSON
when they parse, otherwise as plain strings.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func harnessService() service.Harness {
	return di.InitializeHarness()
}

// overrides folds every --set expression into one nested map.
func overrides(cmd *cobra.Command) (map[string]any, error) {
	exprs, err := cmd.Flags().GetStringArray(flagSet)
	if err != nil {
		return nil, err
	}

	merged := map[string]any{}

	for _, expr := range exprs {
		parsed, err := payload.ParseOverride(expr)
		if err != nil {
			return nil, err
		}

		merged = payload.Merge(merged, parsed)
	}

	return merged, nil
}

func printResponse(cmd *cobra.Command, res dto.InvokeResponse) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return err
}
