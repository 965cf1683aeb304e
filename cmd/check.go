package main

import (
	"context"
	"encoding/json"
	"fmt"

	"leakwatch/internal/config"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand constructs the 'check' subcommand that runs a one-off
// identifier check and prints the result as JSON.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [identifier]",
		Short: "Checks an identifier against the breach sources",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			queryType, _ := cmd.Flags().GetString("type")

			result, err := newChecker(cfg).Check(ctx, args[0], domain.QueryType(queryType))
			if err != nil {
				logger.Fatal(ctx, "check failed", zap.Error(err))
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode result", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("type", string(domain.QueryTypeEmail), "Identifier type: email, phone or username")

	return cmd
}
