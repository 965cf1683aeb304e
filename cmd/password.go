package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"leakwatch/internal/config"
	"leakwatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// passwordCommand constructs the 'password' subcommand that assesses a
// password's strength and prints the result as JSON. The password is read
// from stdin so it never lands in shell history or the process list.
func passwordCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Assesses password strength (reads the password from stdin)",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				logger.Fatal(ctx, "could not read password from stdin", zap.Error(err))
			}

			assessment, err := newAssessor(cfg).Assess(ctx, strings.TrimRight(line, "\r\n"))
			if err != nil {
				logger.Fatal(ctx, "assessment failed", zap.Error(err))
			}

			out, err := json.MarshalIndent(assessment, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode assessment", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	return cmd
}
