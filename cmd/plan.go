package main

import (
	"context"
	"strconv"
	"time"

	"leakwatch/internal/config"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// planCommand constructs the 'plan' subcommand that assigns a subscription
// plan to a user by chat ID. Payment processing is out of scope, so plans
// are granted by operators.
func planCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [chat-id] [free|premium|business]",
		Short: "Assigns a subscription plan to a user",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			chatID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				logger.Fatal(ctx, "malformed chat id", zap.Error(err))
			}

			plan := domain.Plan(args[1])
			switch plan {
			case domain.PlanFree, domain.PlanPremium, domain.PlanBusiness:
			default:
				logger.Fatal(ctx, "unknown plan", zap.String("plan", args[1]))
			}

			days, _ := cmd.Flags().GetInt("days")

			strg, closeStorage := getPostgres(ctx, cfg)
			defer closeStorage()

			user, err := strg.UserByChatID(ctx, chatID)
			if err != nil {
				logger.Fatal(ctx, "could not fetch user", zap.Error(err))
			}
			if user == nil {
				logger.Fatal(ctx, "user not found", zap.Int64("chatId", chatID))
			}

			var expiresAt time.Time
			if plan != domain.PlanFree {
				expiresAt = time.Now().AddDate(0, 0, days)
			}

			updated, err := strg.SetPlan(ctx, user.ID, plan, expiresAt)
			if err != nil {
				logger.Fatal(ctx, "could not set plan", zap.Error(err))
			}

			logger.Info(ctx, "plan updated",
				zap.Int64("chatId", chatID),
				zap.String("plan", string(updated.Plan)),
				zap.Time("expiresAt", updated.PlanExpiresAt))
		},
	}

	cmd.Flags().Int("days", 30, "number of days until the plan expires")

	return cmd
}
