package main

import (
	"context"
	"fmt"
	"recipe/internal/account"
	"recipe/internal/config"
	"recipe/pkg/domain"
	"recipe/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that signs an access token
// for a user id with the configured private key, without checking the database.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates an access token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject is not a valid user id", zap.Error(err))
			}

			tokens, err := account.NewTokenIssuer(cfg.Auth.PrivateKey, ttl)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			signed, err := tokens.Issue(domain.UserID(userID))
			if err != nil {
				logger.Fatal(ctx, "could not sign token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User ID")
	cmd.Flags().Duration("ttl", cfg.Auth.TokenTTL, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
