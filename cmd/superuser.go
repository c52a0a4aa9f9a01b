package main

import (
	"context"
	"fmt"
	"recipe/internal/account"
	"recipe/internal/config"
	"recipe/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// superuserCommand constructs the 'create-superuser' subcommand that creates
// an active staff user with superuser rights.
func superuserCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Creates a staff user with superuser rights",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := account.New(pgsql, account.Options{}).CreateSuperuser(ctx, account.NewUser{
				Email:    email,
				Password: password,
				Name:     name,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create superuser", zap.Error(err))
			}

			fmt.Println(user.ID) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Superuser email")
	cmd.Flags().String("password", "", "Superuser password")
	cmd.Flags().String("name", "", "Superuser name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
