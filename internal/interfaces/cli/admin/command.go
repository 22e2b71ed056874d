package admin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	adminUsecases "github.com/merojugx/mero/internal/application/admin/usecases"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/infrastructure/database"
	"github.com/merojugx/mero/internal/infrastructure/permission"
	"github.com/merojugx/mero/internal/infrastructure/repository"
	"github.com/merojugx/mero/internal/interfaces/cli/bootstrap"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/logger"
)

// cliActor is recorded as the actor for changes made from the command line.
const cliActor = "cli"

var (
	env        string
	configPath string
	email      string
	role       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage system administrators",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	grant := &cobra.Command{
		Use:   "grant",
		Short: "Grant a system admin role to an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, func(ctx context.Context, gdb *gorm.DB, out io.Writer, log logger.Interface) error {
				return SetRole(ctx, gdb, email, role, out, log)
			})
		},
	}
	grant.Flags().StringVar(&email, "email", "", "Email of the user (required)")
	grant.Flags().StringVar(&role, "role", string(authorization.SystemAdminRoleSuperAdmin), "System admin role")
	_ = grant.MarkFlagRequired("email")

	revoke := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke system admin access from a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, func(ctx context.Context, gdb *gorm.DB, out io.Writer, log logger.Interface) error {
				return SetRole(ctx, gdb, email, "", out, log)
			})
		},
	}
	revoke.Flags().StringVar(&email, "email", "", "Email of the user (required)")
	_ = revoke.MarkFlagRequired("email")

	cmd.AddCommand(grant, revoke)
	return cmd
}

func withDatabase(cmd *cobra.Command, fn func(ctx context.Context, gdb *gorm.DB, out io.Writer, log logger.Interface) error) error {
	_, log, err := bootstrap.OpenDatabase(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(cmd.Context(), database.Get(), cmd.OutOrStdout(), log)
}

// SetRole looks the user up by email and grants roleName, or revokes access
// when roleName is empty. The permission enforcer is updated in the same step.
func SetRole(ctx context.Context, gdb *gorm.DB, email, roleName string, out io.Writer, log logger.Interface) error {
	users := repository.NewUserRepository(gdb, log)

	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("no user with email %s", email)
		}
		return err
	}

	enforcer, err := permission.NewEnforcer(gdb, log)
	if err != nil {
		return err
	}

	uc := adminUsecases.NewSetSystemAdminUseCase(users, repository.NewSessionRepository(gdb), enforcer, log)
	result, err := uc.Execute(ctx, adminUsecases.SetSystemAdminCommand{
		Actor:  authorization.Principal{UserID: cliActor},
		UserID: u.ID(),
		Role:   roleName,
	})
	if err != nil {
		return err
	}

	if roleName == "" {
		_, err = fmt.Fprintf(out, "revoked system admin access from %s\n", email)
		return err
	}
	_, err = fmt.Fprintf(out, "granted %s to %s (%s)\n", roleName, email, result.ID)
	return err
}
