// Package commands implements the portalctl administration commands.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/school-portal/internal/config"
	"github.com/spec-kit/school-portal/internal/observability"
	"github.com/spec-kit/school-portal/internal/persistence"
	"github.com/spec-kit/school-portal/internal/repository"
	"github.com/spec-kit/school-portal/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "LDSS portal administration",
	Long: `portalctl manages the LDSS portal's account store.

It reads the same environment configuration as the API server and talks to
Postgres directly, so POSTGRES_DSN must be set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(migrateCmd)
}

// env is the runtime a command works against.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	pg     *persistence.Postgres
}

func (e *env) Close() {
	e.pg.Close()
	_ = e.logger.Sync()
}

func (e *env) userService() *service.UserService {
	return service.NewUserService(repository.NewUserRepository(e.pg.PoolHandle()), e.cfg.Auth.BcryptCost)
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if !pg.Enabled() {
		_ = logger.Sync()
		return nil, errors.New("POSTGRES_DSN is required")
	}
	return &env{cfg: cfg, logger: logger, pg: pg}, nil
}
