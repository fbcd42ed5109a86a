package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/school-portal/internal/persistence"
)

var migrateDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply SQL migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		dir := migrateDir
		if dir == "" {
			dir = e.cfg.Postgres.MigrationsDir
		}
		if err := persistence.RunMigrations(cmd.Context(), e.pg.PoolHandle(), dir, e.logger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied from %s\n", dir)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Migrations directory (default: POSTGRES_MIGRATIONS_DIR)")
}
