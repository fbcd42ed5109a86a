package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/school-portal/internal/auth"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default admin, teacher and student accounts",
	Long: `Create one account per role using the configured role secrets as passwords.

Accounts that already exist are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.userService().SeedDefaults(cmd.Context(), auth.RoleSecrets{
			Admin:   e.cfg.Auth.AdminSecret,
			Staff:   e.cfg.Auth.StaffSecret,
			Learner: e.cfg.Auth.LearnerSecret,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, id := range result.Created {
			fmt.Fprintf(out, "created %s\n", id)
		}
		for _, id := range result.Skipped {
			fmt.Fprintf(out, "exists  %s\n", id)
		}
		return nil
	},
}
