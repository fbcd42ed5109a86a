package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/service"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var addFlags struct {
	id        string
	password  string
	role      string
	firstName string
	lastName  string
	email     string
	phone     string
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an account",
	Example: `  portalctl user add --id 2025001042 --role teacher --password s3cret \
    --first-name Grace --last-name Hopper`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateAddFlags()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		user, err := e.userService().CreateUser(cmd.Context(), service.CreateUserInput{
			ID:        addFlags.id,
			Password:  addFlags.password,
			Role:      addFlags.role,
			FirstName: addFlags.firstName,
			LastName:  addFlags.lastName,
			Email:     optional(addFlags.email),
			Phone:     optional(addFlags.phone),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", user.ID, user.Role)
		return nil
	},
}

func init() {
	f := userAddCmd.Flags()
	f.StringVar(&addFlags.id, "id", "", "Numeric account id (required)")
	f.StringVar(&addFlags.password, "password", "", "Password (required)")
	f.StringVar(&addFlags.role, "role", "", "Role: admin, teacher/staff or student/learner (required)")
	f.StringVar(&addFlags.firstName, "first-name", "", "First name (required)")
	f.StringVar(&addFlags.lastName, "last-name", "", "Last name (required)")
	f.StringVar(&addFlags.email, "email", "", "Email address")
	f.StringVar(&addFlags.phone, "phone", "", "Phone number")

	userCmd.AddCommand(userAddCmd)
}

func validateAddFlags() error {
	if addFlags.id == "" || addFlags.password == "" || addFlags.role == "" ||
		addFlags.firstName == "" || addFlags.lastName == "" {
		return errors.New("--id, --password, --role, --first-name and --last-name are required")
	}
	if _, ok := domain.ParseResourceRole(addFlags.role); !ok {
		return fmt.Errorf("unknown role %q", addFlags.role)
	}
	return nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
