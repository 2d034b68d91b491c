package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/dto"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

const minPasswordLength = 6

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) newStaffCmd() *cobra.Command {
	staff := &cobra.Command{
		Use:   "staff",
		Short: "Manage ADMIN and USER accounts",
	}

	var name, email, role string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a staff account; the password is prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if name == "" {
				if name, err = GetSimpleText(a.in, "Name", a.out); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = GetSimpleText(a.in, "Email", a.out); err != nil {
					return err
				}
			}
			password, err := a.promptNewPassword()
			if err != nil {
				return err
			}

			req := dto.StaffRequest{
				Name:     strings.TrimSpace(name),
				Email:    common.NormalizeEmail(email),
				Password: password,
				Role:     strings.ToUpper(role),
			}
			if err := validateStaff(req); err != nil {
				return err
			}

			u, err := a.staff.Create(cmd.Context(), &models.StaffUser{
				Person: models.Person{Name: req.Name, Email: req.Email, Password: req.Password},
				Role:   common.Role(req.Role),
			})
			if err != nil {
				return err
			}
			a.printf("created %s %s (%s)\n", u.Role, u.Email, u.ID)
			return nil
		},
	}
	create.Flags().StringVarP(&name, "name", "n", "", "display name")
	create.Flags().StringVarP(&email, "email", "e", "", "login email")
	create.Flags().StringVarP(&role, "role", "r", string(common.RoleAdmin), "ADMIN or USER")

	staff.AddCommand(create)
	return staff
}

// validateStaff applies the rules the REST API enforces on account input.
func validateStaff(req dto.StaffRequest) error {
	err := dto.NewValidator().Struct(req)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Field()+" "+dto.FieldMessage(fe))
	}
	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), common.ErrorValidation)
}

func (a *App) promptNewPassword() (string, error) {
	pw, err := GetPassword("Password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeBytes(pw)
	if len(pw) < minPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	confirm, err := GetPassword("Repeat password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeBytes(confirm)
	if string(pw) != string(confirm) {
		return "", errPasswordMismatch
	}
	return string(pw), nil
}
