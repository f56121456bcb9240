package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pharmanet/pharmacy-console/internal/export"
	"github.com/pharmanet/pharmacy-console/internal/service/user"
	"github.com/pharmanet/pharmacy-console/internal/session"
)

func (c *container) newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "users",
		Short:             "Manage the user directory",
		PersistentPreRunE: c.requireRole(session.RoleAdmin),
	}

	cmd.AddCommand(
		c.newUsersListCommand(),
		c.newUsersExportCommand(),
		c.newUsersInviteCommand(),
		c.newUsersUpdateCommand(),
		c.newUsersRemoveCommand(),
	)
	return cmd
}

func (c *container) newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.users.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
}

func (c *container) newUsersExportCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the user directory as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.users.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				file, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}
			return export.WriteCSV(out, records)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write CSV to a file instead of stdout")
	return cmd
}

func (c *container) newUsersInviteCommand() *cobra.Command {
	var (
		invitation user.Invitation
		role       string
	)

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite a user to a pharmacy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			invitation.Role = session.Role(role)
			message, err := c.users.Invite(cmd.Context(), invitation)
			if err != nil {
				return err
			}
			cmd.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVar(&invitation.Email, "email", "", "invitee email")
	cmd.Flags().StringVar(&role, "role", "", "role to grant (ADMIN, MANAGER or EMPLOYEE)")
	cmd.Flags().Int64Var(&invitation.PharmacyID, "pharmacy", 0, "pharmacy to assign")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("pharmacy")
	return cmd
}

func (c *container) newUsersUpdateCommand() *cobra.Command {
	var (
		userID      int64
		phoneNumber string
		name        string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a user's contact details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update user.Update
			if cmd.Flags().Changed("phone") {
				update.PhoneNumber = &phoneNumber
			}
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}

			record, err := c.users.Update(cmd.Context(), userID, update)
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}

	cmd.Flags().Int64Var(&userID, "id", 0, "user to update")
	cmd.Flags().StringVar(&phoneNumber, "phone", "", "new phone number")
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (c *container) newUsersRemoveCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.users.Delete(cmd.Context(), userID); err != nil {
				return err
			}
			cmd.Println("User deleted")
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "id", 0, "user to delete")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
