package cli

import (
	"github.com/spf13/cobra"

	"github.com/pharmanet/pharmacy-console/internal/service/user"
)

func (c *container) newLoginCommand() *cobra.Command {
	var creds user.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			token, err := c.users.ObtainToken(ctx, creds)
			if err != nil {
				return err
			}

			profile, err := c.users.Profile(ctx, token.Value)
			if err != nil {
				return err
			}

			if err = c.sess.Login(ctx, token, profile); err != nil {
				return err
			}

			cmd.Printf("Logged in as %s (%s)\n", profile.Info.Name, profile.Info.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Principal, "principal", "", "email or phone number")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *container) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.sess.Logout(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("Logged out")
			return nil
		},
	}
}

func (c *container) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, profile, held := c.sess.Current()
			if !held {
				cmd.Println("Not logged in")
				return nil
			}
			return printJSON(cmd, profile)
		},
	}
}
