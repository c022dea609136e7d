package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trendify-core/client/internal/model"
)

func registerCmd(c *cli) *cobra.Command {
	var req model.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and keep its session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.api.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}
			return c.keepSession(cmd, res.Body.Data, res.Body.Message)
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd(c *cli) *cobra.Command {
	var req model.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.api.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}
			return c.keepSession(cmd, res.Body.Data, res.Body.Message)
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.session.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (c *cli) keepSession(cmd *cobra.Command, user *model.UserData, message string) error {
	if user == nil || user.Token == "" {
		return fmt.Errorf("server returned no session token")
	}
	if err := c.session.SetToken(cmd.Context(), user.Token); err != nil {
		return err
	}
	if message == "" {
		message = "OK"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: signed in as %s <%s>\n", message, user.Name, user.Email)
	return nil
}
