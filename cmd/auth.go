package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/forms"
	"github.com/princinho/menufront/validation"
)

var loginForm dto.LoginForm

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as admin and keep the token in the session file",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		form := forms.New(loginForm)
		err := form.Submit(cmd.Context(), validation.Login, func(ctx context.Context, f dto.LoginForm) error {
			return client.Login(ctx, f.Email, f.Password)
		})
		if err != nil {
			return explain(err)
		}
		if !form.Succeeded() {
			return fmt.Errorf("%s", form.Validation.Error())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", loginForm.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginForm.Email, "email", "", "admin email")
	loginCmd.Flags().StringVar(&loginForm.Password, "password", "", "admin password")
}
