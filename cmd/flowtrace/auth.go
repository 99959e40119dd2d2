// auth.go - Authentication commands
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowtrace/flowtrace/internal/models"
)

func newLoginCmd() *cobra.Command {
	var (
		email      string
		password   string
		rememberMe bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := setup()
			if err != nil {
				return err
			}

			resp, err := c.Login(cmd.Context(), models.LoginPayload{
				Email:      email,
				Password:   password,
				RememberMe: rememberMe,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Signed in as %s <%s>\n", resp.User.FullName, resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().BoolVar(&rememberMe, "remember-me", false, "forwarded to the backend as-is")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newSignUpCmd() *cobra.Command {
	var payload models.SignUpPayload

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := setup()
			if err != nil {
				return err
			}

			resp, err := c.SignUp(cmd.Context(), payload)
			if err != nil {
				return err
			}

			fmt.Printf("Account created; signed in as %s <%s>\n", resp.User.FullName, resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&payload.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&payload.Password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&payload.FullName, "name", "n", "", "full name")
	cmd.Flags().StringVar(&payload.Company, "company", "", "company name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := setup()
			if err != nil {
				return err
			}

			// The local session is cleared even when the server call
			// fails; only then is the failure reported.
			if err := c.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("local session cleared, but the server call failed: %w", err)
			}

			fmt.Println("Signed out")
			return nil
		},
	}
}

func newForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password-recovery email",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := setup()
			if err != nil {
				return err
			}

			if err := c.ForgotPassword(cmd.Context(), email); err != nil {
				return err
			}

			fmt.Println("If the account exists, a recovery email is on its way")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.MarkFlagRequired("email")

	return cmd
}

func newResetPasswordCmd() *cobra.Command {
	var (
		newPassword   string
		recoveryToken string
	)

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using a recovery token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := setup()
			if err != nil {
				return err
			}

			if err := c.ResetPassword(cmd.Context(), newPassword, recoveryToken); err != nil {
				return err
			}

			fmt.Println("Password updated; sign in with the new password")
			return nil
		},
	}

	cmd.Flags().StringVarP(&newPassword, "new-password", "p", "", "new password")
	cmd.Flags().StringVarP(&recoveryToken, "token", "t", "", "recovery token from the reset link")
	cmd.MarkFlagRequired("new-password")
	cmd.MarkFlagRequired("token")

	return cmd
}
