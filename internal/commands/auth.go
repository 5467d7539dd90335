package commands

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/adapters/remote"
	"github.com/SscSPs/money_tracker/internal/core/tracker"
	"github.com/SscSPs/money_tracker/internal/forms"
)

func (a *app) authSession() *tracker.AuthSession {
	return tracker.NewAuthSession(remote.NewAuthGateway(a.client), a.creds, a.logger)
}

func newLoginCommand(a *app) *cobra.Command {
	var form forms.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return err
			}
			session := a.authSession()
			if err := session.Login(cmd.Context(), form.Email, form.Password); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, session.Feedback().Success)
			token, _ := a.creds.Get()
			if userID := tokenSubject(token); userID != "" && userID != a.cfg.OwnerID {
				fmt.Fprintf(out, "Your user id is %s; set OWNER_ID to it to manage your records.\n", userID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCommand(a *app) *cobra.Command {
	var form forms.RegisterForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return err
			}
			session := a.authSession()
			if err := session.Register(cmd.Context(), form.Username, form.Email, form.Password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.Feedback().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Username, "username", "", "user name (required)")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&form.Password, "password", "", "password, at least 8 characters (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := a.authSession()
			if err := session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.Feedback().Success)
			return nil
		},
	}
}

// tokenSubject reads the subject of a token without verifying it. The client
// has no key; it only uses the subject as a hint.
func tokenSubject(token string) string {
	if token == "" {
		return ""
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	return claims.Subject
}
