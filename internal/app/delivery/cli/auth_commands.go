package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func attachAuthCommands(root *cobra.Command, app *App) {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect the stored bearer token",
	}
	tokenCmd.AddCommand(newTokenShowCommand(app))

	root.AddCommand(newLoginCommand(app), newLogoutCommand(app), tokenCmd)
}

func newLoginCommand(app *App) *cobra.Command {
	var (
		request       requests.Login
		passwordStdin bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the returned token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passwordStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password from stdin: %w", err)
				}
				request.Password = strings.TrimRight(line, "\r\n")
			}

			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}
			if deps.TokenStore == nil {
				return errNoTokenStore
			}

			login, err := deps.Auth.Login(cmd.Context(), &request)
			if err != nil {
				return err
			}
			if err := deps.TokenStore.SaveToken(cmd.Context(), login.Token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), constvars.LoginSuccessMessage+"\n", deps.InternalConfig.API.TokenStorageKey)
			return app.print(map[string]any{"role": login.Role, "user": login.User})
		},
	}
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().StringVar(&request.Role, "role", "", "login as admin, doctor, patient or staff")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}
			if deps.TokenStore == nil {
				return errNoTokenStore
			}
			if err := deps.TokenStore.ClearToken(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), constvars.LogoutSuccessMessage+"\n", deps.InternalConfig.API.TokenStorageKey)
			return nil
		},
	}
}

func newTokenShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the claims of the current token without verifying it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}
			token, err := deps.Credentials.Token(cmd.Context())
			if err != nil {
				return err
			}
			if token == "" {
				return errors.New("no token stored, run clinicctl login first")
			}

			claims, err := utils.ParseJWTUnverified(token)
			if err != nil {
				return fmt.Errorf("stored token is not a JWT: %w", err)
			}

			view := map[string]any{
				"subject": claims.Subject,
				"role":    claims.Role,
				"expired": claims.Expired(time.Now()),
			}
			if !claims.ExpiresAt.IsZero() {
				view["expiresAt"] = claims.ExpiresAt.UTC().Format(time.RFC3339)
			}
			return app.print(view)
		},
	}
}
