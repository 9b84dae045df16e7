// Package main provides a command-line tool that mints a session token for
// local development, so the landing page's call-to-action can be exercised
// as a signed-in visitor without a login service.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/phrazzld/launchpad/internal/config"
	"github.com/phrazzld/launchpad/internal/service/auth"
	"github.com/spf13/cobra"
)

// configLoader returns the configuration used to sign tokens.
type configLoader func() (*config.Config, error)

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the session-token command.
func newRootCmd(load configLoader) *cobra.Command {
	var userID string
	var cookieOnly bool

	cmd := &cobra.Command{
		Use:   "session-token",
		Short: "Mint a signed session token",
		Long: `Mint a session token signed with the configured secret.

The token is read from LAUNCHPAD_AUTH_JWT_SECRET (or config.yaml) and
lives for LAUNCHPAD_AUTH_TOKEN_LIFETIME_MINUTES. Send it back in the
session cookie to reach the dashboard from the landing page.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid --user-id %q: %w", userID, err)
				}
				id = parsed
			}

			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			tokens, err := auth.NewJWTService(cfg.Auth)
			if err != nil {
				return fmt.Errorf("failed to initialize JWT service: %w", err)
			}

			token, err := tokens.GenerateToken(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			out := cmd.OutOrStdout()
			if cookieOnly {
				_, err = fmt.Fprintf(out, "%s=%s\n", cfg.Auth.CookieName, token)
				return err
			}
			_, err = fmt.Fprintf(out, "user_id: %s\ntoken:   %s\ncookie:  %s=%s\n",
				id, token, cfg.Auth.CookieName, token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user ID to embed in the token (random when empty)")
	cmd.Flags().BoolVar(&cookieOnly, "cookie", false, "print only the cookie pair")

	return cmd
}
