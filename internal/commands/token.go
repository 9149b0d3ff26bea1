package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		userID string
		role   string
		secret string
		issuer string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development access token for the BFF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.Role(role).IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}
			if secret == "" {
				return fmt.Errorf("--secret or JWT_SECRET is required")
			}
			token, err := utils.GenerateJWT(userID, role, secret, expiry, issuer)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID placed in the subject claim (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleStaff), "staff, admin or superadmin")
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "HMAC signing secret")
	cmd.Flags().StringVar(&issuer, "issuer", "finance-backoffice", "issuer claim")
	cmd.Flags().DurationVar(&expiry, "expiry", time.Hour, "token lifetime")

	return cmd
}
