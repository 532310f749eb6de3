package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	adapteridentity "github.com/jsamuelsen11/teamtasks/internal/adapters/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
)

// TokenOptions holds flags for the token command.
type TokenOptions struct {
	UserID   int64
	Role     string
	Inactive bool
	TTL      time.Duration
}

type tokenOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewTokenCommand creates the token command.
func NewTokenCommand(rootOpts *RootOptions, env Env) *cobra.Command {
	opts := &TokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		Long: `Sign a token with TEAMTASKS_JWT_SIGNING_KEY using the issuer and audience
of the selected profile. The orchestrator revalidates the user against the
account store on every request, so the claims only need to name a real user.`,
		Example: `  trackerctl token --user-id 1 --role admin
  trackerctl token --user-id 7 --role member --ttl 15m`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.UserID <= 0 {
				return NewExitError(ExitCommandError, "--user-id must be positive")
			}
			if opts.TTL <= 0 {
				return NewExitError(ExitCommandError, "--ttl must be positive")
			}
			role, err := account.ParseRole(opts.Role)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --role", err)
			}

			cfg, _, err := loadConfig(rootOpts, env, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			secrets, err := env.LoadSecrets()
			if err != nil {
				return WrapExitError(ExitCommandError, "loading secrets", err)
			}
			if err := secrets.RequireSigningKey(); err != nil {
				return WrapExitError(ExitCommandError, "signing key", err)
			}

			now := time.Now()
			issuer, err := adapteridentity.NewIssuer(adapteridentity.Config{
				SigningKey: []byte(secrets.JWTSigningKey),
				Issuer:     cfg.Auth.Issuer,
				Audience:   cfg.Auth.Audience,
				Now:        func() time.Time { return now },
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "building issuer", err)
			}

			token, err := issuer.Mint(identity.Principal{
				UserID: opts.UserID,
				Role:   role,
				Active: !opts.Inactive,
			}, opts.TTL)
			if err != nil {
				return WrapExitError(ExitFailure, "minting token", err)
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), tokenOutput{Token: token, ExpiresAt: now.Add(opts.TTL).UTC()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.UserID, "user-id", 0, "user the token is issued for (required)")
	cmd.Flags().StringVar(&opts.Role, "role", account.RoleMember.String(), "role claim (member|team_leader|admin)")
	cmd.Flags().BoolVar(&opts.Inactive, "inactive", false, "mark the account inactive in the claims")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
