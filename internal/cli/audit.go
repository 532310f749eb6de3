package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// NewAuditCommand creates the audit command.
func NewAuditCommand(rootOpts *RootOptions, env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check cross-store invariants",
		Long: `Scan the account and team stores and report every user whose role,
activity or membership breaks a cross-store rule.

Exits 1 when violations are found.`,
		Example: `  trackerctl audit --profile prod
  trackerctl audit --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := maintenance(ctx, rootOpts, env, cmd)
			if err != nil {
				return err
			}

			report, err := svc.Audit(ctx, identity.Operator())
			if err != nil {
				return WrapExitError(ExitCommandError, "audit failed", err)
			}

			if rootOpts.Format == "json" {
				if err := writeJSON(cmd.OutOrStdout(), dto.ToAuditResponse(report)); err != nil {
					return err
				}
			} else {
				printAudit(cmd.OutOrStdout(), report)
			}

			if len(report.Violations) > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d invariant violation(s)", len(report.Violations)))
			}
			return nil
		},
	}
}

func printAudit(w io.Writer, r *ports.AuditReport) {
	fmt.Fprintf(w, "checked %d users and %d teams at %s\n",
		r.Users, r.Teams, r.CheckedAt.UTC().Format("2006-01-02T15:04:05Z"))
	if len(r.Violations) == 0 {
		fmt.Fprintln(w, "no violations")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INVARIANT\tUSER\tTEAM\tDETAIL")
	for _, v := range r.Violations {
		team := "-"
		if v.TeamID != 0 {
			team = fmt.Sprint(v.TeamID)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", v.Invariant, v.UserID, team, v.Detail)
	}
	_ = tw.Flush()
}
