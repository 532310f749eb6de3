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

// ReconcileOptions holds flags for the reconcile command.
type ReconcileOptions struct {
	DryRun bool
}

// NewReconcileCommand creates the reconcile command.
func NewReconcileCommand(rootOpts *RootOptions, env Env) *cobra.Command {
	opts := &ReconcileOptions{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair role drift left by failed compensations",
		Long: `Align each user's role with the leadership recorded in the team store:
leaders without a team are demoted, members who lead a team are promoted.
Violations that need a human decision are listed but left alone.

Exits 1 when a repair fails or violations remain.`,
		Example: `  trackerctl reconcile --dry-run
  trackerctl reconcile --profile prod --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := maintenance(ctx, rootOpts, env, cmd)
			if err != nil {
				return err
			}

			report, err := svc.Reconcile(ctx, identity.Operator(), opts.DryRun)
			if err != nil {
				return WrapExitError(ExitCommandError, "reconcile failed", err)
			}

			if rootOpts.Format == "json" {
				if err := writeJSON(cmd.OutOrStdout(), dto.ToReconcileResponse(report)); err != nil {
					return err
				}
			} else {
				printReconcile(cmd.OutOrStdout(), report)
			}

			failed := 0
			for _, r := range report.Repairs {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 || len(report.Remaining) > 0 {
				return NewExitError(ExitFailure,
					fmt.Sprintf("%d repair(s) failed, %d violation(s) remain", failed, len(report.Remaining)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report planned repairs without applying them")

	return cmd
}

func printReconcile(w io.Writer, r *ports.ReconcileReport) {
	if r.DryRun {
		fmt.Fprintln(w, "dry run: no changes applied")
	}
	if len(r.Repairs) == 0 {
		fmt.Fprintln(w, "no role repairs needed")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "USER\tFROM\tTO\tSTATUS")
		for _, rep := range r.Repairs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", rep.UserID, rep.From, rep.To, repairStatus(rep, r.DryRun))
		}
		_ = tw.Flush()
	}

	for _, v := range r.Remaining {
		fmt.Fprintf(w, "remaining: %s\n", v)
	}
}

func repairStatus(r ports.Repair, dryRun bool) string {
	switch {
	case r.Error != "":
		return "failed: " + r.Error
	case r.Applied:
		return "applied"
	case dryRun:
		return "planned"
	default:
		return "skipped"
	}
}
