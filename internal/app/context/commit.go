package appctx

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
)

// Commit runs the queued steps in order.
//
// A failed step whose write may still have landed (domain.IsIndeterminate)
// is compensated along with the completed steps; any other failed step
// changed nothing. Compensation runs newest first and yields a
// *domain.SagaError: Compensated when every rollback succeeded (the operation
// can be retried), otherwise CompensationErr joins the rollback failures.
// When nothing needs compensating the step's error is returned as is.
//
// Rollbacks run detached from ctx's cancellation, each bounded by the
// compensation timeout, so a cancelled request still compensates.
//
// The RequestContext is spent afterwards; a second Commit returns
// ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	steps := rc.steps
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, step := range steps {
		logger.DebugContext(ctx, "saga step",
			slog.Int("step", i+1),
			slog.Int("of", len(steps)),
			slog.String("action", step.Description()),
		)

		err := step.Execute(ctx)
		if err == nil {
			continue
		}

		logger.WarnContext(ctx, "saga step failed",
			slog.Int("step", i+1),
			slog.String("action", step.Description()),
			slog.Any("error", err),
		)
		undo := steps[:i]
		if domain.IsIndeterminate(err) {
			logger.WarnContext(ctx, "failed step may have been applied, compensating it too",
				slog.String("action", step.Description()),
			)
			undo = steps[:i+1]
		}
		if len(undo) == 0 {
			return err
		}
		compErr := rc.compensate(ctx, undo, logger)
		return &domain.SagaError{
			Step:            step.Description(),
			Cause:           err,
			Compensated:     compErr == nil,
			CompensationErr: compErr,
		}
	}
	return nil
}

// compensate rolls back done newest first. Every rollback is attempted even
// after one fails.
func (rc *RequestContext) compensate(ctx context.Context, done []domain.Action, logger *slog.Logger) error {
	detached := context.WithoutCancel(ctx)

	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		logger.InfoContext(ctx, "compensating saga step",
			slog.Int("step", i+1),
			slog.String("action", step.Description()),
		)

		stepCtx, cancel := context.WithTimeout(detached, rc.compensationTimeout)
		err := step.Rollback(stepCtx)
		cancel()

		if err != nil {
			logger.ErrorContext(ctx, "compensation failed",
				slog.Int("step", i+1),
				slog.String("action", step.Description()),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
