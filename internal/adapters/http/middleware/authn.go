package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

const bearerScheme = "bearer"

// Authenticate returns middleware that resolves the Authorization bearer
// token into an identity.Principal and stores it in the request context.
// Requests without a valid token get a 401 problem response; the verifier's
// reason is logged, never returned.
func Authenticate(verifier ports.IdentityVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
				return
			}

			p, err := verifier.Verify(ctx, token)
			if err != nil {
				logging.FromContext(ctx).InfoContext(ctx, "bearer token rejected", slog.Any("error", err))
				dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
				return
			}

			trace.SpanFromContext(ctx).SetAttributes(
				attribute.Int64("enduser.id", p.UserID),
				attribute.String("enduser.role", string(p.Role)),
			)
			Annotate(ctx, slog.Int64("user_id", p.UserID), slog.String("role", string(p.Role)))

			next.ServeHTTP(w, r.WithContext(identity.WithPrincipal(ctx, p)))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>". The
// scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
