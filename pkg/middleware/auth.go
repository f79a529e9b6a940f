package middleware

import (
	"net/http"

	"swiftcard/pkg/token"
	"swiftcard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the bearer token and attaches the decoded identity to the
// request context. The gate is stateless: no persistence lookup happens here,
// only signature verification and claim decoding.
func Auth(tokens token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			raw, err := token.ExtractBearer(authHeader)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				logger.Warn("Token verification failed", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Token carries malformed user id",
					zap.String("user_id", claims.UserID), zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetIdentity(r.Context(), utils.Identity{
				ID:         userID,
				IsBusiness: claims.IsBusiness,
				IsAdmin:    claims.IsAdmin,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
