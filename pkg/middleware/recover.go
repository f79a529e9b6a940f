package middleware

import (
	"net/http"

	"swiftcard/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panicking handler into a logged 500 so one bad request
// cannot take the server down
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					utils.ResponseInternalError(w, "Something went wrong.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
