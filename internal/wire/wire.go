package wire

import (
	"net/http"
	"time"

	"swiftcard/internal/adaptor"
	"swiftcard/internal/data/repository"
	"swiftcard/internal/usecase"
	"swiftcard/pkg/middleware"
	"swiftcard/pkg/token"
	"swiftcard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.New(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	tokens token.Service,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireUser(r, handler, tokens, logger)
	wireCard(r, handler, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
