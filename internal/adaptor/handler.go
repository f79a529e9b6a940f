package adaptor

import (
	"net/http"

	"swiftcard/internal/usecase"
	"swiftcard/pkg/apperr"
	"swiftcard/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth *AuthHandler
	User *UserHandler
	Card *CardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.Auth, log),
		User: NewUserHandler(service.User, log),
		Card: NewCardHandler(service.Card, log),
	}
}

// respondError maps the error taxonomy to HTTP responses. The original
// design reports almost every failure as 400; only an active lockout (403),
// token failures (401) and unexpected errors (500) differ.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr, ok := apperr.As(err)
	if !ok {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong.")
		return
	}

	switch appErr.Kind {
	case apperr.KindValidation,
		apperr.KindAccessDenied,
		apperr.KindNotFound,
		apperr.KindDuplicate,
		apperr.KindInvalidCredentials:
		log.Warn(operation+" failed", zap.String("reason", appErr.Message))
		utils.ResponseBadRequest(w, appErr.Message, nil)

	case apperr.KindAccountLocked:
		log.Warn(operation+" blocked, account locked")
		utils.ResponseForbidden(w, appErr.Message)

	case apperr.KindAuthToken:
		log.Warn(operation+" rejected, bad token", zap.String("reason", appErr.Message))
		utils.ResponseUnauthorized(w, appErr.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong.")
	}
}

// identityFromRequest reads the identity the auth middleware attached
func identityFromRequest(r *http.Request) (utils.Identity, bool) {
	return utils.GetIdentity(r.Context())
}
