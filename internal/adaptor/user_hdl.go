package adaptor

import (
	"encoding/json"
	"net/http"

	"swiftcard/internal/dto/request"
	"swiftcard/internal/usecase"
	"swiftcard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetByID handles GET /swift-card/users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	resp, err := h.service.GetByID(r.Context(), identity, id)
	if err != nil {
		respondError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User have been sent successfully", resp)
}

// List handles GET /swift-card/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.List(r.Context(), identity)
	if err != nil {
		respondError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users have been sent successfully", resp)
}

// Update handles PUT /swift-card/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), identity, id, &req)
	if err != nil {
		respondError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", resp)
}

// ToggleBusiness handles PATCH /swift-card/users/{id}
func (h *UserHandler) ToggleBusiness(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	resp, err := h.service.ToggleBusiness(r.Context(), identity, id)
	if err != nil {
		respondError(w, h.log, err, "toggle business")
		return
	}

	utils.ResponseSuccess(w, "Business status changed successfully", resp)
}

// Delete handles DELETE /swift-card/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), identity, id); err != nil {
		respondError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}
