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

type CardHandler struct {
	service usecase.CardService
	log     *zap.Logger
}

func NewCardHandler(service usecase.CardService, log *zap.Logger) *CardHandler {
	return &CardHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /swift-card/cards
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		respondError(w, h.log, err, "create card")
		return
	}

	utils.ResponseSuccess(w, "Card created successfully", resp)
}

// GetAll handles GET /swift-card/cards; public listing
func (h *CardHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAll(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list cards")
		return
	}

	utils.ResponseSuccess(w, "Cards have been sent successfully", resp)
}

// GetMine handles GET /swift-card/cards/my-cards
func (h *CardHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetMine(r.Context(), identity)
	if err != nil {
		respondError(w, h.log, err, "list my cards")
		return
	}

	utils.ResponseSuccess(w, "Cards have been sent successfully", resp)
}

// GetByID handles GET /swift-card/cards/{id}; public
func (h *CardHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid card id", nil)
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "get card")
		return
	}

	utils.ResponseSuccess(w, "Card have been sent successfully", resp)
}

// Update handles PUT /swift-card/cards/{id}
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid card id", nil)
		return
	}

	var req request.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), identity, id, &req)
	if err != nil {
		respondError(w, h.log, err, "update card")
		return
	}

	utils.ResponseSuccess(w, "Card updated successfully", resp)
}

// ToggleLike handles PATCH /swift-card/cards/{id}
func (h *CardHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid card id", nil)
		return
	}

	resp, err := h.service.ToggleLike(r.Context(), identity, id)
	if err != nil {
		respondError(w, h.log, err, "toggle like")
		return
	}

	utils.ResponseSuccess(w, "Card like toggled successfully", resp)
}

// Delete handles DELETE /swift-card/cards/{id}
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid card id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), identity, id); err != nil {
		respondError(w, h.log, err, "delete card")
		return
	}

	utils.ResponseSuccess(w, "Card deleted successfully", nil)
}

// SetBizNumber handles PATCH /swift-card/cards/biz-number/{id}
func (h *CardHandler) SetBizNumber(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid card id", nil)
		return
	}

	var req request.BizNumberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.SetBizNumber(r.Context(), identity, id, &req)
	if err != nil {
		respondError(w, h.log, err, "change bizNumber")
		return
	}

	utils.ResponseSuccess(w, "bizNumber changed successfully", resp)
}
