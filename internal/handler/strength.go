package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vaultpass/pwtool/internal/model"
	"github.com/vaultpass/pwtool/internal/service"
)

// StrengthHandler handles HTTP requests for password scoring.
type StrengthHandler struct {
	service   *service.StrengthService
	validator *validator.Validate
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService, v *validator.Validate) *StrengthHandler {
	return &StrengthHandler{service: svc, validator: v}
}

// HandleCheck handles POST /api/v1/check requests. Weak input is not an
// error: only malformed or oversized bodies are rejected.
func (h *StrengthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req model.CheckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(validationMessage(err)))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Check(req))
}
