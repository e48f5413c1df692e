package wallet

import (
	"encoding/json"
	"errors"
	"net/http"

	"chorepet/internal/event"
	"chorepet/internal/model"
)

type Handler struct {
	svc *Service
	hub *event.Hub
}

func NewHandler(svc *Service, hub *event.Hub) *Handler {
	return &Handler{svc: svc, hub: hub}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// Money handles GET /money.
func (h *Handler) Money(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	money, err := h.svc.Balance(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.Wallet{Money: money})
}

// Spend handles POST /money/spend.
func (h *Handler) Spend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	money, events, err := h.svc.Spend(r.Context(), in.Amount)
	if errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrInvalidAmount) {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h.hub != nil {
		h.hub.Publish(events...)
	}
	writeJSON(w, http.StatusOK, model.Wallet{Money: money})
}
