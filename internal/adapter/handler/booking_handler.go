package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	var req services.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	result := h.svc.CreateBooking(r.Context(), req)

	w.WriteHeader(statusFor(result))
	json.NewEncoder(w).Encode(result)
}

// statusFor maps the engine's result message onto an HTTP status. The
// engine itself knows nothing about HTTP.
func statusFor(result services.CreateBookingResult) int {
	if result.Success {
		return http.StatusCreated
	}
	msg := result.Message
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "required") || strings.Contains(msg, "Invalid") ||
		strings.Contains(msg, "must be positive") || strings.Contains(msg, "one seat"):
		return http.StatusBadRequest
	case strings.Contains(msg, "Payment failed"):
		return http.StatusPaymentRequired
	default:
		return http.StatusConflict
	}
}
