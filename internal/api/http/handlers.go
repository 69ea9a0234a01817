package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"catering-platform/internal/domain"
	"catering-platform/internal/service"
)

type Handler struct {
	Catering service.CateringServiceInterface
	Bookings service.BookingServiceInterface
}

func NewHandler(catering service.CateringServiceInterface, bookings service.BookingServiceInterface) *Handler {
	return &Handler{Catering: catering, Bookings: bookings}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/definitions/{id}/validate", h.validateSelection).Methods("POST")
	r.HandleFunc("/api/definitions/{id}/price", h.computePrice).Methods("POST")
	r.HandleFunc("/api/coupons/evaluate", h.evaluateCoupon).Methods("POST")

	r.HandleFunc("/api/bookings", h.createBooking).Methods("POST")
	r.HandleFunc("/api/bookings", h.listBookings).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", h.getBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", h.updateBooking).Methods("PATCH")
	r.HandleFunc("/api/bookings/{id}", h.deleteBooking).Methods("DELETE")
	r.HandleFunc("/api/bookings/{id}/status", h.updateStatus).Methods("PATCH")
	r.HandleFunc("/api/bookings/{id}/payment", h.updatePayment).Methods("PATCH")
	r.HandleFunc("/api/bookings/{id}/qrcode", h.getQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "catering-platform",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type selectionRequest struct {
	Selection domain.Selection `json:"selection"`
	Attendees int              `json:"attendees"`
}

func (h *Handler) validateSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Catering.ValidateSelection(r.Context(), mux.Vars(r)["id"], &req.Selection, req.Attendees)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) computePrice(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	breakdown, err := h.Catering.ComputePrice(r.Context(), mux.Vars(r)["id"], &req.Selection, req.Attendees)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (h *Handler) evaluateCoupon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code       string  `json:"code"`
		OrderTotal float64 `json:"order_total"`
		LocationID string  `json:"location_id"`
		ServiceID  string  `json:"service_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Code == "" {
		http.Error(w, "Missing coupon code", http.StatusBadRequest)
		return
	}

	result, err := h.Catering.EvaluateCoupon(r.Context(), req.Code, req.OrderTotal, req.LocationID, req.ServiceID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var input domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Bookings.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) updateBooking(w http.ResponseWriter, r *http.Request) {
	var update domain.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.Update(r.Context(), mux.Vars(r)["id"], &update)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.UpdateStatus(r.Context(), mux.Vars(r)["id"], domain.BookingStatus(req.Status), req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) updatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentStatus string   `json:"payment_status"`
		DepositAmount *float64 `json:"deposit_amount,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.UpdatePaymentStatus(r.Context(), mux.Vars(r)["id"], domain.PaymentStatus(req.PaymentStatus), req.DepositAmount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Bookings.GetQRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var transitionErr *domain.StateTransitionError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":      "validation failed",
			"violations": validationErr.Violations,
		})
	case errors.As(err, &transitionErr):
		http.Error(w, transitionErr.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrDefinitionNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrCouponNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrDefinitionDisabled):
		http.Error(w, err.Error(), http.StatusGone)
	case errors.Is(err, domain.ErrCouponExhausted),
		errors.Is(err, domain.ErrCouponAlreadyRedeemed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrReferenceExhausted):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
