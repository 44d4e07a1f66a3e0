package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"kenyastay/internal/app"
	"kenyastay/internal/domain"
)

type Handlers struct {
	Q    *app.CatalogService
	B    *app.BookingService
	Mail domain.ConfirmationSender

	// FallbackEmail receives test emails when the request names no address
	// (the configured EMAIL_USER, usually).
	FallbackEmail string
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.home)
	s.mux.Get("/api/hotels", h.listHotels)
	s.mux.Get("/api/hotels/{location}", h.hotelsByLocation)
	s.mux.Get("/api/locations", h.listLocations)
	s.mux.Get("/api/search", h.search)
	s.mux.Post("/api/bookings", h.createBooking)
	s.mux.Post("/api/test-email", h.testEmail)
}

// ---- response envelopes ----

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type bookingResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Booking   domain.Booking `json:"booking"`
	EmailSent bool           `json:"emailSent"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// ---- catalog reads ----

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	emailStatus := "Email service not available"
	if h.Mail.Enabled() {
		emailStatus = "Email service active"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Kenyan Hotel Booking API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"hotels":     "/api/hotels",
			"locations":  "/api/locations",
			"search":     "/api/search",
			"book":       "/api/bookings (POST)",
			"test_email": "/api/test-email (POST)",
		},
		"email": emailStatus,
	})
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.Hotels(r.Context()))
}

func (h *Handlers) hotelsByLocation(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	writeJSON(w, http.StatusOK, h.Q.HotelsByLocation(r.Context(), location))
}

func (h *Handlers) listLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.Locations(r.Context()))
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := domain.SearchQuery{
		Location: qs.Get("location"),
		MinPrice: parseBound(qs.Get("minPrice")),
		MaxPrice: parseBound(qs.Get("maxPrice")),
		Type:     qs.Get("type"),
	}
	writeJSON(w, http.StatusOK, h.Q.Search(r.Context(), q))
}

// parseBound treats an absent or unparsable price bound as no bound at all.
func parseBound(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// ---- bookings ----

// flexCount accepts a guest count as a JSON number or a numeric string;
// anything else decodes to zero and defaults to one guest downstream.
type flexCount int

func (f *flexCount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexCount(n)
	return nil
}

type bookingRequestBody struct {
	HotelID   int       `json:"hotelId"`
	GuestName string    `json:"guestName"`
	Email     string    `json:"email"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Guests    flexCount `json:"guests"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var body bookingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Success: false, Message: "Invalid request body"})
		return
	}

	res, err := h.B.Submit(r.Context(), domain.BookingRequest{
		HotelID:   body.HotelID,
		GuestName: body.GuestName,
		Email:     body.Email,
		CheckIn:   body.CheckIn,
		CheckOut:  body.CheckOut,
		Guests:    int(body.Guests),
	})
	if err != nil {
		if errors.Is(err, domain.ErrHotelNotFound) {
			writeJSON(w, http.StatusNotFound, statusResponse{Success: false, Message: "Hotel not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, statusResponse{Success: false, Message: "Booking failed"})
		return
	}

	writeJSON(w, http.StatusOK, bookingResponse{
		Success:   res.Success,
		Message:   res.Message,
		Booking:   res.Booking,
		EmailSent: res.EmailSent,
	})
}

// ---- test email ----

func (h *Handlers) testEmail(w http.ResponseWriter, r *http.Request) {
	if !h.Mail.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Success: false, Message: "Email service not configured"})
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body) // body is optional

	to := body.Email
	if to == "" {
		to = h.FallbackEmail
	}
	if to == "" {
		writeJSON(w, http.StatusBadRequest, statusResponse{Success: false, Message: "No email address provided"})
		return
	}

	now := time.Now()
	sent := h.Mail.SendConfirmation(r.Context(), domain.ConfirmationDetails{
		GuestName: "Test User",
		Email:     to,
		HotelName: "Test Hotel Nairobi",
		Location:  "Nairobi",
		CheckIn:   now.Format("2006-01-02"),
		CheckOut:  now.AddDate(0, 0, 3).Format("2006-01-02"),
		Guests:    2,
		Total:     36000,
		Reference: "TEST-" + app.TimeFragment(now),
	})

	msg := "Failed to send test email"
	if sent {
		msg = "Test email sent! Check your inbox."
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: sent, Message: msg})
}
