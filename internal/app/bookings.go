package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"kenyastay/internal/domain"
)

// FixedNights is the stay length every total is computed from. The upstream
// API prices every booking at three nights regardless of the supplied dates,
// and callers depend on that total; keep it until pricing moves to the real
// date span.
const FixedNights = 3

const (
	StatusConfirmed = "confirmed"

	msgEmailSent   = "Booking confirmed! Check your email for details."
	msgEmailFailed = "Booking confirmed! (Email could not be sent)"
	msgKaribu      = "Asante sana for your booking! Karibu Kenya!"
)

// BookingService turns a BookingRequest into a confirmed Booking plus a
// delivery outcome. Nothing is persisted; each request stands alone.
type BookingService struct {
	catalog domain.Catalog
	sender  domain.ConfirmationSender
}

func NewBookingService(c domain.Catalog, s domain.ConfirmationSender) *BookingService {
	return &BookingService{catalog: c, sender: s}
}

// Submit resolves the hotel, prices the stay, mints a reference and attempts
// the confirmation email. Hotel resolution is the only failure mode; the
// email is best-effort and its outcome is reported in the result.
func (s *BookingService) Submit(ctx context.Context, req domain.BookingRequest) (domain.BookingResult, error) {
	hotel, err := s.catalog.ByID(req.HotelID)
	if err != nil {
		return domain.BookingResult{}, fmt.Errorf("resolve hotel %d: %w", req.HotelID, err)
	}

	total := hotel.Price * FixedNights

	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}

	booking := domain.Booking{
		Reference: NewReference(),
		Hotel:     hotel,
		Guest:     domain.Guest{Name: req.GuestName, Email: req.Email},
		Dates:     domain.StayDates{CheckIn: req.CheckIn, CheckOut: req.CheckOut},
		Guests:    guests,
		Total:     total,
		Status:    StatusConfirmed,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Message:   msgKaribu,
	}

	sent := s.sender.SendConfirmation(ctx, domain.ConfirmationDetails{
		GuestName: req.GuestName,
		Email:     req.Email,
		HotelName: hotel.Name,
		Location:  hotel.Location,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    guests,
		Total:     total,
		Reference: booking.Reference,
	})

	log.Info().
		Str("reference", booking.Reference).
		Str("guest", req.GuestName).
		Str("hotel", hotel.Name).
		Bool("email_sent", sent).
		Msg("booking confirmed")

	msg := msgEmailFailed
	if sent {
		msg = msgEmailSent
	}
	return domain.BookingResult{
		Success:   true,
		Message:   msg,
		Booking:   booking,
		EmailSent: sent,
	}, nil
}

// NewReference mints a booking reference: fixed prefix, the trailing six
// digits of the unix-millisecond clock, and a zero-padded random suffix.
// References are low-collision, not unique; none are ever stored to check
// against.
func NewReference() string {
	return fmt.Sprintf("KS-%s-%03d", TimeFragment(time.Now()), rand.IntN(1000))
}

// TimeFragment returns the trailing six digits of t's unix-millisecond value.
func TimeFragment(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	return ms[len(ms)-6:]
}
