package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// Upper bounds for a single booking. The calculator itself is unbounded.
const (
	MaxRooms  = 20
	MaxNights = 365
)

type HotelLookup interface {
	Hotel(ctx context.Context, id string) (domain.Hotel, error)
}

type BookingService struct {
	hotels HotelLookup
	repo   domain.BookingRepository
	clock  clockwork.Clock
}

func NewBookingService(h HotelLookup, r domain.BookingRepository, clk clockwork.Clock) *BookingService {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &BookingService{hotels: h, repo: r, clock: clk}
}

// Quote prices a stay at the hotel's current nightly rate. Date order is not
// checked; room and night counts are capped.
func (s *BookingService) Quote(ctx context.Context, hotelID string, checkIn, checkOut time.Time, numRooms int) (domain.BookingQuote, error) {
	if numRooms > MaxRooms {
		return domain.BookingQuote{}, fmt.Errorf("%w: at most %d rooms", domain.ErrInvalidBooking, MaxRooms)
	}
	h, err := s.hotels.Hotel(ctx, hotelID)
	if err != nil {
		return domain.BookingQuote{}, err
	}
	q := Quote(checkIn, checkOut, h.Price, numRooms)
	if q.Nights > MaxNights {
		return domain.BookingQuote{}, fmt.Errorf("%w: at most %d nights", domain.ErrInvalidBooking, MaxNights)
	}
	return q, nil
}

// Create confirms a booking for user. Room count and date order are checked
// here; the calculator itself accepts anything.
func (s *BookingService) Create(ctx context.Context, user domain.UserContext, req domain.BookingRequest) (domain.Booking, error) {
	if !user.Present() {
		return domain.Booking{}, domain.ErrUnauthenticated
	}
	if req.NumRooms < 1 || req.NumRooms > MaxRooms {
		return domain.Booking{}, fmt.Errorf("%w: numRooms must be between 1 and %d", domain.ErrInvalidBooking, MaxRooms)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return domain.Booking{}, fmt.Errorf("%w: checkOut must be after checkIn", domain.ErrInvalidBooking)
	}
	if req.CheckOut.Sub(req.CheckIn) > MaxNights*day {
		return domain.Booking{}, fmt.Errorf("%w: at most %d nights", domain.ErrInvalidBooking, MaxNights)
	}

	h, err := s.hotels.Hotel(ctx, req.HotelID)
	if err != nil {
		return domain.Booking{}, err
	}
	q := Quote(req.CheckIn, req.CheckOut, h.Price, req.NumRooms)

	b := domain.Booking{
		ID:         uuid.NewString(),
		HotelID:    h.ID,
		HotelName:  h.Name,
		UserID:     user.ID,
		CheckIn:    req.CheckIn.UTC(),
		CheckOut:   req.CheckOut.UTC(),
		NumRooms:   q.NumRooms,
		Nights:     q.Nights,
		TotalPrice: q.TotalPrice,
		Status:     domain.BookingConfirmed,
		CreatedAt:  s.clock.Now().UTC(),
	}
	if err := s.repo.InsertBooking(ctx, b); err != nil {
		return domain.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	observability.ObserveBooking(string(b.Status))
	log.Info().Str("booking", b.ID).Str("hotel", b.HotelID).Int("total", b.TotalPrice).Msg("booking confirmed")
	return b, nil
}

func (s *BookingService) ListForUser(ctx context.Context, user domain.UserContext) ([]domain.Booking, error) {
	if !user.Present() {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.ListBookingsByUser(ctx, user.ID)
}

// Get returns a booking only to the user who made it.
func (s *BookingService) Get(ctx context.Context, user domain.UserContext, id string) (domain.Booking, error) {
	if !user.Present() {
		return domain.Booking{}, domain.ErrUnauthenticated
	}
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if b.UserID != user.ID {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}
