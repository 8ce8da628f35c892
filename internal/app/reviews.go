package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hotel_booking/internal/domain"
)

const defaultReviewRating = 5

type ReviewService struct {
	hotels HotelLookup
	repo   domain.ReviewRepository
	clock  clockwork.Clock
}

func NewReviewService(h HotelLookup, r domain.ReviewRepository, clk clockwork.Clock) *ReviewService {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &ReviewService{hotels: h, repo: r, clock: clk}
}

// Add stores one review per user and hotel; the hotel must be in the catalog. A zero rating means the default of 5.
func (s *ReviewService) Add(ctx context.Context, user domain.UserContext, hotelID string, rating int, text string) (domain.Review, error) {
	if !user.Present() {
		return domain.Review{}, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(text) == "" {
		return domain.Review{}, fmt.Errorf("%w: text is required", domain.ErrInvalidReview)
	}
	if rating == 0 {
		rating = defaultReviewRating
	}
	if rating < 1 || rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidReview)
	}

	if _, err := s.hotels.Hotel(ctx, hotelID); err != nil {
		return domain.Review{}, err
	}

	// storage also enforces one row per (hotel, user)
	n, err := s.repo.CountUserReviews(ctx, hotelID, user.ID)
	if err != nil {
		return domain.Review{}, err
	}
	if n > 0 {
		return domain.Review{}, domain.ErrAlreadyReviewed
	}

	rv := domain.Review{
		ID:        uuid.NewString(),
		HotelID:   hotelID,
		UserID:    user.ID,
		UserEmail: user.Email,
		Rating:    rating,
		Text:      text,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.InsertReview(ctx, rv); err != nil {
		return domain.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return rv, nil
}

func (s *ReviewService) ListForHotel(ctx context.Context, hotelID string) ([]domain.Review, error) {
	return s.repo.ListReviewsByHotel(ctx, hotelID)
}

func (s *ReviewService) HasReviewed(ctx context.Context, user domain.UserContext, hotelID string) (bool, error) {
	if !user.Present() {
		return false, domain.ErrUnauthenticated
	}
	n, err := s.repo.CountUserReviews(ctx, hotelID, user.ID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
