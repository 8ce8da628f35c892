package domain

import "context"

type CatalogSource interface {
	GetProducts(ctx context.Context) ([]RawProduct, error)
}

type WeatherSource interface {
	Current(ctx context.Context, lat, lon float64) (WeatherSnapshot, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type BookingRepository interface {
	InsertBooking(ctx context.Context, b Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]Booking, error)
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, r Review) error
	ListReviewsByHotel(ctx context.Context, hotelID string) ([]Review, error)
	CountUserReviews(ctx context.Context, hotelID, userID string) (int, error)
}

// TokenVerifier resolves a bearer token into the caller identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (UserContext, error)
}
