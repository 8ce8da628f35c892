package app_test

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"hotel_booking/internal/domain"
)

// ---- fakes ----

type fakeCatalog struct {
	mu    sync.Mutex
	items []domain.RawProduct
	err   error
	calls int
}

func (f *fakeCatalog) GetProducts(ctx context.Context) ([]domain.RawProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.items, f.err
}

type fakeWeather struct {
	w     domain.WeatherSnapshot
	err   error
	calls int
}

func (f *fakeWeather) Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	f.calls++
	return f.w, f.err
}

// fakeCache round-trips through JSON like the redis adapter does.
type fakeCache struct {
	store  map[string][]byte
	setErr error
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.setErr != nil {
		return c.setErr
	}
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakeRepo struct {
	mu       sync.Mutex
	bookings []domain.Booking
	reviews  []domain.Review
	err      error
}

func (r *fakeRepo) InsertBooking(ctx context.Context, b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeRepo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (r *fakeRepo) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Booking{}
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRepo) InsertReview(ctx context.Context, rv domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, x := range r.reviews {
		if x.HotelID == rv.HotelID && x.UserID == rv.UserID {
			return domain.ErrAlreadyReviewed
		}
	}
	r.reviews = append(r.reviews, rv)
	return nil
}

func (r *fakeRepo) ListReviewsByHotel(ctx context.Context, hotelID string) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Review{}
	for _, rv := range r.reviews {
		if rv.HotelID == hotelID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountUserReviews(ctx context.Context, hotelID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rv := range r.reviews {
		if rv.HotelID == hotelID && rv.UserID == userID {
			n++
		}
	}
	return n, nil
}

// ---- fixtures ----

func product(id int64, title string, price float64, category string, rate float64) domain.RawProduct {
	return domain.RawProduct{
		ID:          &id,
		Title:       title,
		Price:       price,
		Category:    category,
		Description: "desc " + title,
		Image:       "https://img/" + title,
		Rating:      &domain.RawRating{Rate: rate, Count: int(id) * 10},
	}
}

func sampleProducts() []domain.RawProduct {
	return []domain.RawProduct{
		product(1, "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops", 109.95, "men's clothing", 3.9),
		product(5, "John Hardy Women's Legends Naga Bracelet", 695, "jewelery", 4.6),
		product(9, "WD 2TB Elements Portable External Hard Drive", 64, "electronics", 3.3),
		product(15, "BIYLACLESEN Women's 3-in-1 Snowboard Jacket", 56.99, "women's clothing", 2.6),
	}
}

var ana = domain.UserContext{ID: "u-ana", Email: "ana@example.com"}
