package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hotel_booking/internal/domain"
)

const (
	nameBudget      = 30
	nameEllipsis    = "..."
	priceMultiplier = 10
)

/********** catalog -> hotel **********/

// Normalize maps catalog items to hotels, preserving order. Items must have
// passed ValidateProducts.
func Normalize(raw []domain.RawProduct) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(raw))
	for _, p := range raw {
		out = append(out, normalizeProduct(p))
	}
	return out
}

func normalizeProduct(p domain.RawProduct) domain.Hotel {
	cat := domain.ParseCategory(p.Category)
	place := domain.LookupLocation(cat)
	images := domain.LookupImages(cat)

	h := domain.Hotel{
		Name:          truncateName(p.Title),
		Price:         scalePrice(p.Price),
		Location:      place.Label(),
		Coords:        place.Coords,
		Description:   p.Description,
		Amenities:     domain.LookupAmenities(cat),
		MainImage:     images[0],
		Images:        images,
		OriginalImage: p.Image,
	}
	if p.ID != nil {
		h.ID = strconv.FormatInt(*p.ID, 10)
	}
	if p.Rating != nil {
		h.Rating = p.Rating.Rate
		h.RatingCount = p.Rating.Count
	}
	return h
}

// truncateName keeps the first nameBudget characters and always appends the
// ellipsis, short titles included.
func truncateName(title string) string {
	r := []rune(title)
	if len(r) > nameBudget {
		r = r[:nameBudget]
	}
	return string(r) + nameEllipsis
}

func scalePrice(p float64) int {
	return int(math.Round(p * priceMultiplier))
}

// ValidateProducts rejects payloads with records the normalizer cannot map.
func ValidateProducts(raw []domain.RawProduct) error {
	for i, p := range raw {
		var missing []string
		if p.ID == nil {
			missing = append(missing, "id")
		}
		if strings.TrimSpace(p.Title) == "" {
			missing = append(missing, "title")
		}
		if p.Rating == nil {
			missing = append(missing, "rating")
		}
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			missing = append(missing, "price")
		}
		if len(missing) > 0 {
			return domain.ValidationFailed("catalog",
				fmt.Errorf("item %d: missing %s", i, strings.Join(missing, ",")))
		}
	}
	return nil
}

// LoadHotels fetches and normalizes the catalog. Errors are *domain.FetchError.
func LoadHotels(ctx context.Context, src domain.CatalogSource) ([]domain.Hotel, error) {
	raw, err := src.GetProducts(ctx)
	if err != nil {
		var fe *domain.FetchError
		if !errors.As(err, &fe) {
			err = domain.FetchFailed("catalog", err)
		}
		return nil, err
	}
	if err := ValidateProducts(raw); err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}

/********** fallback **********/

// FallbackHotels is served whenever the catalog cannot be loaded.
func FallbackHotels() []domain.Hotel {
	return []domain.Hotel{{
		ID:          "1",
		Name:        "Luxury Resort & Spa",
		Price:       299,
		Rating:      4.8,
		RatingCount: 128,
		Location:    "Bali, Indonesia",
		Description: "Experience luxury and comfort in our well-appointed rooms with modern amenities and spectacular views.",
		Coords:      domain.Coords{Lat: -8.4095, Lon: 115.1889},
		Amenities:   []string{"Pool", "Spa", "Restaurant"},
		MainImage:   domain.ImgRect783,
		Images:      []string{domain.ImgRect783, domain.ImgRect784, domain.ImgRect785, domain.ImgRect786},
	}}
}

// HotelsOrFallback is the boundary between LoadHotels and callers that must
// always get a listing.
func HotelsOrFallback(hs []domain.Hotel, err error) []domain.Hotel {
	if err != nil {
		return FallbackHotels()
	}
	return hs
}
