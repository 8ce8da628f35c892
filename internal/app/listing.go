package app

import (
	"cmp"
	"slices"
	"strings"

	"hotel_booking/internal/domain"
)

// FilterAndSort returns a new slice with hotels whose name or location contains
// query (case-insensitive), ordered by key. Ties keep input order; hotels is not
// modified.
func FilterAndSort(hotels []domain.Hotel, query string, key domain.SortKey) []domain.Hotel {
	q := strings.ToLower(query)
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if strings.Contains(strings.ToLower(h.Name), q) || strings.Contains(strings.ToLower(h.Location), q) {
			out = append(out, h)
		}
	}

	switch key {
	case domain.SortByRating:
		slices.SortStableFunc(out, func(a, b domain.Hotel) int { return cmp.Compare(b.Rating, a.Rating) })
	default:
		slices.SortStableFunc(out, func(a, b domain.Hotel) int { return cmp.Compare(a.Price, b.Price) })
	}
	return out
}
