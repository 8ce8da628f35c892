package domain

// RawProduct is a catalog item as returned by the upstream product API.
// ID is nil when the upstream omitted it; zero is a valid id.
type RawProduct struct {
	ID          *int64     `json:"id"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Rating      *RawRating `json:"rating"`
}

type RawRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Hotel is the UI-ready record derived from a catalog item. Location, Coords
// and exactly four Images are always set.
type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Rating        float64  `json:"rating"`
	RatingCount   int      `json:"ratingCount"`
	Location      string   `json:"location"`
	Coords        Coords   `json:"coords"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	MainImage     string   `json:"mainImage"`
	Images        []string `json:"images"`
	OriginalImage string   `json:"originalImage,omitempty"`
}

// SortKey selects the ordering used by the listing screens.
type SortKey string

const (
	SortByRating SortKey = "rating"
	SortByPrice  SortKey = "price"
)

func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case "", SortByRating:
		return SortByRating, true
	case SortByPrice:
		return SortByPrice, true
	}
	return "", false
}
