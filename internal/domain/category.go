package domain

// Category is the closed set of catalog categories the hotel tables know about.
// Anything the upstream sends that is not listed here maps to CategoryOther.
type Category int

const (
	CategoryOther Category = iota
	CategoryElectronics
	CategoryJewelry
	CategoryMenClothing
	CategoryWomenClothing
)

// ParseCategory maps the upstream category string onto the closed set.
// Matching is exact, as the upstream spells them.
func ParseCategory(s string) Category {
	switch s {
	case "electronics":
		return CategoryElectronics
	case "jewelery":
		return CategoryJewelry
	case "men's clothing":
		return CategoryMenClothing
	case "women's clothing":
		return CategoryWomenClothing
	default:
		return CategoryOther
	}
}

func (c Category) String() string {
	switch c {
	case CategoryElectronics:
		return "electronics"
	case CategoryJewelry:
		return "jewelery"
	case CategoryMenClothing:
		return "men's clothing"
	case CategoryWomenClothing:
		return "women's clothing"
	default:
		return "other"
	}
}

type Place struct {
	City    string
	Country string
	Coords  Coords
}

// Label renders the place as "{city}, {country}".
func (p Place) Label() string { return p.City + ", " + p.Country }

var DefaultPlace = Place{City: "New York", Country: "USA", Coords: Coords{Lat: 40.7128, Lon: -74.006}}

// Static asset references used as hotel imagery.
const (
	ImgRect783      = "explore/rect783.png"
	ImgRect784      = "explore/rect784.png"
	ImgRect785      = "explore/rect785.png"
	ImgRect786      = "explore/rect786.png"
	ImgGroup10117   = "explore/group10117.png"
	ImgGroup10118   = "explore/group10118.png"
	ImgGroup10127   = "explore/group10127.png"
	ImgImage1       = "explore/image1.png"
	ImgImage1_3     = "explore/image1_3.png"
	ImgImage13      = "explore/image13.png"
	ImgImage14      = "explore/image14.png"
	ImgImage4       = "explore/image4.png"
	ImgPexels221457 = "explore/pexels221457.png"
)

func LookupLocation(c Category) Place {
	switch c {
	case CategoryElectronics:
		return Place{City: "Tokyo", Country: "Japan", Coords: Coords{Lat: 35.6762, Lon: 139.6503}}
	case CategoryJewelry:
		return Place{City: "Dubai", Country: "UAE", Coords: Coords{Lat: 25.2048, Lon: 55.2708}}
	case CategoryMenClothing:
		return Place{City: "Milan", Country: "Italy", Coords: Coords{Lat: 45.4642, Lon: 9.19}}
	case CategoryWomenClothing:
		return Place{City: "Paris", Country: "France", Coords: Coords{Lat: 48.8566, Lon: 2.3522}}
	default:
		return DefaultPlace
	}
}

// LookupAmenities returns a fresh slice; callers may keep it.
func LookupAmenities(c Category) []string {
	switch c {
	case CategoryElectronics:
		return []string{"Smart Room Controls", "High-Speed WiFi", "Entertainment System"}
	case CategoryJewelry:
		return []string{"Luxury Spa", "Private Pool", "Fine Dining"}
	case CategoryMenClothing:
		return []string{"Business Center", "Fitness Center", "Executive Lounge"}
	case CategoryWomenClothing:
		return []string{"Shopping Mall Access", "Beauty Salon", "Rooftop Bar"}
	default:
		return []string{"WiFi", "Restaurant", "Room Service"}
	}
}

// LookupImages always returns four references. Unknown categories reuse the
// electronics set.
func LookupImages(c Category) []string {
	switch c {
	case CategoryJewelry:
		return []string{ImgGroup10117, ImgGroup10118, ImgGroup10127, ImgImage1_3}
	case CategoryMenClothing:
		return []string{ImgImage1, ImgImage13, ImgImage14, ImgImage4}
	case CategoryWomenClothing:
		return []string{ImgPexels221457, ImgRect783, ImgRect784, ImgRect785}
	default:
		return []string{ImgRect783, ImgRect784, ImgRect785, ImgRect786}
	}
}
