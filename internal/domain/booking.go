package domain

import "time"

// UserContext is the caller identity, verified upstream and passed explicitly
// into every write path.
type UserContext struct {
	ID    string
	Email string
}

func (u UserContext) Present() bool { return u.ID != "" }

// BookingQuote is a computed stay price. It is not persisted on its own.
type BookingQuote struct {
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Nights      int       `json:"nights"`
	NumRooms    int       `json:"numRooms"`
	NightlyRate int       `json:"nightlyRate"`
	TotalPrice  int       `json:"totalPrice"`
}

type BookingStatus string

const BookingConfirmed BookingStatus = "confirmed"

type Booking struct {
	ID         string        `json:"id"`
	HotelID    string        `json:"hotelId"`
	HotelName  string        `json:"hotelName"`
	UserID     string        `json:"userId"`
	CheckIn    time.Time     `json:"checkIn"`
	CheckOut   time.Time     `json:"checkOut"`
	NumRooms   int           `json:"numRooms"`
	Nights     int           `json:"nights"`
	TotalPrice int           `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type BookingRequest struct {
	HotelID  string
	CheckIn  time.Time
	CheckOut time.Time
	NumRooms int
}
