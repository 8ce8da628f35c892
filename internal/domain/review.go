package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	UserID    string    `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"` // 1..5
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
