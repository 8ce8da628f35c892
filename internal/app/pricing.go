package app

import (
	"time"

	"hotel_booking/internal/domain"
)

const day = 24 * time.Hour

// Quote prices a stay. Nights is the ceiling of the absolute day difference, so
// a check-out before check-in still yields a positive count; identical dates
// yield zero nights. numRooms is not checked here.
func Quote(checkIn, checkOut time.Time, nightlyRate, numRooms int) domain.BookingQuote {
	n := nights(checkIn, checkOut)
	return domain.BookingQuote{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      n,
		NumRooms:    numRooms,
		NightlyRate: nightlyRate,
		TotalPrice:  nightlyRate * numRooms * n,
	}
}

func nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = -d
	}
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}
