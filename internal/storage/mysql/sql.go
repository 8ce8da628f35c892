package mysql

const insertBookingSQL = `
INSERT INTO bookings
  (id, hotel_id, hotel_name, user_id, check_in, check_out, num_rooms, nights, total_price, status, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const bookingColumns = `id, hotel_id, hotel_name, user_id, check_in, check_out, num_rooms, nights, total_price, status, created_at`

const getBookingSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

// Newest first; aligns with idx_bookings_user.
const listBookingsByUserSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
`

// Note: `text` is reserved; keep it quoted everywhere.
const insertReviewSQL = "INSERT INTO reviews\n  (id, hotel_id, user_id, user_email, rating, `text`, created_at)\nVALUES\n  (?, ?, ?, ?, ?, ?, ?)\n"

const listReviewsByHotelSQL = "SELECT id, hotel_id, user_id, user_email, rating, `text`, created_at\n" +
	"FROM reviews\nWHERE hotel_id = ?\nORDER BY created_at DESC, id DESC\n"

const countUserReviewsSQL = `SELECT COUNT(*) FROM reviews WHERE hotel_id = ? AND user_id = ?`
