package mysql

import (
	"context"
	"database/sql"
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"

	"hotel_booking/internal/domain"
)

const errDupEntry = 1062 // ER_DUP_ENTRY

// Repo persists bookings and reviews. It implements domain.BookingRepository
// and domain.ReviewRepository.
type Repo struct{ db *sql.DB }

var (
	_ domain.BookingRepository = (*Repo)(nil)
	_ domain.ReviewRepository  = (*Repo)(nil)
)

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) InsertBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID,
		b.HotelID,
		b.HotelName,
		b.UserID,
		b.CheckIn.UTC(),
		b.CheckOut.UTC(),
		b.NumRooms,
		b.Nights,
		b.TotalPrice,
		string(b.Status),
		b.CreatedAt.UTC(),
	)
	return err
}

type scanner interface{ Scan(dest ...any) error }

func scanBooking(s scanner) (domain.Booking, error) {
	var b domain.Booking
	var status string
	if err := s.Scan(
		&b.ID,
		&b.HotelID,
		&b.HotelName,
		&b.UserID,
		&b.CheckIn, &b.CheckOut,
		&b.NumRooms,
		&b.Nights,
		&b.TotalPrice,
		&status,
		&b.CreatedAt,
	); err != nil {
		return domain.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

func (r *Repo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, getBookingSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsByUserSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) InsertReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID,
		rv.HotelID,
		rv.UserID,
		rv.UserEmail,
		rv.Rating,
		rv.Text,
		rv.CreatedAt.UTC(),
	)
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == errDupEntry {
		return domain.ErrAlreadyReviewed
	}
	return err
}

func (r *Repo) ListReviewsByHotel(ctx context.Context, hotelID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsByHotelSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ID,
			&rv.HotelID,
			&rv.UserID,
			&rv.UserEmail,
			&rv.Rating,
			&rv.Text,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) CountUserReviews(ctx context.Context, hotelID, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countUserReviewsSQL, hotelID, userID).Scan(&n)
	return n, err
}
