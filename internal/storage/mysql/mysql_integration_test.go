//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"hotel_booking/internal/domain"
	mysqlrepo "hotel_booking/internal/storage/mysql"
)

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// startMySQL runs an isolated MySQL; Docker picks a free host port.
func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=hotels"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotels?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_BookingsAndReviews(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	older := domain.Booking{
		ID: "00000000-0000-0000-0000-000000000001", HotelID: "3", HotelName: "Mens Cotton Jacket...",
		UserID: "u-1", CheckIn: day(1), CheckOut: day(3), NumRooms: 2, Nights: 2, TotalPrice: 22398,
		Status: domain.BookingConfirmed, CreatedAt: day(1),
	}
	newer := older
	newer.ID = "00000000-0000-0000-0000-000000000002"
	newer.CreatedAt = day(2)
	other := older
	other.ID = "00000000-0000-0000-0000-000000000003"
	other.UserID = "u-2"

	for _, b := range []domain.Booking{older, newer, other} {
		if err := repo.InsertBooking(ctx, b); err != nil {
			t.Fatalf("InsertBooking: %v", err)
		}
	}

	got, err := repo.GetBooking(ctx, older.ID)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if got.TotalPrice != 22398 || got.Nights != 2 || !got.CheckOut.Equal(day(3)) || got.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected booking: %+v", got)
	}
	if _, err := repo.GetBooking(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := repo.ListBookingsByUser(ctx, "u-1")
	if err != nil {
		t.Fatalf("ListBookingsByUser: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Fatalf("expected newest first for u-1, got %+v", list)
	}

	rv := domain.Review{
		ID: "10000000-0000-0000-0000-000000000001", HotelID: "3", UserID: "u-1",
		UserEmail: "ana@example.com", Rating: 4, Text: "Great stay", CreatedAt: day(4),
	}
	if err := repo.InsertReview(ctx, rv); err != nil {
		t.Fatalf("InsertReview: %v", err)
	}
	n, err := repo.CountUserReviews(ctx, "3", "u-1")
	if err != nil || n != 1 {
		t.Fatalf("CountUserReviews: n=%d err=%v", n, err)
	}
	reviews, err := repo.ListReviewsByHotel(ctx, "3")
	if err != nil || len(reviews) != 1 || reviews[0].Text != "Great stay" {
		t.Fatalf("ListReviewsByHotel: %+v %v", reviews, err)
	}

	dup := rv
	dup.ID = "10000000-0000-0000-0000-000000000002"
	dup.Text = "Second opinion"
	if err := repo.InsertReview(ctx, dup); !errors.Is(err, domain.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed for a second review, got %v", err)
	}
	otherReview := dup
	otherReview.UserID = "u-2"
	if err := repo.InsertReview(ctx, otherReview); err != nil {
		t.Fatalf("InsertReview for another user: %v", err)
	}

	// totals above the 32-bit range must round-trip
	big := older
	big.ID = "00000000-0000-0000-0000-000000000004"
	big.NumRooms = 20
	big.Nights = 365
	big.TotalPrice = 5_000_000_000
	if err := repo.InsertBooking(ctx, big); err != nil {
		t.Fatalf("InsertBooking large total: %v", err)
	}
	got, err = repo.GetBooking(ctx, big.ID)
	if err != nil || got.TotalPrice != 5_000_000_000 {
		t.Fatalf("large total round-trip: %+v %v", got, err)
	}
}
