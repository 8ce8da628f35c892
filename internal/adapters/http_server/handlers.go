package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type Handlers struct {
	Catalog  *app.CatalogService
	Weather  *app.WeatherService
	Bookings *app.BookingService
	Reviews  *app.ReviewService
	Auth     domain.TokenVerifier
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/hotels", h.listHotels)
		r.Get("/deals", h.listDeals)
		r.Get("/hotels/{id}", h.getHotel)
		r.Get("/hotels/{id}/weather", h.getWeather)
		r.Get("/hotels/{id}/quote", h.getQuote)
		r.Get("/hotels/{id}/reviews", h.listReviews)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(h.Auth))
			r.Post("/hotels/{id}/reviews", h.addReview)
			r.Get("/hotels/{id}/reviews/mine", h.hasReviewed)
			r.Post("/bookings", h.createBooking)
			r.Get("/bookings", h.listBookings)
			r.Get("/bookings/{id}", h.getBooking)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, domain.ErrInvalidBooking), errors.Is(err, domain.ErrInvalidReview):
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Request", err.Error())
	case errors.Is(err, domain.ErrAlreadyReviewed):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// writeCacheable writes v as JSON with a weak ETag, answering 304 when the
// client already holds this version.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

// parseDate accepts YYYY-MM-DD (midnight UTC) or RFC 3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

/********** hotels **********/

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	key, ok := domain.ParseSortKey(r.URL.Query().Get("sort"))
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid sort", "sort must be rating or price")
		return
	}
	writeCacheable(w, r, h.Catalog.Explore(r.Context(), r.URL.Query().Get("q"), key))
}

func (h *Handlers) listDeals(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Catalog.Deals(r.Context()))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Catalog.Hotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, hotel)
}

func (h *Handlers) getWeather(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Catalog.Hotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Weather.Current(r.Context(), hotel.Coords))
}

func (h *Handlers) getQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	checkIn, err := parseDate(q.Get("checkIn"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid checkIn", "checkIn must be YYYY-MM-DD or RFC 3339")
		return
	}
	checkOut, err := parseDate(q.Get("checkOut"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid checkOut", "checkOut must be YYYY-MM-DD or RFC 3339")
		return
	}
	rooms := 1
	if rs := q.Get("rooms"); rs != "" {
		n, err := strconv.Atoi(rs)
		if err != nil || n < 1 || n > app.MaxRooms {
			writeProblem(w, http.StatusBadRequest, "Invalid rooms", "rooms must be an integer between 1 and "+strconv.Itoa(app.MaxRooms))
			return
		}
		rooms = n
	}

	quote, err := h.Bookings.Quote(r.Context(), chi.URLParam(r, "id"), checkIn, checkOut, rooms)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

/********** reviews **********/

type reviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reviews.ListForHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON {rating, text}")
		return
	}
	rv, err := h.Reviews.Add(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"), req.Rating, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *Handlers) hasReviewed(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Reviews.HasReviewed(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"hasReviewed": ok})
}

/********** bookings **********/

type bookingRequest struct {
	HotelID  string `json:"hotelId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	NumRooms int    `json:"numRooms"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON {hotelId, checkIn, checkOut, numRooms}")
		return
	}
	checkIn, err1 := parseDate(req.CheckIn)
	checkOut, err2 := parseDate(req.CheckOut)
	if err1 != nil || err2 != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid dates", "checkIn and checkOut must be YYYY-MM-DD or RFC 3339")
		return
	}

	b, err := h.Bookings.Create(r.Context(), UserFrom(r.Context()), domain.BookingRequest{
		HotelID:  req.HotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		NumRooms: req.NumRooms,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/v1/bookings/"+b.ID)
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Bookings.ListForUser(r.Context(), UserFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Bookings.Get(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
