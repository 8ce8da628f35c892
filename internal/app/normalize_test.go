package app_test

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

func TestNormalize_MapsEveryField(t *testing.T) {
	hs := app.Normalize(sampleProducts())
	require.Len(t, hs, 4)

	h := hs[0]
	assert.Equal(t, "1", h.ID)
	assert.Equal(t, "Fjallraven - Foldsack No. 1 Ba...", h.Name)
	assert.Equal(t, 1100, h.Price) // round(109.95 * 10)
	assert.Equal(t, 3.9, h.Rating)
	assert.Equal(t, 10, h.RatingCount)
	assert.Equal(t, "Milan, Italy", h.Location)
	assert.Equal(t, domain.Coords{Lat: 45.4642, Lon: 9.19}, h.Coords)
	assert.Equal(t, []string{"Business Center", "Fitness Center", "Executive Lounge"}, h.Amenities)
	assert.Equal(t, h.Images[0], h.MainImage)
	assert.Equal(t, "desc Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops", h.Description)

	assert.Equal(t, "Dubai, UAE", hs[1].Location)
	assert.Equal(t, 6950, hs[1].Price)
	assert.Equal(t, "Tokyo, Japan", hs[2].Location)
	assert.Equal(t, "Paris, France", hs[3].Location)
	assert.Equal(t, 570, hs[3].Price)
}

func TestNormalize_PreservesOrderAndInvariants(t *testing.T) {
	raw := append(sampleProducts(), product(42, "Mystery", 12.34, "garden", 5))
	hs := app.Normalize(raw)
	require.Len(t, hs, len(raw))

	for i, h := range hs {
		assert.Equal(t, *raw[i].ID, mustAtoi(t, h.ID), "order")
		assert.NotEmpty(t, h.Location)
		assert.Len(t, h.Images, 4)
		assert.Equal(t, int(math.Round(raw[i].Price*10)), h.Price)
	}

	unknown := hs[len(hs)-1]
	assert.Equal(t, "New York, USA", unknown.Location)
	assert.Equal(t, domain.Coords{Lat: 40.7128, Lon: -74.006}, unknown.Coords)
	assert.Equal(t, []string{"WiFi", "Restaurant", "Room Service"}, unknown.Amenities)
	assert.Equal(t, domain.LookupImages(domain.CategoryElectronics), unknown.Images)
}

func TestNormalize_ShortTitleStillGetsEllipsis(t *testing.T) {
	hs := app.Normalize([]domain.RawProduct{product(2, "Tiny", 1, "electronics", 1)})
	assert.Equal(t, "Tiny...", hs[0].Name)
}

func TestNormalize_TruncatesOnCharacters(t *testing.T) {
	title := "Élégant Hôtel de la Côte d'Azur Résidence"
	hs := app.Normalize([]domain.RawProduct{product(3, title, 1, "", 1)})
	assert.Equal(t, string([]rune(title)[:30])+"...", hs[0].Name)
}

func TestValidateProducts(t *testing.T) {
	require.NoError(t, app.ValidateProducts(sampleProducts()))
	require.NoError(t, app.ValidateProducts(nil))

	bad := sampleProducts()
	bad[2].Rating = nil
	err := app.ValidateProducts(bad)
	require.Error(t, err)
	assert.Equal(t, domain.ValidationFailure, domain.KindOf(err))
	assert.Contains(t, err.Error(), "item 2")

	noTitle := []domain.RawProduct{product(1, "  ", 1, "", 1)}
	assert.Error(t, app.ValidateProducts(noTitle))
}

func TestValidateProducts_ZeroIDIsValid(t *testing.T) {
	zero := []domain.RawProduct{product(0, "Zero", 1, "electronics", 1)}
	require.NoError(t, app.ValidateProducts(zero))
	assert.Equal(t, "0", app.Normalize(zero)[0].ID)

	zero[0].ID = nil
	err := app.ValidateProducts(zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestLoadHotels_ErrorKinds(t *testing.T) {
	ctx := context.Background()

	_, err := app.LoadHotels(ctx, &fakeCatalog{err: errors.New("dial tcp: refused")})
	require.Error(t, err)
	assert.Equal(t, domain.FetchFailure, domain.KindOf(err))

	bad := sampleProducts()
	bad[0].ID = nil
	_, err = app.LoadHotels(ctx, &fakeCatalog{items: bad})
	assert.Equal(t, domain.ValidationFailure, domain.KindOf(err))

	hs, err := app.LoadHotels(ctx, &fakeCatalog{items: sampleProducts()})
	require.NoError(t, err)
	assert.Len(t, hs, 4)
}

func TestHotelsOrFallback(t *testing.T) {
	fb := app.HotelsOrFallback(nil, domain.FetchFailed("catalog", errors.New("boom")))
	require.Len(t, fb, 1)
	assert.Equal(t, "1", fb[0].ID)
	assert.Equal(t, "Luxury Resort & Spa", fb[0].Name)
	assert.Equal(t, 299, fb[0].Price)
	assert.Equal(t, "Bali, Indonesia", fb[0].Location)
	assert.Len(t, fb[0].Images, 4)

	hs := app.Normalize(sampleProducts())
	assert.Equal(t, hs, app.HotelsOrFallback(hs, nil))
}

func mustAtoi(t *testing.T, s string) int64 {
	t.Helper()
	n, err := strconv.ParseInt(s, 10, 64)
	require.NoError(t, err)
	return n
}
