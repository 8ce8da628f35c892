// Package weather wraps the OpenWeatherMap current-weather endpoint.
package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotel_booking/internal/adapters/restclient"
	"hotel_booking/internal/domain"
)

const source = "weather"

// Client implements domain.WeatherSource.
type Client struct {
	base   string
	apiKey string
	rc     *restclient.Client
}

var _ domain.WeatherSource = (*Client)(nil)

func New(base, apiKey string, timeout time.Duration, rps int) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		rc:     restclient.New(source, timeout, rps),
	}
}

// response is the subset of the OpenWeatherMap payload we read.
type response struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns the weather at lat/lon in metric units.
func (c *Client) Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	var r response
	if err := c.rc.GetJSON(ctx, "weather", c.base+"/weather?"+params.Encode(), &r); err != nil {
		return domain.WeatherSnapshot{}, domain.FetchFailed(source, err)
	}
	if r.Main == nil || r.Wind == nil || len(r.Weather) == 0 {
		return domain.WeatherSnapshot{}, domain.ValidationFailed(source,
			errors.New("response missing main, wind or weather"))
	}
	if r.Main.Humidity < 0 || r.Main.Humidity > 100 {
		return domain.WeatherSnapshot{}, domain.ValidationFailed(source,
			fmt.Errorf("humidity %v out of range", r.Main.Humidity))
	}

	w := r.Weather[0]
	return domain.WeatherSnapshot{
		Temperature: r.Main.Temp,
		Condition:   w.Main,
		Description: w.Description,
		Icon:        w.Icon,
		Humidity:    int(math.Round(r.Main.Humidity)),
		WindSpeed:   r.Wind.Speed,
	}, nil
}
