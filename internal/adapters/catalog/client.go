// Package catalog reads the public product catalog that backs the hotel listing.
package catalog

import (
	"context"
	"strings"
	"time"

	"hotel_booking/internal/adapters/restclient"
	"hotel_booking/internal/domain"
)

const source = "catalog"

// Client implements domain.CatalogSource.
type Client struct {
	base string
	rc   *restclient.Client
}

var _ domain.CatalogSource = (*Client)(nil)

func New(base string, timeout time.Duration, rps int) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		rc:   restclient.New(source, timeout, rps),
	}
}

// GetProducts returns every catalog item. Transport, status and decode errors
// come back as a domain.FetchError of kind FetchFailure.
func (c *Client) GetProducts(ctx context.Context) ([]domain.RawProduct, error) {
	var out []domain.RawProduct
	if err := c.rc.GetJSON(ctx, "products", c.base+"/products", &out); err != nil {
		return nil, domain.FetchFailed(source, err)
	}
	return out, nil
}
