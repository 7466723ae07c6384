package client

import (
	"context"
	"fmt"
	"net/http"
)

// Admin endpoints.
const (
	pathPendingHotels = "/admin/hotels/pending"
	pathAllHotels     = "/admin/hotels"
	pathStatistics    = "/admin/statistics"
)

func reviewPath(id uint) string { return fmt.Sprintf("%s/%d/review", pathAllHotels, id) }
func togglePath(id uint) string { return fmt.Sprintf("%s/%d/toggle", pathAllHotels, id) }

// PendingHotels pages through the review queue.
func (c *Client) PendingHotels(ctx context.Context, q HotelQuery) (HotelList, error) {
	q.applyDefaults()
	if err := c.checkQuery(&q); err != nil {
		return HotelList{}, err
	}

	var out HotelList
	err := c.invoke(ctx, call{
		method:      http.MethodGet,
		path:        pathPendingHotels,
		query:       q.values(),
		out:         &out,
		validateOut: true,
	})
	if err != nil {
		return HotelList{}, err
	}
	return out, nil
}

// ReviewHotel approves or rejects a pending listing. Rejecting without a
// reason fails shape validation before any network call.
func (c *Client) ReviewHotel(ctx context.Context, id uint, req ReviewHotelRequest) error {
	return c.invoke(ctx, call{
		method:         http.MethodPost,
		path:           reviewPath(id),
		body:           &req,
		successMessage: "review recorded",
	})
}

// ToggleHotel publishes or unpublishes an approved listing.
func (c *Client) ToggleHotel(ctx context.Context, id uint, req ToggleHotelRequest) error {
	return c.invoke(ctx, call{
		method:         http.MethodPost,
		path:           togglePath(id),
		body:           &req,
		successMessage: "hotel status updated",
	})
}

// AllHotels pages through every listing on the platform.
func (c *Client) AllHotels(ctx context.Context, q HotelQuery) (HotelList, error) {
	q.applyDefaults()
	if err := c.checkQuery(&q); err != nil {
		return HotelList{}, err
	}

	var out HotelList
	err := c.invoke(ctx, call{
		method:      http.MethodGet,
		path:        pathAllHotels,
		query:       q.values(),
		out:         &out,
		validateOut: true,
	})
	if err != nil {
		return HotelList{}, err
	}
	return out, nil
}

// AdminStatistics fetches the dashboard counters.
func (c *Client) AdminStatistics(ctx context.Context) (Statistics, error) {
	var out Statistics
	err := c.invoke(ctx, call{
		method: http.MethodGet,
		path:   pathStatistics,
		out:    &out,
	})
	if err != nil {
		return Statistics{}, err
	}
	return out, nil
}
