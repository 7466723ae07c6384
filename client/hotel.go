package client

import (
	"context"
	"fmt"
	"net/http"
)

// Merchant hotel endpoints.
const (
	pathHotels   = "/hotels"
	pathMyHotels = "/hotels/my-hotels"
)

func hotelPath(id uint) string { return fmt.Sprintf("%s/%d", pathHotels, id) }

// CreateHotel submits a new listing. The payload is shape-checked before
// any network traffic; a price that is not the cheapest room price never
// leaves the process.
func (c *Client) CreateHotel(ctx context.Context, req CreateHotelRequest) (Hotel, error) {
	var out HotelData
	err := c.invoke(ctx, call{
		method:         http.MethodPost,
		path:           pathHotels,
		body:           &req,
		out:            &out,
		validateOut:    true,
		successMessage: "hotel created, pending review",
	})
	if err != nil {
		return Hotel{}, err
	}
	return out.Hotel, nil
}

// MyHotels pages through the caller's own listings.
func (c *Client) MyHotels(ctx context.Context, q HotelQuery) (HotelList, error) {
	q.applyDefaults()
	if err := c.checkQuery(&q); err != nil {
		return HotelList{}, err
	}

	var out HotelList
	err := c.invoke(ctx, call{
		method:      http.MethodGet,
		path:        pathMyHotels,
		query:       q.values(),
		out:         &out,
		validateOut: true,
	})
	if err != nil {
		return HotelList{}, err
	}
	return out, nil
}

// Hotel fetches one listing by id.
func (c *Client) Hotel(ctx context.Context, id uint) (Hotel, error) {
	var out HotelData
	err := c.invoke(ctx, call{
		method:      http.MethodGet,
		path:        hotelPath(id),
		out:         &out,
		validateOut: true,
	})
	if err != nil {
		return Hotel{}, err
	}
	return out.Hotel, nil
}

// UpdateHotel applies a partial edit to a listing. Omitted fields keep
// their server-side values; the server sends edited listings back through
// review either way.
func (c *Client) UpdateHotel(ctx context.Context, id uint, req UpdateHotelRequest) (Hotel, error) {
	var out HotelData
	err := c.invoke(ctx, call{
		method:         http.MethodPut,
		path:           hotelPath(id),
		body:           &req,
		out:            &out,
		validateOut:    true,
		successMessage: "hotel updated",
	})
	if err != nil {
		return Hotel{}, err
	}
	return out.Hotel, nil
}

// DeleteHotel removes a listing. Only the envelope's success flag matters,
// so no response shape is declared.
func (c *Client) DeleteHotel(ctx context.Context, id uint) error {
	return c.invoke(ctx, call{
		method:         http.MethodDelete,
		path:           hotelPath(id),
		successMessage: "hotel deleted",
	})
}
