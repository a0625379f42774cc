package client

import (
	"context"
	"fmt"
	"net/url"

	"smarttour/pkg/model"
)

const bookingSessionsPath = "/api/v1/booking-sessions"

// BookingClient drives booking sessions and reads confirmed bookings.
type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseUrl string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *BookingClient) StartSession(ctx context.Context, userID string) (*model.BookingSession, error) {
	resp, err := c.httpClient.POST(ctx, bookingSessionsPath, model.StartSessionRequest{UserID: userID})
	if err != nil {
		return nil, err
	}
	return decodeSession(resp)
}

func (c *BookingClient) GetSession(ctx context.Context, token string) (*model.BookingSession, error) {
	resp, err := c.httpClient.GET(ctx, sessionPath(token, ""))
	if err != nil {
		return nil, err
	}
	return decodeSession(resp)
}

func (c *BookingClient) SelectTour(ctx context.Context, token, tourID string) (*model.BookingSession, error) {
	resp, err := c.httpClient.PUT(ctx, sessionPath(token, "/tour"), model.SelectTourRequest{TourID: tourID})
	if err != nil {
		return nil, err
	}
	return decodeSession(resp)
}

func (c *BookingClient) SetGuestInfo(ctx context.Context, token string, info model.GuestInfo) (*model.BookingSession, error) {
	resp, err := c.httpClient.PUT(ctx, sessionPath(token, "/guests"), info)
	if err != nil {
		return nil, err
	}
	return decodeSession(resp)
}

func (c *BookingClient) Advance(ctx context.Context, token string) (*model.BookingSession, error) {
	return c.transition(ctx, token, "advance")
}

func (c *BookingClient) Retreat(ctx context.Context, token string) (*model.BookingSession, error) {
	return c.transition(ctx, token, "retreat")
}

func (c *BookingClient) Reset(ctx context.Context, token string) (*model.BookingSession, error) {
	return c.transition(ctx, token, "reset")
}

func (c *BookingClient) Quote(ctx context.Context, token string) (*model.Quote, error) {
	resp, err := c.httpClient.GET(ctx, sessionPath(token, "/quote"))
	if err != nil {
		return nil, err
	}

	var quote model.Quote
	if err := decodeData(resp, &quote, "quote"); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *BookingClient) EndSession(ctx context.Context, token string) error {
	resp, err := c.httpClient.DELETE(ctx, sessionPath(token, ""))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("end session failed: %s", GetErrorMessage(resp))
	}
	return nil
}

func (c *BookingClient) ListBookings(ctx context.Context, limit int, offset int64) ([]model.BookingRecord, *Metadata, error) {
	path := fmt.Sprintf("/api/v1/bookings?limit=%d&offset=%d", limit, offset)
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	var records []model.BookingRecord
	if err := decodeData(resp, &records, "booking list"); err != nil {
		return nil, nil, err
	}

	var metadata Metadata
	if err := resp.DecodeJSON(&metadata); err != nil {
		return nil, nil, fmt.Errorf("could not decode paginated resp:\n%s\n%w", resp.ToString(), err)
	}
	return records, &metadata, nil
}

func (c *BookingClient) GetBooking(ctx context.Context, id string) (*model.BookingRecord, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/bookings/id/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var record model.BookingRecord
	if err := decodeData(resp, &record, "booking"); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *BookingClient) transition(ctx context.Context, token, action string) (*model.BookingSession, error) {
	resp, err := c.httpClient.POST(ctx, sessionPath(token, "/"+action), nil)
	if err != nil {
		return nil, err
	}
	return decodeSession(resp)
}

func sessionPath(token, suffix string) string {
	return bookingSessionsPath + "/" + url.PathEscape(token) + suffix
}

func decodeSession(resp *Response) (*model.BookingSession, error) {
	var session model.BookingSession
	if err := decodeData(resp, &session, "booking session"); err != nil {
		return nil, err
	}
	return &session, nil
}
