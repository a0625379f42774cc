package client

import (
	"context"
	"net/url"

	"smarttour/pkg/model"
)

type TourClient struct {
	httpClient *HttpClient
}

func NewTourClient(baseUrl string) *TourClient {
	return &TourClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *TourClient) List(ctx context.Context, category, search string) ([]model.Tour, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("search", search)
	}

	path := "/api/v1/tours"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, err
	}

	var tours []model.Tour
	if err := decodeData(resp, &tours, "tour list"); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *TourClient) GetByID(ctx context.Context, id string) (*model.Tour, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/tours/id/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var tour model.Tour
	if err := decodeData(resp, &tour, "tour"); err != nil {
		return nil, err
	}
	return &tour, nil
}
