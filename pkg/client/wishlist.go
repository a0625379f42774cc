package client

import (
	"context"
	"fmt"
	"net/url"

	"smarttour/pkg/model"
)

type WishlistClient struct {
	httpClient *HttpClient
}

func NewWishlistClient(baseUrl string) *WishlistClient {
	return &WishlistClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *WishlistClient) List(ctx context.Context, userID, priority, sort string) (*model.WishlistView, error) {
	q := url.Values{}
	if priority != "" {
		q.Set("priority", priority)
	}
	if sort != "" {
		q.Set("sort", sort)
	}

	path := wishlistPath(userID)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, err
	}

	var view model.WishlistView
	if err := decodeData(resp, &view, "wishlist"); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *WishlistClient) Stats(ctx context.Context, userID string) (*model.WishlistStats, error) {
	resp, err := c.httpClient.GET(ctx, wishlistPath(userID)+"/stats")
	if err != nil {
		return nil, err
	}

	var stats model.WishlistStats
	if err := decodeData(resp, &stats, "wishlist stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *WishlistClient) Replace(ctx context.Context, userID string, items []model.WishlistItem) (*model.WishlistView, error) {
	resp, err := c.httpClient.PUT(ctx, wishlistPath(userID), items)
	if err != nil {
		return nil, err
	}

	var view model.WishlistView
	if err := decodeData(resp, &view, "wishlist"); err != nil {
		return nil, err
	}
	return &view, nil
}

// SeedSamples sends a bodyless replace, which fills the wishlist with the
// sample destinations.
func (c *WishlistClient) SeedSamples(ctx context.Context, userID string) (*model.WishlistView, error) {
	resp, err := c.httpClient.PUT(ctx, wishlistPath(userID), nil)
	if err != nil {
		return nil, err
	}

	var view model.WishlistView
	if err := decodeData(resp, &view, "wishlist"); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *WishlistClient) Clear(ctx context.Context, userID string) error {
	resp, err := c.httpClient.DELETE(ctx, wishlistPath(userID))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("clear wishlist failed: %s", GetErrorMessage(resp))
	}
	return nil
}

func (c *WishlistClient) AddItem(ctx context.Context, userID string, item model.WishlistItem) (*model.WishlistItem, error) {
	resp, err := c.httpClient.POST(ctx, wishlistPath(userID)+"/items", item)
	if err != nil {
		return nil, err
	}

	var created model.WishlistItem
	if err := decodeData(resp, &created, "wishlist item"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *WishlistClient) RemoveItem(ctx context.Context, userID, itemID string) error {
	resp, err := c.httpClient.DELETE(ctx, itemPath(userID, itemID))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("remove item failed: %s", GetErrorMessage(resp))
	}
	return nil
}

func (c *WishlistClient) UpdatePriority(ctx context.Context, userID, itemID string, priority model.Priority) (*model.WishlistItem, error) {
	resp, err := c.httpClient.PATCH(ctx, itemPath(userID, itemID)+"/priority", model.PriorityUpdate{Priority: priority})
	if err != nil {
		return nil, err
	}

	var item model.WishlistItem
	if err := decodeData(resp, &item, "wishlist item"); err != nil {
		return nil, err
	}
	return &item, nil
}

func wishlistPath(userID string) string {
	return "/api/v1/wishlists/" + url.PathEscape(userID)
}

func itemPath(userID, itemID string) string {
	return wishlistPath(userID) + "/items/" + url.PathEscape(itemID)
}
