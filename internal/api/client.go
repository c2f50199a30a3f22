package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"safespace/client/internal/models"
)

// Client talks to the external SafeSpace REST API. All derivation happens on
// our side; the API is only ever read, except for the compare list.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewClient builds a client for the API at baseURL (no trailing slash).
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// GetProperties fetches every known listing.
func (c *Client) GetProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := c.get(ctx, "/api/properties", &properties); err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}
	return properties, nil
}

// GetProperty fetches a single listing by id.
func (c *Client) GetProperty(ctx context.Context, id int) (models.Property, error) {
	var property models.Property
	if err := c.get(ctx, fmt.Sprintf("/api/properties/%d", id), &property); err != nil {
		return models.Property{}, fmt.Errorf("fetch property %d: %w", id, err)
	}
	return property, nil
}

// GetNeighborhoods fetches every neighborhood aggregate.
func (c *Client) GetNeighborhoods(ctx context.Context) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	if err := c.get(ctx, "/api/neighborhoods", &neighborhoods); err != nil {
		return nil, fmt.Errorf("fetch neighborhoods: %w", err)
	}
	return neighborhoods, nil
}

// GetCompareList fetches the user's compare list entries.
func (c *Client) GetCompareList(ctx context.Context, userID int) ([]models.CompareListItem, error) {
	var items []models.CompareListItem
	if err := c.get(ctx, fmt.Sprintf("/api/compare/%d", userID), &items); err != nil {
		return nil, fmt.Errorf("fetch compare list: %w", err)
	}
	return items, nil
}

// AddToCompare adds a property to the user's compare list and returns the
// created entry.
func (c *Client) AddToCompare(ctx context.Context, userID, propertyID int) (models.CompareListItem, error) {
	body := models.CompareRequest{
		UserID:     userID,
		PropertyID: propertyID,
		AddedAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return models.CompareListItem{}, fmt.Errorf("marshal compare request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/compare", bytes.NewReader(payload))
	if err != nil {
		return models.CompareListItem{}, fmt.Errorf("create compare request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var item models.CompareListItem
	if err := c.do(req, &item); err != nil {
		return models.CompareListItem{}, fmt.Errorf("add to compare: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"user_id":     userID,
		"property_id": propertyID,
	}).Info("Added property to compare list")

	return item, nil
}

// RemoveFromCompare deletes a compare-list entry by its own id (not the
// property id).
func (c *Client) RemoveFromCompare(ctx context.Context, itemID int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/compare/%d", c.baseURL, itemID), nil)
	if err != nil {
		return fmt.Errorf("create delete request: %v", err)
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("remove from compare: %w", err)
	}

	c.logger.WithField("item_id", itemID).Info("Removed entry from compare list")
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %v", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "SafeSpace Client/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("url", req.URL.String()).Error("API request failed")
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WithFields(logrus.Fields{
			"url":    req.URL.String(),
			"status": resp.StatusCode,
		}).Error("API returned non-success status")
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %v", err)
	}
	return nil
}
