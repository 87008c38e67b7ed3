package client

import (
	"context"
	"fmt"

	domain "github.com/coastalops/ctas/pkg/types"
)

// subscriptionRequest contains only the fields the API accepts for
// create/update.
type subscriptionRequest struct {
	Name        string             `json:"name,omitempty"`
	Email       string             `json:"email,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	DeviceToken string             `json:"device_token,omitempty"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	RadiusKm    float64            `json:"radius_km"`
	AlertTypes  []domain.AlertType `json:"alert_types,omitempty"`
	MinSeverity domain.Severity    `json:"min_severity,omitempty"`
	Channels    []domain.Channel   `json:"channels,omitempty"`
	Active      bool               `json:"active"`
}

func subscriptionToRequest(sub *domain.Subscription) subscriptionRequest {
	return subscriptionRequest{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		DeviceToken: sub.DeviceToken,
		Latitude:    sub.Latitude,
		Longitude:   sub.Longitude,
		RadiusKm:    sub.RadiusKm,
		AlertTypes:  sub.AlertTypes,
		MinSeverity: sub.MinSeverity,
		Channels:    sub.Channels,
		Active:      sub.Active,
	}
}

// ListSubscriptions returns all subscriptions, optionally active only.
func (c *Client) ListSubscriptions(ctx context.Context, activeOnly bool) ([]domain.Subscription, error) {
	path := "/api/v1/subscriptions"
	if activeOnly {
		path += "?active=true"
	}
	var subs []domain.Subscription
	if err := c.get(ctx, path, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetSubscription returns a single subscription by ID.
func (c *Client) GetSubscription(ctx context.Context, id string) (*domain.Subscription, error) {
	var sub domain.Subscription
	if err := c.get(ctx, "/api/v1/subscriptions/"+id, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateSubscription registers a new subscription.
func (c *Client) CreateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	var created domain.Subscription
	if err := c.post(ctx, "/api/v1/subscriptions", subscriptionToRequest(sub), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSubscription updates an existing subscription.
func (c *Client) UpdateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	var updated domain.Subscription
	if err := c.put(ctx, "/api/v1/subscriptions/"+sub.ID, subscriptionToRequest(sub), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetSubscriptionActive enables or disables a subscription.
func (c *Client) SetSubscriptionActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, fmt.Sprintf("/api/v1/subscriptions/%s/active", id), body, nil)
}

// DeleteSubscription deletes a subscription.
func (c *Client) DeleteSubscription(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/subscriptions/"+id, nil)
}

// TestSubscription sends a test notification through the given channel.
func (c *Client) TestSubscription(ctx context.Context, id string, channel domain.Channel) error {
	body := map[string]string{"channel": string(channel)}
	return c.post(ctx, fmt.Sprintf("/api/v1/subscriptions/%s/test", id), body, nil)
}
