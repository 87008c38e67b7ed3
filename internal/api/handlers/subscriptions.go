package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/coastalops/ctas/internal/notify"
	"github.com/coastalops/ctas/internal/store"
	domain "github.com/coastalops/ctas/pkg/types"
)

// SubscriptionsHandler handles subscription CRUD and test delivery.
type SubscriptionsHandler struct {
	store     store.Store
	notifiers map[domain.Channel]notify.Notifier
}

// NewSubscriptionsHandler creates a new SubscriptionsHandler. The notifiers
// back the test-delivery endpoint.
func NewSubscriptionsHandler(s store.Store, notifiers []notify.Notifier) *SubscriptionsHandler {
	byChannel := make(map[domain.Channel]notify.Notifier, len(notifiers))
	for _, n := range notifiers {
		byChannel[n.Channel()] = n
	}
	return &SubscriptionsHandler{store: s, notifiers: byChannel}
}

// --- Input/Output types ---

// ListSubscriptionsInput is the input for listing subscriptions.
type ListSubscriptionsInput struct {
	Active string `query:"active" doc:"Filter by active state" enum:"true,"`
}

// ListSubscriptionsOutput is the response for listing subscriptions.
type ListSubscriptionsOutput struct {
	Body []domain.Subscription
}

// GetSubscriptionInput is the input for getting a single subscription.
type GetSubscriptionInput struct {
	ID string `path:"id" doc:"Subscription UUID"`
}

// GetSubscriptionOutput is the response for getting a single subscription.
type GetSubscriptionOutput struct {
	Body domain.Subscription
}

// CreateSubscriptionInput is the input for creating a subscription.
type CreateSubscriptionInput struct {
	Body domain.Subscription
}

// UpdateSubscriptionInput is the input for updating a subscription.
type UpdateSubscriptionInput struct {
	ID   string `path:"id" doc:"Subscription UUID"`
	Body domain.Subscription
}

// SubscriptionOutput is the response carrying a single subscription.
type SubscriptionOutput struct {
	Body domain.Subscription
}

// SetSubscriptionActiveInput is the input for toggling a subscription.
type SetSubscriptionActiveInput struct {
	ID   string `path:"id" doc:"Subscription UUID"`
	Body struct {
		Active bool `json:"active"`
	}
}

// DeleteSubscriptionInput is the input for deleting a subscription.
type DeleteSubscriptionInput struct {
	ID string `path:"id" doc:"Subscription UUID"`
}

// SubscriptionActionOutput is the response for subscription actions.
type SubscriptionActionOutput struct {
	Body struct {
		Status string `json:"status" example:"updated"`
	}
}

// TestSubscriptionInput is the input for a test delivery.
type TestSubscriptionInput struct {
	ID   string `path:"id" doc:"Subscription UUID"`
	Body struct {
		Channel domain.Channel `json:"channel" doc:"Channel to test" enum:"email,sms,push"`
	}
}

// TestSubscriptionOutput is the response for a test delivery.
type TestSubscriptionOutput struct {
	Body struct {
		Status  string         `json:"status" example:"sent"`
		Channel domain.Channel `json:"channel"`
	}
}

// --- Handlers ---

// ListSubscriptions returns subscriptions, optionally active only.
func (h *SubscriptionsHandler) ListSubscriptions(
	ctx context.Context,
	input *ListSubscriptionsInput,
) (*ListSubscriptionsOutput, error) {
	subs, err := h.store.ListSubscriptions(ctx, input.Active == "true")
	if err != nil {
		return nil, huma.Error500InternalServerError("listing subscriptions failed: " + err.Error())
	}

	if subs == nil {
		subs = []domain.Subscription{}
	}

	return &ListSubscriptionsOutput{Body: subs}, nil
}

// GetSubscription returns a single subscription by ID.
func (h *SubscriptionsHandler) GetSubscription(
	ctx context.Context,
	input *GetSubscriptionInput,
) (*GetSubscriptionOutput, error) {
	sub, err := h.store.GetSubscription(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("subscription not found")
	}

	return &GetSubscriptionOutput{Body: *sub}, nil
}

// CreateSubscription creates a new subscription.
func (h *SubscriptionsHandler) CreateSubscription(
	ctx context.Context,
	input *CreateSubscriptionInput,
) (*SubscriptionOutput, error) {
	sub := input.Body
	if sub.Name == "" {
		return nil, huma.Error400BadRequest("name is required")
	}
	if sub.Email == "" && sub.Phone == "" && sub.DeviceToken == "" {
		return nil, huma.Error400BadRequest("at least one contact method is required")
	}

	if err := h.store.CreateSubscription(ctx, &sub); err != nil {
		return nil, huma.Error500InternalServerError("creating subscription failed: " + err.Error())
	}

	return &SubscriptionOutput{Body: sub}, nil
}

// UpdateSubscription updates an existing subscription.
func (h *SubscriptionsHandler) UpdateSubscription(
	ctx context.Context,
	input *UpdateSubscriptionInput,
) (*SubscriptionOutput, error) {
	sub := input.Body
	sub.ID = input.ID

	if err := h.store.UpdateSubscription(ctx, &sub); err != nil {
		return nil, huma.Error500InternalServerError("updating subscription failed: " + err.Error())
	}

	return &SubscriptionOutput{Body: sub}, nil
}

// SetSubscriptionActive enables or disables a subscription.
func (h *SubscriptionsHandler) SetSubscriptionActive(
	ctx context.Context,
	input *SetSubscriptionActiveInput,
) (*SubscriptionActionOutput, error) {
	if err := h.store.SetSubscriptionActive(ctx, input.ID, input.Body.Active); err != nil {
		return nil, huma.Error500InternalServerError("setting subscription active failed: " + err.Error())
	}

	resp := &SubscriptionActionOutput{}
	resp.Body.Status = "updated"
	return resp, nil
}

// DeleteSubscription deletes a subscription by ID.
func (h *SubscriptionsHandler) DeleteSubscription(
	ctx context.Context,
	input *DeleteSubscriptionInput,
) (*SubscriptionActionOutput, error) {
	if err := h.store.DeleteSubscription(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting subscription failed: " + err.Error())
	}

	resp := &SubscriptionActionOutput{}
	resp.Body.Status = "deleted"
	return resp, nil
}

// TestSubscription sends a synthetic low-severity alert through one of the
// subscription's channels so recipients can verify their setup.
func (h *SubscriptionsHandler) TestSubscription(
	ctx context.Context,
	input *TestSubscriptionInput,
) (*TestSubscriptionOutput, error) {
	sub, err := h.store.GetSubscription(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("subscription not found")
	}

	notifier, ok := h.notifiers[input.Body.Channel]
	if !ok {
		return nil, huma.Error400BadRequest("channel not configured: " + string(input.Body.Channel))
	}

	recipient := sub.Recipient(input.Body.Channel)
	if recipient == "" {
		return nil, huma.Error400BadRequest("subscription has no " + string(input.Body.Channel) + " recipient")
	}

	now := time.Now().UTC()
	msg := &notify.Message{
		Alert: &domain.Alert{
			Type:         domain.AlertSystem,
			Severity:     domain.SeverityLow,
			Title:        "Test notification",
			Description:  "This is a test of your coastal alert subscription. No action is required.",
			LocationName: sub.Name,
			IssuedAt:     now,
		},
		Recipient:     recipient,
		RecipientName: sub.Name,
	}
	if err := notifier.Send(ctx, msg); err != nil {
		return nil, huma.Error502BadGateway("test delivery failed: " + err.Error())
	}

	resp := &TestSubscriptionOutput{}
	resp.Body.Status = "sent"
	resp.Body.Channel = input.Body.Channel
	return resp, nil
}

// RegisterSubscriptionRoutes registers subscription endpoints with the
// Huma API.
func RegisterSubscriptionRoutes(api huma.API, h *SubscriptionsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-subscriptions",
		Method:      http.MethodGet,
		Path:        "/api/v1/subscriptions",
		Summary:     "List subscriptions",
		Tags:        []string{"subscriptions"},
	}, h.ListSubscriptions)

	huma.Register(api, huma.Operation{
		OperationID:   "create-subscription",
		Method:        http.MethodPost,
		Path:          "/api/v1/subscriptions",
		Summary:       "Create a subscription",
		Tags:          []string{"subscriptions"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, h.CreateSubscription)

	huma.Register(api, huma.Operation{
		OperationID: "get-subscription",
		Method:      http.MethodGet,
		Path:        "/api/v1/subscriptions/{id}",
		Summary:     "Get a subscription by ID",
		Tags:        []string{"subscriptions"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSubscription)

	huma.Register(api, huma.Operation{
		OperationID: "update-subscription",
		Method:      http.MethodPut,
		Path:        "/api/v1/subscriptions/{id}",
		Summary:     "Update a subscription",
		Tags:        []string{"subscriptions"},
	}, h.UpdateSubscription)

	huma.Register(api, huma.Operation{
		OperationID: "set-subscription-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/subscriptions/{id}/active",
		Summary:     "Enable or disable a subscription",
		Tags:        []string{"subscriptions"},
	}, h.SetSubscriptionActive)

	huma.Register(api, huma.Operation{
		OperationID: "delete-subscription",
		Method:      http.MethodDelete,
		Path:        "/api/v1/subscriptions/{id}",
		Summary:     "Delete a subscription",
		Tags:        []string{"subscriptions"},
	}, h.DeleteSubscription)

	huma.Register(api, huma.Operation{
		OperationID: "test-subscription",
		Method:      http.MethodPost,
		Path:        "/api/v1/subscriptions/{id}/test",
		Summary:     "Send a test notification",
		Description: "Sends a synthetic low-severity alert through one of the subscription's channels.",
		Tags:        []string{"subscriptions"},
		Errors:      []int{http.StatusNotFound, http.StatusBadRequest, http.StatusBadGateway},
	}, h.TestSubscription)
}
