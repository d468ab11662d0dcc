package consumers

import (
	"context"
	"encoding/json"
	"fmt"

	"freezer/app/item"
	"freezer/pkg/events"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ItemEventHandler recomputes an owner's stock summary whenever their
// inventory changes, so the totals show up in the worker logs and feed the
// household dashboards.
type ItemEventHandler struct {
	repository item.Repository
	logger     *zap.Logger
}

func NewItemEventHandler(repository item.Repository, logger *zap.Logger) *ItemEventHandler {
	return &ItemEventHandler{
		repository: repository,
		logger:     logger,
	}
}

func (h *ItemEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	h.logger.Info("Item event received",
		zap.String("event", event.Event),
		zap.String("version", event.Version),
		zap.String("traceId", event.TraceID),
	)

	switch event.Event {
	case events.ItemCreatedEvent, events.ItemUpdatedEvent, events.ItemDeletedEvent:
		return h.summarizeOwner(ctx, event)
	default:
		h.logger.Warn("Unknown item event type", zap.String("event", event.Event))
		return nil
	}
}

func (h *ItemEventHandler) summarizeOwner(ctx context.Context, event *events.Event) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("malformed payload - marshal failed: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return fmt.Errorf("malformed payload - unmarshal failed: %w", err)
	}

	ownerID, ok := payload["ownerId"].(string)
	if !ok || ownerID == "" {
		return fmt.Errorf("malformed payload - ownerId missing or invalid")
	}

	items, err := h.repository.GetItemsByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to list owner items: %w", err)
	}

	totalMeals := decimal.Zero
	mealsByLocation := map[string]decimal.Decimal{}
	for _, it := range items {
		meals := it.Meals()
		totalMeals = totalMeals.Add(meals)
		mealsByLocation[it.Location] = mealsByLocation[it.Location].Add(meals)
	}

	fields := []zap.Field{
		zap.String("ownerId", ownerID),
		zap.Int("items", len(items)),
		zap.String("totalMeals", totalMeals.String()),
		zap.String("traceId", event.TraceID),
	}
	for location, meals := range mealsByLocation {
		fields = append(fields, zap.String("meals."+location, meals.String()))
	}

	h.logger.Info("Owner stock summary", fields...)

	return nil
}
