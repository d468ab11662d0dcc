package item

import (
	"context"
	"errors"
	"time"

	"freezer/domain"
	"freezer/pkg/events"
	"freezer/pkg/httperror"

	"go.uber.org/zap"
)

type DeleteItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteItemHandler(repository Repository, eventPublisher events.Publisher) *DeleteItemHandler {
	return &DeleteItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteItemRequest struct {
	ItemID string `params:"id"`
}

type DeleteItemResponse struct {
	ID string `json:"id"`
}

func (h DeleteItemHandler) Handle(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	it, err := h.repository.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httperror.BadRequest(
				"item.destroy.not_found",
				"Item not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"item.destroy.failed",
			"Failed to get item",
			nil,
		)
	}

	if err := authorizeOwner(it, callerID(ctx)); err != nil {
		return nil, err
	}

	if err := h.repository.DeleteItem(ctx, req.ItemID); err != nil {
		return nil, httperror.InternalServerError(
			"item.destroy.failed",
			"An error occurred while deleting the item",
			nil,
		)
	}

	h.publishEvent(ctx, it)

	return &DeleteItemResponse{ID: req.ItemID}, nil
}

func (h DeleteItemHandler) publishEvent(ctx context.Context, it domain.Item) {
	if h.eventPublisher == nil {
		return
	}

	eventPayload := events.ItemDeletedPayload{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		DeletedAt: time.Now().UTC(),
	}

	headers := events.Headers{
		TraceID:       events.GenerateTraceID(),
		CorrelationID: events.GenerateCorrelationID(),
		Service:       "freezer",
	}

	event := events.NewEvent(
		events.ItemDeletedEvent,
		events.EventVersionV1,
		eventPayload,
		headers,
	)

	if err := h.eventPublisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish item.deleted event",
			zap.String("itemID", it.ID),
			zap.Error(err),
		)
	}
}
