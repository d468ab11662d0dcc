package item

import (
	"context"
	"errors"
	"time"

	"freezer/domain"
	"freezer/pkg/events"
	"freezer/pkg/httperror"
	"freezer/pkg/media"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UpdateItemHandler struct {
	repository     Repository
	resolver       MediaResolver
	eventPublisher events.Publisher
}

type UpdateItemRequest struct {
	ItemID           string           `params:"id"`
	Description      *string          `json:"description,omitempty"`
	Location         *string          `json:"location,omitempty"`
	Category         *string          `json:"category,omitempty"`
	Quantity         *decimal.Decimal `json:"quantity,omitempty"`
	MealsPerQuantity *decimal.Decimal `json:"mealsPerQuantity,omitempty"`
	Year             *int             `json:"year,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
	Image            *string          `json:"imageRef,omitempty"`
	ImagePublicID    *string          `json:"imagePublicId,omitempty"`
}

type UpdateItemResponse = domain.Item

func NewUpdateItemHandler(repository Repository, resolver MediaResolver, eventPublisher events.Publisher) *UpdateItemHandler {
	return &UpdateItemHandler{
		repository:     repository,
		resolver:       resolver,
		eventPublisher: eventPublisher,
	}
}

func (e UpdateItemHandler) Handle(ctx context.Context, req *UpdateItemRequest) (*UpdateItemResponse, error) {
	it, err := e.repository.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httperror.BadRequest(
				"item.update.not_found",
				"Item not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"item.update.failed",
			"Failed to get item",
			nil,
		)
	}

	if err := authorizeOwner(it, callerID(ctx)); err != nil {
		return nil, err
	}

	if req.Quantity != nil && !req.Quantity.IsPositive() {
		return nil, httperror.BadRequest(
			"item.update.validation_failed",
			"Quantity must be a positive number",
			nil,
		)
	}
	if req.MealsPerQuantity != nil && !req.MealsPerQuantity.IsPositive() {
		return nil, httperror.BadRequest(
			"item.update.validation_failed",
			"Meals per quantity must be a positive number",
			nil,
		)
	}

	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Location != nil {
		it.Location = *req.Location
	}
	if req.Category != nil {
		it.Category = *req.Category
	}
	if req.Quantity != nil {
		it.Quantity = *req.Quantity
	}
	if req.MealsPerQuantity != nil {
		it.MealsPerQuantity = *req.MealsPerQuantity
	}
	if req.Year != nil {
		it.Year = *req.Year
	}
	if req.Notes != nil {
		it.Notes = *req.Notes
	}

	if req.Image != nil {
		publicID := ""
		if req.ImagePublicID != nil {
			publicID = *req.ImagePublicID
		}

		imageURL, err := e.resolver.Resolve(ctx, media.Classify(*req.Image, publicID))
		switch {
		case err == nil:
			it.ImageURL = imageURL
		case errors.Is(err, media.ErrUnknownReference):
			// Unrecognized reference: the previously stored URL is
			// kept rather than cleared or rejected.
		case errors.Is(err, media.ErrMissingPublicID):
			return nil, httperror.BadRequest(
				"item.update.missing_image_id",
				"Image public id is required to re-process an uploaded picture",
				nil,
			)
		default:
			return nil, httperror.BadGateway(
				"item.update.media_failed",
				"Failed to process item image",
				nil,
			)
		}
	}

	updated, err := e.repository.Update(ctx, it)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httperror.BadRequest(
				"item.update.not_found",
				"Item not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"item.update.update_failed",
			"An error occurred while updating the item",
			nil,
		)
	}

	e.publishEvent(ctx, updated)

	return &updated, nil
}

func (e UpdateItemHandler) publishEvent(ctx context.Context, it domain.Item) {
	if e.eventPublisher == nil {
		return
	}

	eventPayload := events.ItemUpdatedPayload{
		ID:               it.ID,
		Description:      it.Description,
		Category:         it.Category,
		Location:         it.Location,
		Quantity:         it.Quantity,
		MealsPerQuantity: it.MealsPerQuantity,
		Year:             it.Year,
		OwnerID:          it.OwnerID,
		ImageURL:         it.ImageURL,
		UpdatedAt:        time.Now().UTC(),
	}

	headers := events.Headers{
		TraceID:       events.GenerateTraceID(),
		CorrelationID: events.GenerateCorrelationID(),
		Service:       "freezer",
	}

	event := events.NewEvent(
		events.ItemUpdatedEvent,
		events.EventVersionV1,
		eventPayload,
		headers,
	)

	if err := e.eventPublisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish item.updated event",
			zap.String("itemID", it.ID),
			zap.Error(err),
		)
	}
}
