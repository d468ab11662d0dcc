package item

import (
	"context"
	"errors"
	"strings"

	"freezer/domain"
	"freezer/pkg/events"
	"freezer/pkg/httperror"
	"freezer/pkg/media"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateItemHandler struct {
	repository     Repository
	resolver       MediaResolver
	eventPublisher events.Publisher
}

// CreateItemRequest fields are declared in validation order: the first
// missing field is the one reported back.
type CreateItemRequest struct {
	Description      string           `json:"description" validate:"required"`
	Location         string           `json:"location" validate:"required"`
	Category         string           `json:"category" validate:"required"`
	Quantity         *decimal.Decimal `json:"quantity" validate:"required"`
	MealsPerQuantity *decimal.Decimal `json:"mealsPerQuantity" validate:"required"`
	Year             int              `json:"year" validate:"required"`
	Image            string           `json:"imageRef" validate:"required"`
	ImagePublicID    string           `json:"imagePublicId"`
	Notes            string           `json:"notes"`
}

type CreateItemResponse = domain.Item

// requiredFieldMessages mirrors the messages the frontend expects per field.
var requiredFieldMessages = map[string]string{
	"Description":      "Please add a description field (eg. chicken thigh)",
	"Location":         "Please specify freezer location (boathouse or downstairs)",
	"Category":         "Please specify category (eg. meat, vegetable, fruit, mushroom)",
	"Quantity":         "Please specify the quantity",
	"MealsPerQuantity": "Please specify the meals per quantity",
	"Year":             "Please specify the year of harvest",
	"Image":            "Please add a picture",
}

func NewCreateItemHandler(repository Repository, resolver MediaResolver, eventPublisher events.Publisher) *CreateItemHandler {
	return &CreateItemHandler{
		repository:     repository,
		resolver:       resolver,
		eventPublisher: eventPublisher,
	}
}

func (e CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			message, known := requiredFieldMessages[ve[0].StructField()]
			if !known {
				message = "Validation failed for the request"
			}
			return nil, httperror.BadRequest(
				"item.create.validation_failed",
				message,
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"item.create.validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}

	if !req.Quantity.IsPositive() {
		return nil, httperror.BadRequest(
			"item.create.validation_failed",
			"Quantity must be a positive number",
			nil,
		)
	}
	if !req.MealsPerQuantity.IsPositive() {
		return nil, httperror.BadRequest(
			"item.create.validation_failed",
			"Meals per quantity must be a positive number",
			nil,
		)
	}

	userID := callerID(ctx)
	if userID == "" {
		return nil, httperror.Unauthorized(
			"item.create.caller_unresolved",
			"User not found",
			nil,
		)
	}

	ref := media.Classify(req.Image, req.ImagePublicID)
	imageURL, err := e.resolver.Resolve(ctx, ref)
	if err != nil {
		if errors.Is(err, media.ErrUnknownReference) {
			return nil, httperror.BadRequest(
				"item.create.invalid_image",
				"Please add a picture",
				nil,
			)
		}
		if errors.Is(err, media.ErrMissingPublicID) {
			return nil, httperror.BadRequest(
				"item.create.missing_image_id",
				"Image public id is required to re-process an uploaded picture",
				nil,
			)
		}

		return nil, httperror.BadGateway(
			"item.create.media_failed",
			"Failed to process item image",
			nil,
		)
	}

	created, err := e.repository.Create(ctx, domain.Item{
		Description:      strings.ToLower(req.Description),
		Category:         req.Category,
		Location:         req.Location,
		Quantity:         *req.Quantity,
		MealsPerQuantity: *req.MealsPerQuantity,
		Year:             req.Year,
		Notes:            req.Notes,
		OwnerID:          userID,
		ImageURL:         imageURL,
	})
	if err != nil {
		return nil, httperror.InternalServerError(
			"item.create.create_failed",
			"An error occurred while creating the item",
			nil,
		)
	}

	e.publishEvent(ctx, created)

	return &created, nil
}

func (e CreateItemHandler) publishEvent(ctx context.Context, it domain.Item) {
	if e.eventPublisher == nil {
		return
	}

	eventPayload := events.ItemCreatedPayload{
		ID:               it.ID,
		Description:      it.Description,
		Category:         it.Category,
		Location:         it.Location,
		Quantity:         it.Quantity,
		MealsPerQuantity: it.MealsPerQuantity,
		Year:             it.Year,
		OwnerID:          it.OwnerID,
		ImageURL:         it.ImageURL,
		CreatedAt:        it.CreatedAt,
	}

	headers := events.Headers{
		TraceID:       events.GenerateTraceID(),
		CorrelationID: events.GenerateCorrelationID(),
		Service:       "freezer",
	}

	event := events.NewEvent(
		events.ItemCreatedEvent,
		events.EventVersionV1,
		eventPayload,
		headers,
	)

	if err := e.eventPublisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish item.created event",
			zap.String("itemID", it.ID),
			zap.Error(err),
		)
	}
}
