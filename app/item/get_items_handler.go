package item

import (
	"context"

	"freezer/domain"
	"freezer/pkg/httperror"
)

type GetItemsHandler struct {
	repository Repository
}

func NewGetItemsHandler(repository Repository) *GetItemsHandler {
	return &GetItemsHandler{
		repository: repository,
	}
}

type GetItemsRequest struct {
}

type GetItemsResponse = []domain.Item

// Handle lists the caller's items. Scoping happens in the query itself, so
// another user's items are never loaded, let alone filtered out.
func (h GetItemsHandler) Handle(ctx context.Context, _ *GetItemsRequest) (*GetItemsResponse, error) {
	userID := callerID(ctx)
	if userID == "" {
		return nil, httperror.Unauthorized(
			"item.index.caller_unresolved",
			"User not found",
			nil,
		)
	}

	items, err := h.repository.GetItemsByOwner(ctx, userID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"item.index.failed",
			"Failed to retrieve items",
			nil,
		)
	}

	res := GetItemsResponse(items)
	return &res, nil
}
