package app

import (
	"context"

	"freezer/pkg/httperror"
	"freezer/pkg/media"
)

// GetLibraryHandler lists the media-service assets stored under the item
// image folder. Browsing is read-only and sits outside the item CRUD core.
type GetLibraryHandler struct {
	service media.Service
}

func NewGetLibraryHandler(service media.Service) *GetLibraryHandler {
	return &GetLibraryHandler{
		service: service,
	}
}

type GetLibraryRequest struct {
}

type GetLibraryResponse struct {
	Resources []media.Asset `json:"resources"`
}

func (h GetLibraryHandler) Handle(ctx context.Context, _ *GetLibraryRequest) (*GetLibraryResponse, error) {
	assets, err := h.service.Browse(ctx)
	if err != nil {
		return nil, httperror.BadGateway(
			"library.index.failed",
			"Failed to browse the image library",
			nil,
		)
	}

	return &GetLibraryResponse{
		Resources: assets,
	}, nil
}
