package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService implements Service against the Cloudinary API.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure media service: %w", err)
	}

	return &CloudinaryService{cld: cld}, nil
}

func (s *CloudinaryService) Upload(ctx context.Context, file string) (Asset, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: Folder,
		Eager:  eagerTransformation,
	})
	if err != nil {
		return Asset{}, fmt.Errorf("media upload failed: %w", err)
	}

	if len(res.Eager) == 0 {
		return Asset{}, fmt.Errorf("media upload response carries no eager rendition")
	}

	return Asset{PublicID: res.PublicID, URL: res.Eager[0].SecureURL}, nil
}

func (s *CloudinaryService) Transform(ctx context.Context, publicID string) (Asset, error) {
	res, err := s.cld.Upload.Explicit(ctx, uploader.ExplicitParams{
		PublicID: publicID,
		Type:     "upload",
		Eager:    eagerTransformation,
	})
	if err != nil {
		return Asset{}, fmt.Errorf("media transformation failed: %w", err)
	}

	if len(res.Eager) == 0 {
		return Asset{}, fmt.Errorf("media transformation response carries no eager rendition")
	}

	return Asset{PublicID: res.PublicID, URL: res.Eager[0].SecureURL}, nil
}

func (s *CloudinaryService) Browse(ctx context.Context) ([]Asset, error) {
	res, err := s.cld.Admin.Search(ctx, search.Query{
		Expression: fmt.Sprintf("folder:%s", Folder),
		MaxResults: 100,
	})
	if err != nil {
		return nil, fmt.Errorf("media search failed: %w", err)
	}

	assets := make([]Asset, 0, len(res.Assets))
	for _, a := range res.Assets {
		assets = append(assets, Asset{PublicID: a.PublicID, URL: a.SecureURL})
	}

	return assets, nil
}
