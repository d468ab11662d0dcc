package media

import "context"

// Asset is a stored media-service asset.
type Asset struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// Service is the slice of the media service's API this application consumes.
type Service interface {
	// Upload stores inline-encoded bytes (a data URI) under Folder and
	// eagerly produces the display rendition. The returned Asset's URL is
	// the transformed rendition, never the raw upload.
	Upload(ctx context.Context, file string) (Asset, error)

	// Transform requests the display rendition for an already uploaded
	// asset identified by its public id.
	Transform(ctx context.Context, publicID string) (Asset, error)

	// Browse lists the assets stored under Folder.
	Browse(ctx context.Context) ([]Asset, error)
}
