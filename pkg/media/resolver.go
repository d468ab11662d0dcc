package media

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMissingPublicID is returned when an untransformed remote asset is
	// referenced without the public id needed to request its rendition.
	ErrMissingPublicID = errors.New("media: asset public id is required")

	// ErrUnknownReference is returned when a reference matches none of the
	// known patterns. Callers decide the policy: create rejects, update
	// keeps the previously stored URL.
	ErrUnknownReference = errors.New("media: unrecognized image reference")
)

// Resolver turns a classified image reference into a display-ready URL.
type Resolver struct {
	service Service
}

func NewResolver(service Service) *Resolver {
	return &Resolver{service: service}
}

// Resolve produces the stored image URL for a reference. An asset already
// in transformed form is returned unchanged with no upstream call; the
// check costs a string comparison, so the common re-save path never hits
// the network.
func (r *Resolver) Resolve(ctx context.Context, ref Reference) (string, error) {
	switch ref.Kind {
	case KindRemoteTransformed:
		return ref.Raw, nil

	case KindRemote:
		if ref.PublicID == "" {
			return "", ErrMissingPublicID
		}
		asset, err := r.service.Transform(ctx, ref.PublicID)
		if err != nil {
			return "", fmt.Errorf("resolve remote asset %q: %w", ref.PublicID, err)
		}
		return asset.URL, nil

	case KindInline:
		asset, err := r.service.Upload(ctx, ref.Raw)
		if err != nil {
			return "", fmt.Errorf("resolve inline image: %w", err)
		}
		return asset.URL, nil

	default:
		return "", ErrUnknownReference
	}
}
