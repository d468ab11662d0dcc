package item

import (
	"context"

	"freezer/pkg/media"
)

// MediaResolver turns a classified image reference into a stored display URL.
// Satisfied by *media.Resolver; faked in tests.
type MediaResolver interface {
	Resolve(ctx context.Context, ref media.Reference) (string, error)
}
