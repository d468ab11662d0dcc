package app

import (
	"context"
	"errors"
	"testing"

	"freezer/pkg/httperror"
	"freezer/pkg/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMediaService struct {
	assets []media.Asset
	err    error
}

func (f *fakeMediaService) Upload(_ context.Context, _ string) (media.Asset, error) {
	return media.Asset{}, f.err
}

func (f *fakeMediaService) Transform(_ context.Context, _ string) (media.Asset, error) {
	return media.Asset{}, f.err
}

func (f *fakeMediaService) Browse(_ context.Context) ([]media.Asset, error) {
	return f.assets, f.err
}

func TestGetLibraryListsFolderAssets(t *testing.T) {
	service := &fakeMediaService{assets: []media.Asset{
		{PublicID: "freezer-inventory/abc", URL: "https://res.cloudinary.com/demo/image/upload/v1/freezer-inventory/abc.webp"},
	}}
	handler := NewGetLibraryHandler(service)

	res, err := handler.Handle(context.Background(), &GetLibraryRequest{})

	require.NoError(t, err)
	require.Len(t, res.Resources, 1)
	assert.Equal(t, "freezer-inventory/abc", res.Resources[0].PublicID)
}

func TestGetLibraryUpstreamFailure(t *testing.T) {
	service := &fakeMediaService{err: errors.New("search unavailable")}
	handler := NewGetLibraryHandler(service)

	_, err := handler.Handle(context.Background(), &GetLibraryRequest{})

	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 502, httpErr.Status)
}
