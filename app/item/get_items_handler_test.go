package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetItemsScopedToCaller(t *testing.T) {
	repo := newMemRepository()
	handler := NewGetItemsHandler(repo)

	seedItem(repo, "user-1")
	seedItem(repo, "user-1")
	seedItem(repo, "user-2")

	res, err := handler.Handle(authedCtx("user-1"), &GetItemsRequest{})

	require.NoError(t, err)
	require.Len(t, *res, 2)
	for _, it := range *res {
		assert.Equal(t, "user-1", it.OwnerID)
	}
}

func TestGetItemsEmptyForNewUser(t *testing.T) {
	repo := newMemRepository()
	handler := NewGetItemsHandler(repo)

	seedItem(repo, "user-1")

	res, err := handler.Handle(authedCtx("user-3"), &GetItemsRequest{})

	require.NoError(t, err)
	assert.Empty(t, *res)
}

func TestGetItemsUnresolvedCaller(t *testing.T) {
	repo := newMemRepository()
	handler := NewGetItemsHandler(repo)

	_, err := handler.Handle(context.Background(), &GetItemsRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 401, httpErr.Status)
}
