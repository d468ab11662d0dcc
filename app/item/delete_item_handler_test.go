package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteItemNotFound(t *testing.T) {
	repo := newMemRepository()
	handler := NewDeleteItemHandler(repo, nil)

	_, err := handler.Handle(authedCtx("user-1"), &DeleteItemRequest{ItemID: "missing"})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "Item not found", httpErr.Message)
}

func TestDeleteItemForbiddenForNonOwner(t *testing.T) {
	repo := newMemRepository()
	handler := NewDeleteItemHandler(repo, nil)

	it := seedItem(repo, "user-1")

	_, err := handler.Handle(authedCtx("user-2"), &DeleteItemRequest{ItemID: it.ID})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 401, httpErr.Status)

	_, getErr := repo.GetItem(authedCtx("user-1"), it.ID)
	assert.NoError(t, getErr, "item must survive a forbidden delete")
}

func TestDeleteItemReturnsDeletedID(t *testing.T) {
	repo := newMemRepository()
	handler := NewDeleteItemHandler(repo, nil)

	it := seedItem(repo, "user-1")

	res, err := handler.Handle(authedCtx("user-1"), &DeleteItemRequest{ItemID: it.ID})

	require.NoError(t, err)
	assert.Equal(t, it.ID, res.ID)

	_, getErr := repo.GetItem(authedCtx("user-1"), it.ID)
	assert.ErrorIs(t, getErr, ErrNotFound)
}
