package item

import (
	"context"
	"errors"
	"testing"

	"freezer/pkg/httperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCreateRequest() *CreateItemRequest {
	return &CreateItemRequest{
		Description:      "Chicken Thigh",
		Location:         "boathouse",
		Category:         "meat",
		Quantity:         dec("3"),
		MealsPerQuantity: dec("2"),
		Year:             2023,
		Image:            inlineDataURI,
	}
}

func asHTTPError(t *testing.T, err error) *httperror.Error {
	t.Helper()
	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr), "expected *httperror.Error, got %v", err)
	return httpErr
}

func TestCreateItemStampsOwnerFromCaller(t *testing.T) {
	repo := newMemRepository()
	resolver, service := newFakeResolver()
	handler := NewCreateItemHandler(repo, resolver, nil)

	created, err := handler.Handle(authedCtx("user-1"), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "user-1", created.OwnerID)
	assert.Equal(t, "chicken thigh", created.Description)
	assert.Equal(t, transformedURL, created.ImageURL)
	assert.Equal(t, 1, service.uploadCalls)
	assert.NotEmpty(t, created.ID)
}

func TestCreateItemReportsFirstMissingField(t *testing.T) {
	repo := newMemRepository()
	resolver, _ := newFakeResolver()
	handler := NewCreateItemHandler(repo, resolver, nil)

	req := validCreateRequest()
	req.Description = ""
	req.Location = ""

	_, err := handler.Handle(authedCtx("user-1"), req)

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "Please add a description field (eg. chicken thigh)", httpErr.Message)
}

func TestCreateItemRequiresPicture(t *testing.T) {
	repo := newMemRepository()
	resolver, _ := newFakeResolver()
	handler := NewCreateItemHandler(repo, resolver, nil)

	req := validCreateRequest()
	req.Image = ""

	_, err := handler.Handle(authedCtx("user-1"), req)

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "Please add a picture", httpErr.Message)
}

func TestCreateItemRejectsUnrecognizedImageReference(t *testing.T) {
	repo := newMemRepository()
	resolver, _ := newFakeResolver()
	handler := NewCreateItemHandler(repo, resolver, nil)

	req := validCreateRequest()
	req.Image = "https://example.com/not-hosted-here.jpg"

	_, err := handler.Handle(authedCtx("user-1"), req)

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Empty(t, repo.items)
}

func TestCreateItemRejectsNonPositiveQuantity(t *testing.T) {
	repo := newMemRepository()
	resolver, _ := newFakeResolver()
	handler := NewCreateItemHandler(repo, resolver, nil)

	req := validCreateRequest()
	req.Quantity = dec("-1")

	_, err := handler.Handle(authedCtx("user-1"), req)

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "Quantity must be a positive number", httpErr.Message)
}

func TestCreateItemUnresolvedCaller(t *testing.T) {
	repo := newMemRepository()
	resolver, _ := newFakeResolver()
	handler := NewCreateItemHandler(repo, resolver, nil)

	_, err := handler.Handle(context.Background(), validCreateRequest())

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 401, httpErr.Status)
	assert.Empty(t, repo.items)
}

func TestCreateItemMediaFailure(t *testing.T) {
	repo := newMemRepository()
	resolver, service := newFakeResolver()
	service.err = errors.New("media service down")
	handler := NewCreateItemHandler(repo, resolver, nil)

	_, err := handler.Handle(authedCtx("user-1"), validCreateRequest())

	httpErr := asHTTPError(t, err)
	assert.Equal(t, 502, httpErr.Status)
	assert.Empty(t, repo.items)
}
