package item

import (
	"context"
	"fmt"
	"time"

	"freezer/domain"
	"freezer/pkg/media"
)

const (
	transformedURL = "https://res.cloudinary.com/demo/image/upload/w_250,ar_1.0,c_fill,g_food,f_webp,q_90/v1/freezer-inventory/abc.webp"
	rawRemoteURL   = "https://res.cloudinary.com/demo/image/upload/v1/freezer-inventory/abc.jpg"
	inlineDataURI  = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="
)

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), "UserID", userID)
}

// memRepository is an in-memory Repository for handler tests.
type memRepository struct {
	items map[string]domain.Item
	seq   int
	err   error
}

func newMemRepository() *memRepository {
	return &memRepository{items: map[string]domain.Item{}}
}

func (m *memRepository) Close() error { return nil }

func (m *memRepository) GetItemsByOwner(_ context.Context, ownerID string) ([]domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	items := make([]domain.Item, 0)
	for _, it := range m.items {
		if it.OwnerID == ownerID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (m *memRepository) GetItem(_ context.Context, id string) (domain.Item, error) {
	if m.err != nil {
		return domain.Item{}, m.err
	}
	it, ok := m.items[id]
	if !ok {
		return domain.Item{}, ErrNotFound
	}
	return it, nil
}

func (m *memRepository) Create(_ context.Context, it domain.Item) (domain.Item, error) {
	if m.err != nil {
		return domain.Item{}, m.err
	}
	m.seq++
	it.ID = fmt.Sprintf("item-%d", m.seq)
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	m.items[it.ID] = it
	return it, nil
}

func (m *memRepository) Update(_ context.Context, it domain.Item) (domain.Item, error) {
	if m.err != nil {
		return domain.Item{}, m.err
	}
	if _, ok := m.items[it.ID]; !ok {
		return domain.Item{}, ErrNotFound
	}
	it.UpdatedAt = time.Now().UTC()
	m.items[it.ID] = it
	return it, nil
}

func (m *memRepository) DeleteItem(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// fakeMediaService backs a real media.Resolver so handler tests exercise the
// actual resolution policy without network calls.
type fakeMediaService struct {
	uploadCalls    int
	transformCalls int
	asset          media.Asset
	err            error
}

func (f *fakeMediaService) Upload(_ context.Context, _ string) (media.Asset, error) {
	f.uploadCalls++
	return f.asset, f.err
}

func (f *fakeMediaService) Transform(_ context.Context, _ string) (media.Asset, error) {
	f.transformCalls++
	return f.asset, f.err
}

func (f *fakeMediaService) Browse(_ context.Context) ([]media.Asset, error) {
	return []media.Asset{f.asset}, f.err
}

func newFakeResolver() (*media.Resolver, *fakeMediaService) {
	service := &fakeMediaService{asset: media.Asset{PublicID: "freezer-inventory/abc", URL: transformedURL}}
	return media.NewResolver(service), service
}
