package watchlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
)

type memoryRepo struct {
	lists map[string][]entity.WatchlistEntry
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{lists: make(map[string][]entity.WatchlistEntry)}
}

func (m *memoryRepo) List(_ context.Context, subscriberID string) ([]entity.WatchlistEntry, error) {
	return m.lists[subscriberID], nil
}

func (m *memoryRepo) Subscribers(context.Context) ([]string, error) {
	subs := make([]string, 0, len(m.lists))
	for id := range m.lists {
		subs = append(subs, id)
	}

	return subs, nil
}

func (m *memoryRepo) Append(_ context.Context, subscriberID string, entry entity.WatchlistEntry) error {
	m.lists[subscriberID] = append(m.lists[subscriberID], entry)

	return nil
}

func (m *memoryRepo) Remove(_ context.Context, subscriberID string, appID int64) (entity.WatchlistEntry, bool, error) {
	entries := m.lists[subscriberID]
	for i, entry := range entries {
		if entry.AppID == appID {
			m.lists[subscriberID] = append(entries[:i:i], entries[i+1:]...)

			return entry, true, nil
		}
	}

	return entity.WatchlistEntry{}, false, nil
}

type fakeResolver struct {
	quotes map[int64]*entity.PriceQuote
	names  map[int64]string
}

func (f *fakeResolver) Resolve(_ context.Context, appID int64) (*entity.PriceQuote, error) {
	if quote, ok := f.quotes[appID]; ok {
		return quote, nil
	}

	if _, ok := f.names[appID]; ok {
		return nil, domain.NewError(errcodes.NoPriceData, "no price in region")
	}

	return nil, domain.NewError(errcodes.AppNotFound, "unknown app")
}

func (f *fakeResolver) AppName(_ context.Context, appID int64) (string, error) {
	if name, ok := f.names[appID]; ok {
		return name, nil
	}

	return "", domain.NewError(errcodes.AppNotFound, "unknown app")
}

func newTestService(repo *memoryRepo) *Service {
	resolver := &fakeResolver{
		quotes: map[int64]*entity.PriceQuote{
			10: {AppID: 10, Name: "Portal 2", Kind: entity.KindGame},
		},
		names: map[int64]string{
			20: "Unpriced Game",
		},
	}

	return NewService(repo, resolver, resolver)
}

func TestService_Add(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)

	res, err := svc.Add(ctx, "100", 10)
	rq.NoError(err)
	rq.Equal(StatusAdded, res.Status)
	rq.Equal("Portal 2", res.Name)

	res, err = svc.Add(ctx, "100", 10)
	rq.NoError(err)
	rq.Equal(StatusAlreadyTracked, res.Status)
	rq.Equal("Portal 2", res.Name)

	entries, err := svc.List(ctx, "100")
	rq.NoError(err)
	rq.Equal([]entity.WatchlistEntry{{AppID: 10, Name: "Portal 2"}}, entries)
}

func TestService_Add_NameFallback(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	ctx := context.Background()
	svc := newTestService(newMemoryRepo())

	// App 20 has no price in the tracked region but exists on the storefront.
	res, err := svc.Add(ctx, "100", 20)
	rq.NoError(err)
	rq.Equal(StatusAdded, res.Status)
	rq.Equal("Unpriced Game", res.Name)
}

func TestService_Add_UnknownApp(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)

	res, err := svc.Add(ctx, "100", 999)
	rq.NoError(err, "an unknown app is a result, not an error")
	rq.Equal(StatusNotFound, res.Status)
	rq.Empty(repo.lists["100"])
}

func TestService_Remove(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	ctx := context.Background()
	svc := newTestService(newMemoryRepo())

	_, err := svc.Add(ctx, "100", 10)
	rq.NoError(err)

	res, err := svc.Remove(ctx, "100", 10)
	rq.NoError(err)
	rq.True(res.Removed)
	rq.Equal("Portal 2", res.Name)

	res, err = svc.Remove(ctx, "100", 10)
	rq.NoError(err)
	rq.False(res.Removed, "removing an absent app is a no-op")
}

func TestService_ListUnknownSubscriber(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	svc := newTestService(newMemoryRepo())

	entries, err := svc.List(context.Background(), "nobody")
	rq.NoError(err)
	rq.Empty(entries)
}
