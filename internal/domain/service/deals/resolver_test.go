package deals

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/internal/config"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
)

// fakeCatalog serves canned storefront answers, keyed by "appID/region".
type fakeCatalog struct {
	mu       sync.Mutex
	details  map[string]*entity.AppDetails
	errs     map[string]error
	calls    map[string]int
	feeds    entity.FeedSet
	feedsErr error
	featured []entity.FeedItem
	featErr  error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		details: make(map[string]*entity.AppDetails),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (f *fakeCatalog) addPriced(appID int64, region, name string, kind entity.ContentKind, initial, final int64, discount int) {
	f.details[fmt.Sprintf("%d/%s", appID, region)] = &entity.AppDetails{
		AppID: appID,
		Name:  name,
		Kind:  kind,
		URL:   fmt.Sprintf("https://store.steampowered.com/app/%d/", appID),
		Price: &entity.RegionPrice{
			Currency:        "RUB",
			Initial:         initial,
			Final:           final,
			DiscountPercent: discount,
		},
	}
}

func (f *fakeCatalog) addUnpriced(appID int64, region, name string) {
	f.details[fmt.Sprintf("%d/%s", appID, region)] = &entity.AppDetails{
		AppID: appID,
		Name:  name,
		Kind:  entity.KindGame,
	}
}

func (f *fakeCatalog) AppDetails(_ context.Context, appID int64, region string) (*entity.AppDetails, error) {
	key := fmt.Sprintf("%d/%s", appID, region)

	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()

	if err, ok := f.errs[key]; ok {
		return nil, err
	}

	if details, ok := f.details[key]; ok {
		return details, nil
	}

	return nil, domain.NewError(errcodes.AppNotFound, fmt.Sprintf("app %d is not known to the storefront", appID))
}

func (f *fakeCatalog) FeaturedCategories(context.Context, string) (entity.FeedSet, error) {
	if f.feedsErr != nil {
		return entity.FeedSet{}, f.feedsErr
	}

	return f.feeds, nil
}

func (f *fakeCatalog) Featured(context.Context, string) ([]entity.FeedItem, error) {
	if f.featErr != nil {
		return nil, f.featErr
	}

	return f.featured, nil
}

func (f *fakeCatalog) callCount(appID int64, region string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[fmt.Sprintf("%d/%s", appID, region)]
}

func testSteamConfig() config.Steam {
	return config.Steam{
		PrimaryRegion:   "ru",
		SecondaryRegion: "ua",
		PriceMarkup:     1.10,
		QuoteCacheTTL:   time.Minute,
	}
}

func TestPriceResolver_Resolve(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	catalog.addPriced(10, "ru", "Portal 2", entity.KindGame, 100000, 40000, 60)
	catalog.addPriced(10, "ua", "Portal 2", entity.KindGame, 50000, 20000, 60)

	r := NewPriceResolver(catalog, testSteamConfig())

	got, err := r.Resolve(context.Background(), 10)
	rq.NoError(err)
	rq.Equal("Portal 2", got.Name)
	rq.Equal(int64(100000), got.Price.Initial)
	rq.Equal(60, got.Price.DiscountPercent)

	rq.NotNil(got.AltPrice)
	rq.Equal(int64(55000), got.AltPrice.Initial, "secondary amounts carry the markup")
	rq.Equal(int64(22000), got.AltPrice.Final)
}

func TestPriceResolver_SecondaryFailureIsSoft(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	catalog.addPriced(10, "ru", "Portal 2", entity.KindGame, 100000, 40000, 60)
	catalog.errs["10/ua"] = domain.NewError(errcodes.NetworkError, "storefront is unreachable")

	r := NewPriceResolver(catalog, testSteamConfig())

	got, err := r.Resolve(context.Background(), 10)
	rq.NoError(err, "a broken secondary region must not fail the resolve")
	rq.Nil(got.AltPrice)
	rq.Equal(int64(100000), got.Price.Initial)
}

func TestPriceResolver_PrimaryFailureIsHard(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	catalog.errs["10/ru"] = domain.NewError(errcodes.NetworkError, "storefront is unreachable")
	catalog.addPriced(10, "ua", "Portal 2", entity.KindGame, 50000, 20000, 60)

	r := NewPriceResolver(catalog, testSteamConfig())

	_, err := r.Resolve(context.Background(), 10)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.NetworkError))
}

func TestPriceResolver_NoPriceData(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	catalog.addUnpriced(10, "ru", "Free Game")

	r := NewPriceResolver(catalog, testSteamConfig())

	_, err := r.Resolve(context.Background(), 10)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.NoPriceData))

	// The negative answer is memoized.
	_, err = r.Resolve(context.Background(), 10)
	rq.True(domain.HasCode(err, errcodes.NoPriceData))
	rq.Equal(1, catalog.callCount(10, "ru"))
}

func TestPriceResolver_MemoizesQuotes(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	catalog.addPriced(10, "ru", "Portal 2", entity.KindGame, 100000, 40000, 60)
	catalog.addPriced(10, "ua", "Portal 2", entity.KindGame, 50000, 20000, 60)

	r := NewPriceResolver(catalog, testSteamConfig())

	_, err := r.Resolve(context.Background(), 10)
	rq.NoError(err)
	_, err = r.Resolve(context.Background(), 10)
	rq.NoError(err)

	rq.Equal(1, catalog.callCount(10, "ru"))
	rq.Equal(1, catalog.callCount(10, "ua"))

	r.Flush()

	_, err = r.Resolve(context.Background(), 10)
	rq.NoError(err)
	rq.Equal(2, catalog.callCount(10, "ru"))
}
