package deals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
)

func TestSourceCollector_Collect(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	catalog.feeds = entity.FeedSet{
		Specials:   []entity.FeedItem{{AppID: 10, DiscountPercent: 60}, {AppID: 20, DiscountPercent: 50}},
		TopSellers: []entity.FeedItem{{AppID: 20, DiscountPercent: 50}, {AppID: 30, DiscountPercent: 40}},
	}
	catalog.featured = []entity.FeedItem{{AppID: 10, DiscountPercent: 60}, {AppID: 40, DiscountPercent: 30}}

	c := NewSourceCollector(catalog, "ru", 100)

	ids := c.Collect(context.Background())
	rq.Equal([]int64{10, 20, 30, 40}, ids, "ids are deduplicated in first-appearance order")
}

func TestSourceCollector_CapsCandidates(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	for i := int64(1); i <= 10; i++ {
		catalog.feeds.Specials = append(catalog.feeds.Specials, entity.FeedItem{AppID: i})
	}

	c := NewSourceCollector(catalog, "ru", 3)

	rq.Equal([]int64{1, 2, 3}, c.Collect(context.Background()))
}

func TestSourceCollector_SurvivesFeedFailures(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := newFakeCatalog()
	catalog.feedsErr = domain.NewError(errcodes.UpstreamStatus, "storefront answered 502 on /featuredcategories")
	catalog.featured = []entity.FeedItem{{AppID: 40, DiscountPercent: 30}}

	c := NewSourceCollector(catalog, "ru", 100)

	rq.Equal([]int64{40}, c.Collect(context.Background()))

	catalog.featErr = domain.NewError(errcodes.NetworkError, "storefront is unreachable")

	rq.Empty(c.Collect(context.Background()), "all feeds down means an empty candidate set, not a panic")
}
