package deals

import (
	"context"
	"log/slog"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

// feedClient is the storefront surface the collector needs.
type feedClient interface {
	FeaturedCategories(ctx context.Context, region string) (entity.FeedSet, error)
	Featured(ctx context.Context, region string) ([]entity.FeedItem, error)
}

// SourceCollector gathers candidate app ids from the discovery feeds.
// Feeds fail independently: a broken feed is logged and skipped, the scan
// continues with whatever the remaining feeds produced.
type SourceCollector struct {
	catalog feedClient
	region  string
	maxApps int
}

func NewSourceCollector(catalog feedClient, region string, maxApps int) *SourceCollector {
	return &SourceCollector{
		catalog: catalog,
		region:  region,
		maxApps: maxApps,
	}
}

// Collect returns deduplicated candidate ids, capped at maxApps. Ids keep the
// order of first appearance across the feeds.
func (c *SourceCollector) Collect(ctx context.Context) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0, c.maxApps)

	add := func(items []entity.FeedItem) {
		for _, item := range items {
			if len(ids) >= c.maxApps {
				return
			}

			if _, ok := seen[item.AppID]; ok {
				continue
			}

			seen[item.AppID] = struct{}{}
			ids = append(ids, item.AppID)
		}
	}

	set, err := c.catalog.FeaturedCategories(ctx, c.region)
	if err != nil {
		logger(ctx).Warn("featured categories feed failed", logx.Error(err))
	} else {
		add(set.Specials)
		add(set.TopSellers)
	}

	featured, err := c.catalog.Featured(ctx, c.region)
	if err != nil {
		logger(ctx).Warn("featured feed failed", logx.Error(err))
	} else {
		add(featured)
	}

	logger(ctx).Debug("collected scan candidates", slog.Int("count", len(ids)))

	return ids
}
