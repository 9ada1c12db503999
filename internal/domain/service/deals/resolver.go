package deals

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/TimohUSik/SkidkiSteamBot/internal/config"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

// detailsClient is the storefront surface the resolver needs.
type detailsClient interface {
	AppDetails(ctx context.Context, appID int64, region string) (*entity.AppDetails, error)
}

// PriceResolver merges primary- and secondary-region prices into one quote.
// The primary region is authoritative: its failure fails the resolve, while a
// broken secondary lookup only drops the alternative price from the quote.
// Quotes are memoized so one scan cycle hits the storefront once per app.
type PriceResolver struct {
	catalog         detailsClient
	primaryRegion   string
	secondaryRegion string
	markup          float64
	quotes          *cache.Cache
}

func NewPriceResolver(catalog detailsClient, cfg config.Steam) *PriceResolver {
	return &PriceResolver{
		catalog:         catalog,
		primaryRegion:   cfg.PrimaryRegion,
		secondaryRegion: cfg.SecondaryRegion,
		markup:          cfg.PriceMarkup,
		quotes:          cache.New(cfg.QuoteCacheTTL, 2*cfg.QuoteCacheTTL),
	}
}

// Resolve returns the merged quote for an app, or an error carrying
// errcodes.NoPriceData / errcodes.AppNotFound when the app cannot be priced in
// the primary region. Definitive negative answers are memoized too.
func (r *PriceResolver) Resolve(ctx context.Context, appID int64) (*entity.PriceQuote, error) {
	key := strconv.FormatInt(appID, 10)

	if v, ok := r.quotes.Get(key); ok {
		switch cached := v.(type) {
		case *entity.PriceQuote:
			return cached, nil
		case error:
			return nil, cached
		}
	}

	details, err := r.catalog.AppDetails(ctx, appID, r.primaryRegion)
	if err != nil {
		if domain.HasCode(err, errcodes.AppNotFound) {
			r.quotes.SetDefault(key, err)
		}

		return nil, err
	}

	if details.Price == nil {
		err = domain.NewError(errcodes.NoPriceData, fmt.Sprintf("app %d has no price in region %s", appID, r.primaryRegion))
		r.quotes.SetDefault(key, err)

		return nil, err
	}

	quote := &entity.PriceQuote{
		AppID: appID,
		Name:  details.Name,
		Kind:  details.Kind,
		URL:   details.URL,
		Price: *details.Price,
	}
	quote.AltPrice = r.resolveAlt(ctx, appID)

	r.quotes.SetDefault(key, quote)

	return quote, nil
}

// Flush drops all memoized quotes; thresholds changed or a fresh scan wants
// current prices.
func (r *PriceResolver) Flush() {
	r.quotes.Flush()
}

func (r *PriceResolver) resolveAlt(ctx context.Context, appID int64) *entity.RegionPrice {
	if r.secondaryRegion == "" || r.secondaryRegion == r.primaryRegion {
		return nil
	}

	details, err := r.catalog.AppDetails(ctx, appID, r.secondaryRegion)
	if err != nil {
		logger(ctx).Debug(
			"secondary region lookup failed",
			slog.Int64(logx.FieldAppID, appID),
			slog.String(logx.FieldRegion, r.secondaryRegion),
			logx.Error(err),
		)

		return nil
	}

	if details.Price == nil {
		return nil
	}

	alt := *details.Price
	alt.Initial = applyMarkup(alt.Initial, r.markup)
	alt.Final = applyMarkup(alt.Final, r.markup)

	return &alt
}

func applyMarkup(amount int64, markup float64) int64 {
	return int64(math.Round(float64(amount) * markup))
}
