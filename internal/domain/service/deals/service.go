package deals

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

// watchlistSource is the read side of watchlist persistence the scans need.
type watchlistSource interface {
	Subscribers(ctx context.Context) ([]string, error)
	List(ctx context.Context, subscriberID string) ([]entity.WatchlistEntry, error)
}

// minorUnitsPerMajor converts configured thresholds (rubles) into the minor
// units the storefront reports (kopecks).
const minorUnitsPerMajor = 100

// Service runs the deal scans: discovery over the featured feeds, per
// subscriber watchlist checks and the notification poll. Thresholds are
// adjustable at runtime and shared by all scans.
type Service struct {
	resolver   *PriceResolver
	collector  *SourceCollector
	watchlists watchlistSource
	deduper    Deduper

	mu              sync.RWMutex
	minInitialPrice int64 // minor units
	minDiscount     int
}

func NewService(
	resolver *PriceResolver,
	collector *SourceCollector,
	watchlists watchlistSource,
	deduper Deduper,
) *Service {
	return &Service{
		resolver:   resolver,
		collector:  collector,
		watchlists: watchlists,
		deduper:    deduper,
	}
}

// WithThresholds sets the initial thresholds; minOriginalPrice is in major
// currency units, as configured.
func (s *Service) WithThresholds(minOriginalPrice int64, minDiscountPercent int) *Service {
	s.minInitialPrice = minOriginalPrice * minorUnitsPerMajor
	s.minDiscount = minDiscountPercent

	return s
}

// Thresholds reports the current thresholds, price in major units.
func (s *Service) Thresholds() (minOriginalPrice int64, minDiscountPercent int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.minInitialPrice / minorUnitsPerMajor, s.minDiscount
}

func (s *Service) SetMinPrice(minOriginalPrice int64) error {
	if minOriginalPrice < 0 {
		return domain.NewError(errcodes.InvalidThreshold, "minimum price must not be negative")
	}

	s.mu.Lock()
	s.minInitialPrice = minOriginalPrice * minorUnitsPerMajor
	s.mu.Unlock()

	return nil
}

func (s *Service) SetMinDiscount(minDiscountPercent int) error {
	if minDiscountPercent < 0 || minDiscountPercent > 100 {
		return domain.NewError(errcodes.InvalidThreshold, "discount must be between 0 and 100")
	}

	s.mu.Lock()
	s.minDiscount = minDiscountPercent
	s.mu.Unlock()

	return nil
}

// Quote resolves a single app for display.
func (s *Service) Quote(ctx context.Context, appID int64) (*entity.PriceQuote, error) {
	return s.resolver.Resolve(ctx, appID)
}

// ScanFeatured walks the discovery feeds and returns the quotes that clear the
// thresholds, partitioned and sorted by discount. Empty partitions with a nil
// error mean the scan worked and found nothing.
func (s *Service) ScanFeatured(ctx context.Context) (games, dlc []entity.PriceQuote) {
	ids := s.collector.Collect(ctx)
	quotes := s.resolveMany(ctx, ids)

	s.mu.RLock()
	minPrice, minDiscount := s.minInitialPrice, s.minDiscount
	s.mu.RUnlock()

	return Filter(quotes, minPrice, minDiscount)
}

// ScanWatchlist prices one subscriber's tracked apps and returns those whose
// discount clears the threshold, in watchlist order. The price threshold does
// not apply here: the subscriber asked for these apps explicitly.
func (s *Service) ScanWatchlist(ctx context.Context, subscriberID string) ([]entity.PriceQuote, error) {
	entries, err := s.watchlists.List(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("watchlists.List: %w", err)
	}

	s.mu.RLock()
	minDiscount := s.minDiscount
	s.mu.RUnlock()

	deals := make([]entity.PriceQuote, 0, len(entries))

	for _, entry := range entries {
		quote, err := s.resolver.Resolve(ctx, entry.AppID)
		if err != nil {
			s.logResolveFailure(ctx, entry.AppID, err)

			continue
		}

		if quote.Price.DiscountPercent >= minDiscount {
			deals = append(deals, *quote)
		}
	}

	return deals, nil
}

// PollForNotifications walks every subscriber's watchlist and returns the
// deals that clear the discount threshold and were not announced before,
// keyed by subscriber. Subscribers without fresh deals are omitted.
func (s *Service) PollForNotifications(ctx context.Context) (map[string][]entity.PriceQuote, error) {
	subscribers, err := s.watchlists.Subscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("watchlists.Subscribers: %w", err)
	}

	fresh := make(map[string][]entity.PriceQuote)

	for _, subscriberID := range subscribers {
		deals, err := s.ScanWatchlist(ctx, subscriberID)
		if err != nil {
			logger(ctx).Error(
				"watchlist scan failed",
				slog.String(logx.FieldSubscriberID, subscriberID),
				logx.Error(err),
			)

			continue
		}

		for _, deal := range deals {
			notify, err := s.deduper.ShouldNotify(ctx, subscriberID, deal.AppID, deal.Price.DiscountPercent)
			if err != nil {
				logger(ctx).Error("deduper check failed", slog.Int64(logx.FieldAppID, deal.AppID), logx.Error(err))

				continue
			}

			if notify {
				fresh[subscriberID] = append(fresh[subscriberID], deal)
			}
		}
	}

	return fresh, nil
}

func (s *Service) resolveMany(ctx context.Context, ids []int64) []entity.PriceQuote {
	quotes := make([]entity.PriceQuote, 0, len(ids))

	for _, id := range ids {
		quote, err := s.resolver.Resolve(ctx, id)
		if err != nil {
			s.logResolveFailure(ctx, id, err)

			continue
		}

		quotes = append(quotes, *quote)
	}

	return quotes
}

func (s *Service) logResolveFailure(ctx context.Context, appID int64, err error) {
	// Unpriced and unknown apps are routine in feed data; only transport
	// trouble is worth a warning.
	if domain.HasCode(err, errcodes.NoPriceData) || domain.HasCode(err, errcodes.AppNotFound) {
		logger(ctx).Debug("app skipped", slog.Int64(logx.FieldAppID, appID), logx.Error(err))

		return
	}

	logger(ctx).Warn("price resolve failed", slog.Int64(logx.FieldAppID, appID), logx.Error(err))
}
