package watchlist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Repository is the persistence surface for subscriber watchlists.
type Repository interface {
	List(ctx context.Context, subscriberID string) ([]entity.WatchlistEntry, error)
	Subscribers(ctx context.Context) ([]string, error)
	Append(ctx context.Context, subscriberID string, entry entity.WatchlistEntry) error
	// Remove reports the removed entry and whether it was present.
	Remove(ctx context.Context, subscriberID string, appID int64) (entity.WatchlistEntry, bool, error)
}

type priceResolver interface {
	Resolve(ctx context.Context, appID int64) (*entity.PriceQuote, error)
}

type nameLookup interface {
	AppName(ctx context.Context, appID int64) (string, error)
}

// AddStatus is the user-visible outcome of an add attempt. An app the
// storefront does not know is a result, not an error.
type AddStatus int

const (
	StatusAdded AddStatus = iota
	StatusAlreadyTracked
	StatusNotFound
)

type AddResult struct {
	Status AddStatus
	Name   string
}

type RemoveResult struct {
	Removed bool
	Name    string
}

// Service manages subscriber watchlists. Mutations are serialized so two
// concurrent adds cannot both read the old list and lose an entry.
type Service struct {
	repo     Repository
	resolver priceResolver
	names    nameLookup

	mu sync.Mutex
}

func NewService(repo Repository, resolver priceResolver, names nameLookup) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		names:    names,
	}
}

// List returns the subscriber's entries in insertion order. An unknown
// subscriber just has an empty list.
func (s *Service) List(ctx context.Context, subscriberID string) ([]entity.WatchlistEntry, error) {
	entries, err := s.repo.List(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return entries, nil
}

// Subscribers returns every subscriber with at least one entry.
func (s *Service) Subscribers(ctx context.Context) ([]string, error) {
	subs, err := s.repo.Subscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Subscribers: %w", err)
	}

	return subs, nil
}

// Add tracks an app for a subscriber. The display name is resolved against
// the storefront; an app with no price in the primary region is still added
// under its neutral-region name. Only an app the storefront does not know at
// all yields StatusNotFound.
func (s *Service) Add(ctx context.Context, subscriberID string, appID int64) (AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.List(ctx, subscriberID)
	if err != nil {
		return AddResult{}, fmt.Errorf("repo.List: %w", err)
	}

	for _, entry := range entries {
		if entry.AppID == appID {
			return AddResult{Status: StatusAlreadyTracked, Name: entry.Name}, nil
		}
	}

	name, ok := s.lookupName(ctx, appID)
	if !ok {
		return AddResult{Status: StatusNotFound}, nil
	}

	entry := entity.WatchlistEntry{AppID: appID, Name: name}
	if err = s.repo.Append(ctx, subscriberID, entry); err != nil {
		return AddResult{}, fmt.Errorf("repo.Append: %w", err)
	}

	logger(ctx).Info(
		"watchlist entry added",
		slog.String(logx.FieldSubscriberID, subscriberID),
		slog.Int64(logx.FieldAppID, appID),
	)

	return AddResult{Status: StatusAdded, Name: name}, nil
}

// Remove untracks an app. Removing an absent app is a no-op result.
func (s *Service) Remove(ctx context.Context, subscriberID string, appID int64) (RemoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, removed, err := s.repo.Remove(ctx, subscriberID, appID)
	if err != nil {
		return RemoveResult{}, fmt.Errorf("repo.Remove: %w", err)
	}

	if removed {
		logger(ctx).Info(
			"watchlist entry removed",
			slog.String(logx.FieldSubscriberID, subscriberID),
			slog.Int64(logx.FieldAppID, appID),
		)
	}

	return RemoveResult{Removed: removed, Name: entry.Name}, nil
}

func (s *Service) lookupName(ctx context.Context, appID int64) (string, bool) {
	quote, err := s.resolver.Resolve(ctx, appID)
	if err == nil {
		return quote.Name, true
	}

	// No price in the tracked region does not mean the app is gone; try the
	// neutral region for at least a display name.
	name, err := s.names.AppName(ctx, appID)
	if err != nil {
		logger(ctx).Debug("name lookup failed", slog.Int64(logx.FieldAppID, appID), logx.Error(err))

		return "", false
	}

	return name, true
}
