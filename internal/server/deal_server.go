package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/watchlist"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/httpx/reply"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/httpx/req"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/lox"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/rest"
)

type dealService interface {
	ScanFeatured(ctx context.Context) (games, dlc []entity.PriceQuote)
}

type watchlistService interface {
	List(ctx context.Context, subscriberID string) ([]entity.WatchlistEntry, error)
	Add(ctx context.Context, subscriberID string, appID int64) (watchlist.AddResult, error)
	Remove(ctx context.Context, subscriberID string, appID int64) (watchlist.RemoveResult, error)
}

type scanTrigger interface {
	TriggerScan() bool
}

type DealServer struct {
	dealService      dealService
	watchlistService watchlistService
	scanner          scanTrigger
}

func NewDealServer(
	dealService dealService,
	watchlistService watchlistService,
	scanner scanTrigger,
) DealServer {
	return DealServer{
		dealService:      dealService,
		watchlistService: watchlistService,
		scanner:          scanner,
	}
}

func (s DealServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	games, dlc := s.dealService.ScanFeatured(ctx)

	reply.JSON(ctx, w, http.StatusOK, rest.DealsResponse{
		Games: newRESTDeals(games),
		DLC:   newRESTDeals(dlc),
	})

	return nil
}

func (s DealServer) postV1Scan(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	queued := s.scanner.TriggerScan()

	reply.JSON(ctx, w, http.StatusAccepted, rest.ScanResponse{Queued: queued})

	return nil
}

func (s DealServer) getV1Watchlist(w http.ResponseWriter, r *http.Request) error {
	ctx, subscriberID, err := subscriberFromPath(r)
	if err != nil {
		return err
	}

	entries, err := s.watchlistService.List(ctx, subscriberID)
	if err != nil {
		return fmt.Errorf("watchlistService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.WatchlistResponse{
		SubscriberID: subscriberID,
		Items:        lox.Map(entries, newRESTWatchlistItem),
	})

	return nil
}

func (s DealServer) postV1WatchlistItem(w http.ResponseWriter, r *http.Request) error {
	ctx, subscriberID, err := subscriberFromPath(r)
	if err != nil {
		return err
	}

	var request rest.AddWatchlistItemRequest
	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	res, err := s.watchlistService.Add(ctx, subscriberID, request.AppID)
	if err != nil {
		return fmt.Errorf("watchlistService.Add: %w", err)
	}

	switch res.Status {
	case watchlist.StatusNotFound:
		return failure.NewNotFoundError(
			fmt.Sprintf("app %d is not known to the storefront", request.AppID),
			failure.WithCode(errcodes.AppNotFound),
			failure.WithDescription("App not found"),
		)
	case watchlist.StatusAlreadyTracked:
		reply.JSON(ctx, w, http.StatusOK, rest.AddWatchlistItemResponse{Status: "alreadyTracked", Name: res.Name})
	case watchlist.StatusAdded:
		reply.JSON(ctx, w, http.StatusCreated, rest.AddWatchlistItemResponse{Status: "added", Name: res.Name})
	}

	return nil
}

func (s DealServer) deleteV1WatchlistItem(w http.ResponseWriter, r *http.Request) error {
	ctx, subscriberID, err := subscriberFromPath(r)
	if err != nil {
		return err
	}

	appID, err := strconv.ParseInt(r.PathValue("appID"), 10, 64)
	if err != nil || appID <= 0 {
		return failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid app id %q", r.PathValue("appID")),
			failure.WithCode(errcodes.InvalidAppID),
			failure.WithDescription("App id must be a positive number"),
		)
	}

	res, err := s.watchlistService.Remove(ctx, subscriberID, appID)
	if err != nil {
		return fmt.Errorf("watchlistService.Remove: %w", err)
	}

	if !res.Removed {
		return failure.NewNotFoundError(
			fmt.Sprintf("app %d is not tracked by %s", appID, subscriberID),
			failure.WithCode(errcodes.NotFound),
			failure.WithDescription("Watchlist item not found"),
		)
	}

	reply.NoContent(w)

	return nil
}

func subscriberFromPath(r *http.Request) (context.Context, string, error) {
	subscriberID := r.PathValue("subscriberID")

	if _, err := strconv.ParseInt(subscriberID, 10, 64); err != nil {
		return nil, "", failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid subscriber id %q", subscriberID),
			failure.WithCode(errcodes.InvalidSubscriber),
			failure.WithDescription("Subscriber id must be a numeric chat id"),
		)
	}

	ctx := contextx.WithSubscriberID(r.Context(), contextx.SubscriberID(subscriberID))

	return ctx, subscriberID, nil
}
