package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

type dealPoller interface {
	PollForNotifications(ctx context.Context) (map[string][]entity.PriceQuote, error)
}

type quoteFlusher interface {
	Flush()
}

// DealScanner периодически обходит вотчлисты и шлёт свежие скидки в канал
// уведомлений. Внеплановый прогон можно запросить через TriggerScan; запросы,
// пришедшие во время прогона, схлопываются в один.
type DealScanner struct {
	deals         dealPoller
	quotes        quoteFlusher
	notifications chan<- entity.Notification

	interval time.Duration
	trigger  chan struct{}

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewDealScanner(
	deals dealPoller,
	quotes quoteFlusher,
	notifications chan<- entity.Notification,
	interval time.Duration,
) *DealScanner {
	return &DealScanner{
		deals:         deals,
		quotes:        quotes,
		notifications: notifications,
		interval:      interval,
		trigger:       make(chan struct{}, 1),
	}
}

func (w *DealScanner) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("scanner is already running")
	}

	scanCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(scanCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("scanner stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *DealScanner) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус.
func (w *DealScanner) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

// TriggerScan ставит внеплановый прогон в очередь. Возвращает false, когда
// прогон уже запрошен и запрос схлопнулся с предыдущим.
func (w *DealScanner) TriggerScan() bool {
	select {
	case w.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

func (w *DealScanner) Run(ctx context.Context) error {
	logger(ctx).Info("deal scanner started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("deal scanner stopped")

			return ctx.Err()
		case <-ticker.C:
			w.scanOnce(ctx)
		case <-w.trigger:
			w.scanOnce(ctx)
		}
	}
}

func (w *DealScanner) scanOnce(ctx context.Context) {
	// Каждый прогон работает по свежим ценам.
	w.quotes.Flush()

	fresh, err := w.deals.PollForNotifications(ctx)
	if err != nil {
		scanFailuresTotal.Inc()
		logger(ctx).Error("notification poll failed", logx.Error(err))

		return
	}

	sent := 0

	for subscriberID, quotes := range fresh {
		quotesResolvedTotal.Add(float64(len(quotes)))

		for _, quote := range quotes {
			select {
			case w.notifications <- entity.Notification{SubscriberID: subscriberID, Quote: quote}:
				sent++
			case <-ctx.Done():
				return
			}
		}
	}

	scanCyclesTotal.Inc()
	notificationsTotal.Add(float64(sent))

	if sent > 0 {
		logger(ctx).Info("scan cycle completed", slog.Int("notifications", sent))
	}
}
