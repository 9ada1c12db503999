package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"
	ta "github.com/mymmrac/telego/telegoapi"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/internal/config"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/deals"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/watchlist"
	"github.com/TimohUSik/SkidkiSteamBot/internal/transport/bot/view"
	"github.com/TimohUSik/SkidkiSteamBot/internal/worker"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	testAdminID  = int64(42)
	testBotToken = "123456:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

// recordingCaller перехватывает вызовы Bot API и запоминает тексты сообщений.
type recordingCaller struct {
	mu    sync.Mutex
	texts []string
}

func (c *recordingCaller) Call(_ context.Context, _ string, data *ta.RequestData) (*ta.Response, error) {
	var payload struct {
		Text string `json:"text"`
	}
	_ = json.Unmarshal(data.BodyRaw, &payload)

	c.mu.Lock()
	c.texts = append(c.texts, payload.Text)
	c.mu.Unlock()

	return &ta.Response{Ok: true, Result: []byte("{}")}, nil
}

func (c *recordingCaller) count(text string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0

	for _, t := range c.texts {
		if t == text {
			n++
		}
	}

	return n
}

func (c *recordingCaller) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.texts)
}

type emptyCatalog struct{}

func (emptyCatalog) AppDetails(_ context.Context, appID int64, _ string) (*entity.AppDetails, error) {
	return nil, domain.NewError(errcodes.AppNotFound, "unknown app")
}

func (emptyCatalog) AppName(context.Context, int64) (string, error) {
	return "", domain.NewError(errcodes.AppNotFound, "unknown app")
}

func (emptyCatalog) FeaturedCategories(context.Context, string) (entity.FeedSet, error) {
	return entity.FeedSet{}, nil
}

func (emptyCatalog) Featured(context.Context, string) ([]entity.FeedItem, error) {
	return nil, nil
}

type emptyRepo struct{}

func (emptyRepo) List(context.Context, string) ([]entity.WatchlistEntry, error) {
	return nil, nil
}

func (emptyRepo) Subscribers(context.Context) ([]string, error) {
	return nil, nil
}

func (emptyRepo) Append(context.Context, string, entity.WatchlistEntry) error {
	return nil
}

func (emptyRepo) Remove(context.Context, string, int64) (entity.WatchlistEntry, bool, error) {
	return entity.WatchlistEntry{}, false, nil
}

func startTestBot(t *testing.T) (*recordingCaller, chan<- telego.Update) {
	t.Helper()
	rq := require.New(t)

	caller := &recordingCaller{}

	bot, err := telego.NewBot(testBotToken, telego.WithAPICaller(caller), telego.WithDiscardLogger())
	rq.NoError(err)

	updates := make(chan telego.Update)

	bh, err := th.NewBotHandler(bot, updates)
	rq.NoError(err)

	catalog := emptyCatalog{}
	resolver := deals.NewPriceResolver(catalog, config.Steam{
		PrimaryRegion: "ru",
		QuoteCacheTTL: time.Minute,
		PriceMarkup:   1,
	})
	collector := deals.NewSourceCollector(catalog, "ru", 10)
	watchService := watchlist.NewService(emptyRepo{}, resolver, catalog)
	dealService := deals.NewService(resolver, collector, watchService, deals.NewMemoryDeduper()).
		WithThresholds(500, 50)
	scanner := worker.NewDealScanner(dealService, resolver, make(chan entity.Notification, 1), time.Hour)

	New(dealService, watchService, scanner).RegisterRoutes(bh, testAdminID)

	go func() { _ = bh.Start() }()

	t.Cleanup(func() { _ = bh.Stop() })

	return caller, updates
}

func textUpdate(userID int64, text string) telego.Update {
	return telego.Update{
		UpdateID: int(userID),
		Message: &telego.Message{
			MessageID: 1,
			Text:      text,
			Chat:      telego.Chat{ID: userID, Type: telego.ChatTypePrivate},
			From:      &telego.User{ID: userID},
		},
	}
}

func TestRegisterRoutes_MenuButtonsForEverySubscriber(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	caller, updates := startTestBot(t)

	// Кнопки меню должны работать и у админа, и у обычного подписчика.
	updates <- textUpdate(testAdminID, view.MenuHelp)
	updates <- textUpdate(777, view.MenuHelp)

	rq.Eventually(func() bool {
		return caller.count(view.HelpMessage) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestRegisterRoutes_ListAlias(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	caller, updates := startTestBot(t)

	updates <- textUpdate(777, "/list")

	rq.Eventually(func() bool {
		return caller.count(view.WatchlistEmpty) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRegisterRoutes_AdminCommandsStayGated(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	caller, updates := startTestBot(t)

	updates <- textUpdate(777, "/scan")
	updates <- textUpdate(testAdminID, "/scan")

	rq.Eventually(func() bool {
		return caller.count(view.ScanQueued) == 1
	}, time.Second, 10*time.Millisecond)

	// Чужой /scan проглатывается без ответа.
	rq.Equal(1, caller.total())
}
