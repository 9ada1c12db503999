package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/TimohUSik/SkidkiSteamBot/internal/config"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const storePageURL = "https://store.steampowered.com/app/%d/"

// Client talks to the public storefront API. All methods honor ctx and apply
// the per-endpoint timeout from the config on top of it.
type Client struct {
	httpClient       *http.Client
	baseURL          string
	language         string
	nameLookupRegion string
	detailTimeout    time.Duration
	feedTimeout      time.Duration
}

func NewClient(cfg config.Steam, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithLogFieldMaxLen(2048),
			),
		},
		baseURL:          cfg.BaseURL,
		language:         cfg.Language,
		nameLookupRegion: cfg.NameLookupRegion,
		detailTimeout:    cfg.DetailTimeout,
		feedTimeout:      cfg.FeedTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// AppDetails fetches one app's storefront record for the given region.
// Returns errcodes.AppNotFound when the storefront reports success=false,
// and a nil Price when the app carries no price_overview block.
func (c *Client) AppDetails(ctx context.Context, appID int64, region string) (*entity.AppDetails, error) {
	params := url.Values{}
	params.Set("appids", strconv.FormatInt(appID, 10))
	params.Set("cc", region)
	params.Set("l", c.language)

	var envelope map[string]appDetailsEnvelope
	if err := c.getJSON(ctx, "/appdetails", params, c.detailTimeout, &envelope); err != nil {
		return nil, err
	}

	record, ok := envelope[strconv.FormatInt(appID, 10)]
	if !ok || !record.Success || record.Data == nil {
		return nil, domain.NewError(errcodes.AppNotFound, fmt.Sprintf("app %d is not known to the storefront", appID))
	}

	return &entity.AppDetails{
		AppID: appID,
		Name:  record.Data.Name,
		Kind:  entity.KindFromStoreType(record.Data.Type),
		URL:   fmt.Sprintf(storePageURL, appID),
		Price: record.Data.PriceOverview.toRegionPrice(),
	}, nil
}

// AppName resolves an app's display name against the neutral region, for apps
// that exist but have no price in the primary one.
func (c *Client) AppName(ctx context.Context, appID int64) (string, error) {
	details, err := c.AppDetails(ctx, appID, c.nameLookupRegion)
	if err != nil {
		return "", err
	}

	return details.Name, nil
}

// FeaturedCategories fetches the specials and top-sellers feeds. Top-seller
// entries without an active discount are dropped here.
func (c *Client) FeaturedCategories(ctx context.Context, region string) (entity.FeedSet, error) {
	params := url.Values{}
	params.Set("cc", region)
	params.Set("l", c.language)

	var resp featuredCategoriesResponse
	if err := c.getJSON(ctx, "/featuredcategories", params, c.feedTimeout, &resp); err != nil {
		return entity.FeedSet{}, err
	}

	return entity.FeedSet{
		Specials:   feedItems(resp.Specials.Items, false),
		TopSellers: feedItems(resp.TopSellers.Items, true),
	}, nil
}

// Featured fetches the front-page capsules feed.
func (c *Client) Featured(ctx context.Context, region string) ([]entity.FeedItem, error) {
	params := url.Values{}
	params.Set("cc", region)
	params.Set("l", c.language)

	var resp featuredResponse
	if err := c.getJSON(ctx, "/featured", params, c.feedTimeout, &resp); err != nil {
		return nil, err
	}

	items := make([]feedEntry, 0, len(resp.LargeCapsules)+len(resp.FeaturedWin))
	items = append(items, resp.LargeCapsules...)
	items = append(items, resp.FeaturedWin...)

	return feedItems(items, false), nil
}

func (c *Client) getJSON(
	ctx context.Context,
	endpoint string,
	params url.Values,
	timeout time.Duration,
	dest any,
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "build storefront request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(err, errcodes.NetworkError, "storefront is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NewError(
			errcodes.UpstreamStatus,
			fmt.Sprintf("storefront answered %d on %s", resp.StatusCode, endpoint),
		)
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.WrapError(err, errcodes.DecodeError, "malformed storefront response")
	}

	return nil
}

func feedItems(entries []feedEntry, discountedOnly bool) []entity.FeedItem {
	items := make([]entity.FeedItem, 0, len(entries))

	for _, e := range entries {
		if e.ID == 0 {
			continue
		}

		if discountedOnly && e.DiscountPercent <= 0 {
			continue
		}

		items = append(items, entity.FeedItem{
			AppID:           e.ID,
			DiscountPercent: e.DiscountPercent,
		})
	}

	return items
}
