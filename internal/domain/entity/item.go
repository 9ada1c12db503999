package entity

// ContentKind separates full games from DLC in storefront listings. Anything
// the storefront does not explicitly mark as DLC is treated as a game.
type ContentKind string

const (
	KindGame ContentKind = "game"
	KindDLC  ContentKind = "dlc"
)

func KindFromStoreType(storeType string) ContentKind {
	if storeType == "dlc" {
		return KindDLC
	}
	return KindGame
}

// RegionPrice holds one region's price pair in minor currency units
// (the storefront reports kopecks/cents).
type RegionPrice struct {
	Currency        string `json:"currency"`
	Initial         int64  `json:"initial"`
	Final           int64  `json:"final"`
	DiscountPercent int    `json:"discount_percent"`
}

// PriceQuote is the merged, normalized pricing record for one app.
// Price is the primary region's pair and is authoritative for filtering;
// AltPrice is the markup-adjusted secondary region pair, display only and
// absent when the secondary lookup failed or returned no price.
type PriceQuote struct {
	AppID    int64        `json:"app_id"`
	Name     string       `json:"name"`
	Kind     ContentKind  `json:"kind"`
	URL      string       `json:"url"`
	Price    RegionPrice  `json:"price"`
	AltPrice *RegionPrice `json:"alt_price,omitempty"`
}

// AppDetails is the per-region storefront answer for one app. Price is nil
// when the app has no price_overview block (free or delisted).
type AppDetails struct {
	AppID int64
	Name  string
	Kind  ContentKind
	URL   string
	Price *RegionPrice
}

// FeedItem is one entry of a discovery feed.
type FeedItem struct {
	AppID           int64
	DiscountPercent int
}

// FeedSet groups the feeds served by a single featured-categories response.
type FeedSet struct {
	Specials   []FeedItem
	TopSellers []FeedItem
}
