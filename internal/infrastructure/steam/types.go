package steam

import "github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"

// Wire shapes of the storefront API. Amounts arrive in minor currency units.

type appDetailsEnvelope struct {
	Success bool     `json:"success"`
	Data    *appData `json:"data"`
}

type appData struct {
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	PriceOverview *priceOverview `json:"price_overview"`
}

type priceOverview struct {
	Currency        string `json:"currency"`
	Initial         int64  `json:"initial"`
	Final           int64  `json:"final"`
	DiscountPercent int    `json:"discount_percent"`
}

func (p *priceOverview) toRegionPrice() *entity.RegionPrice {
	if p == nil {
		return nil
	}

	return &entity.RegionPrice{
		Currency:        p.Currency,
		Initial:         p.Initial,
		Final:           p.Final,
		DiscountPercent: p.DiscountPercent,
	}
}

type feedEntry struct {
	ID              int64 `json:"id"`
	DiscountPercent int   `json:"discount_percent"`
}

type feedCategory struct {
	Items []feedEntry `json:"items"`
}

type featuredCategoriesResponse struct {
	Specials   feedCategory `json:"specials"`
	TopSellers feedCategory `json:"top_sellers"`
}

type featuredResponse struct {
	LargeCapsules []feedEntry `json:"large_capsules"`
	FeaturedWin   []feedEntry `json:"featured_win"`
}
