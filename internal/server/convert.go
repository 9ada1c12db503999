package server

import (
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/lox"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/rest"
)

func newRESTDeal(quote entity.PriceQuote) rest.Deal {
	deal := rest.Deal{
		AppID: quote.AppID,
		Name:  quote.Name,
		Kind:  string(quote.Kind),
		URL:   quote.URL,
		Price: newRESTRegionPrice(quote.Price),
	}

	if quote.AltPrice != nil {
		alt := newRESTRegionPrice(*quote.AltPrice)
		deal.AltPrice = &alt
	}

	return deal
}

func newRESTRegionPrice(price entity.RegionPrice) rest.RegionPrice {
	return rest.RegionPrice{
		Currency:        price.Currency,
		Initial:         price.Initial,
		Final:           price.Final,
		DiscountPercent: price.DiscountPercent,
	}
}

func newRESTDeals(quotes []entity.PriceQuote) []rest.Deal {
	return lox.Map(quotes, newRESTDeal)
}

func newRESTWatchlistItem(entry entity.WatchlistEntry) rest.WatchlistItem {
	return rest.WatchlistItem{
		AppID: entry.AppID,
		Name:  entry.Name,
	}
}
