package config

import "time"

type Steam struct {
	BaseURL string `env:"STEAM_BASE_URL" envDefault:"https://store.steampowered.com/api"`
	// PrimaryRegion drives filtering and notifications; SecondaryRegion is
	// resolved best-effort for display only.
	PrimaryRegion    string        `env:"STEAM_COUNTRY_CODE" envDefault:"ru" validate:"len=2"`
	SecondaryRegion  string        `env:"STEAM_SECONDARY_COUNTRY_CODE" envDefault:"ua"`
	NameLookupRegion string        `env:"STEAM_NAME_LOOKUP_COUNTRY_CODE" envDefault:"us" validate:"len=2"`
	Language         string        `env:"STEAM_LANG" envDefault:"russian"`
	PriceMarkup      float64       `env:"STEAM_PRICE_MARKUP" envDefault:"1.10" validate:"gte=1"`
	DetailTimeout    time.Duration `env:"STEAM_DETAIL_TIMEOUT" envDefault:"10s"`
	FeedTimeout      time.Duration `env:"STEAM_FEED_TIMEOUT" envDefault:"15s"`
	QuoteCacheTTL    time.Duration `env:"STEAM_QUOTE_CACHE_TTL" envDefault:"10m"`
}
