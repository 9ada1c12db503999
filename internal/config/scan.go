package config

import "time"

type Scan struct {
	// MinOriginalPrice is in major currency units (rubles for the default
	// region), MinDiscountPercent is a whole percentage.
	MinOriginalPrice   int64         `env:"SCAN_MIN_ORIGINAL_PRICE" envDefault:"500" validate:"gte=0"`
	MinDiscountPercent int           `env:"SCAN_MIN_DISCOUNT" envDefault:"50" validate:"gte=0,lte=100"`
	Interval           time.Duration `env:"SCAN_INTERVAL" envDefault:"1h"`
	MaxApps            int           `env:"SCAN_MAX_APPS" envDefault:"100" validate:"gt=0"`
}
