package deals

import (
	"sort"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
)

// Filter keeps quotes whose primary-region original price and discount both
// clear the thresholds, partitions them into games and DLC and sorts each
// partition by discount, deepest first. The sort is stable, so equal discounts
// keep their input order. Amounts are compared in minor currency units.
func Filter(quotes []entity.PriceQuote, minInitialPrice int64, minDiscountPercent int) (games, dlc []entity.PriceQuote) {
	for _, q := range quotes {
		if q.Price.Initial < minInitialPrice || q.Price.DiscountPercent < minDiscountPercent {
			continue
		}

		if q.Kind == entity.KindDLC {
			dlc = append(dlc, q)
		} else {
			games = append(games, q)
		}
	}

	byDiscountDesc := func(s []entity.PriceQuote) func(i, j int) bool {
		return func(i, j int) bool {
			return s[i].Price.DiscountPercent > s[j].Price.DiscountPercent
		}
	}

	sort.SliceStable(games, byDiscountDesc(games))
	sort.SliceStable(dlc, byDiscountDesc(dlc))

	return games, dlc
}
