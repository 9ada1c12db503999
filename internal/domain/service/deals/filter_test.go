package deals

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
)

func quote(appID int64, kind entity.ContentKind, initial int64, discount int) entity.PriceQuote {
	return entity.PriceQuote{
		AppID: appID,
		Kind:  kind,
		Price: entity.RegionPrice{
			Currency:        "RUB",
			Initial:         initial,
			Final:           initial - initial*int64(discount)/100,
			DiscountPercent: discount,
		},
	}
}

func appIDs(quotes []entity.PriceQuote) []int64 {
	var ids []int64
	for _, q := range quotes {
		ids = append(ids, q.AppID)
	}

	return ids
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		quotes      []entity.PriceQuote
		minPrice    int64
		minDiscount int
		wantGames   []int64
		wantDLC     []int64
	}{
		{
			name: "thresholds cut cheap and shallow items",
			quotes: []entity.PriceQuote{
				quote(10, entity.KindGame, 100000, 60),
				quote(20, entity.KindGame, 30000, 80),  // too cheap
				quote(30, entity.KindGame, 200000, 40), // discount too shallow
			},
			minPrice:    50000,
			minDiscount: 50,
			wantGames:   []int64{10},
		},
		{
			name: "partitions and sorts by discount desc",
			quotes: []entity.PriceQuote{
				quote(1, entity.KindGame, 100000, 55),
				quote(2, entity.KindDLC, 100000, 90),
				quote(3, entity.KindGame, 100000, 75),
				quote(4, entity.KindDLC, 100000, 60),
			},
			minPrice:    0,
			minDiscount: 50,
			wantGames:   []int64{3, 1},
			wantDLC:     []int64{2, 4},
		},
		{
			name: "equal discounts keep input order",
			quotes: []entity.PriceQuote{
				quote(1, entity.KindGame, 100000, 50),
				quote(2, entity.KindGame, 100000, 50),
				quote(3, entity.KindGame, 100000, 50),
			},
			minPrice:    0,
			minDiscount: 0,
			wantGames:   []int64{1, 2, 3},
		},
		{
			name:        "empty input",
			minPrice:    0,
			minDiscount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			games, dlc := Filter(tt.quotes, tt.minPrice, tt.minDiscount)

			rq.Equal(tt.wantGames, appIDs(games))
			rq.Equal(tt.wantDLC, appIDs(dlc))
		})
	}
}
