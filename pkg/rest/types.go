// REST wire types for the ops API. Kept by hand for now; should be generated
// from an openapi spec as types.gen.go eventually.
package rest

type RegionPrice struct {
	Currency        string `json:"currency"`
	Initial         int64  `json:"initial"`
	Final           int64  `json:"final"`
	DiscountPercent int    `json:"discountPercent"`
}

type Deal struct {
	AppID     int64        `json:"appId"`
	Name      string       `json:"name"`
	Kind      string       `json:"kind"`
	URL       string       `json:"url"`
	Price     RegionPrice  `json:"price"`
	AltPrice  *RegionPrice `json:"altPrice,omitempty"`
}

type DealsResponse struct {
	Games []Deal `json:"games"`
	DLC   []Deal `json:"dlc"`
}

type WatchlistItem struct {
	AppID int64  `json:"appId"`
	Name  string `json:"name"`
}

type WatchlistResponse struct {
	SubscriberID string          `json:"subscriberId"`
	Items        []WatchlistItem `json:"items"`
}

type AddWatchlistItemRequest struct {
	AppID int64 `json:"appId" validate:"required,gt=0"`
}

type AddWatchlistItemResponse struct {
	Status string `json:"status"`
	Name   string `json:"name,omitempty"`
}

type ScanResponse struct {
	Queued bool `json:"queued"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
