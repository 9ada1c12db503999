package entity

// WatchlistEntry is one tracked app in a subscriber's list. The JSON tags are
// the persisted document format and must stay compatible with the legacy
// watchlist.json files.
type WatchlistEntry struct {
	AppID int64  `json:"app_id"`
	Name  string `json:"name"`
}
