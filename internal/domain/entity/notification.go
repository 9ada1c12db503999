package entity

// Notification is one deal announcement addressed to a subscriber, produced
// by the scan worker and consumed by the Telegram notifier.
type Notification struct {
	SubscriberID string
	Quote        PriceQuote
}
