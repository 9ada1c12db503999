package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Catalog (Steam storefront) failures.
	NetworkError       failure.ErrorCode = "NetworkError"       // transport-level failure or timeout
	UpstreamStatus     failure.ErrorCode = "UpstreamStatus"     // non-2xx from the storefront
	DecodeError        failure.ErrorCode = "DecodeError"        // malformed payload
	AppNotFound        failure.ErrorCode = "AppNotFound"        // storefront reports success=false / unknown id
	NoPriceData        failure.ErrorCode = "NoPriceData"        // no price_overview block: free or delisted
	InvalidAppID       failure.ErrorCode = "InvalidAppID"       // garbage instead of a numeric id
	InvalidThreshold   failure.ErrorCode = "InvalidThreshold"   // min price / min discount out of range
	InvalidSubscriber  failure.ErrorCode = "InvalidSubscriber"  // empty or non-numeric subscriber id
	WatchlistStoreDown failure.ErrorCode = "WatchlistStoreDown" // persistence backend unavailable
)
