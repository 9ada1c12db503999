package contextx

import (
	"context"
	"fmt"
)

// SubscriberID identifies the chat/subscriber a request acts on behalf of.
type SubscriberID string

type contextKeySubscriberID struct{}

func (s SubscriberID) String() string {
	return string(s)
}

func WithSubscriberID(ctx context.Context, subscriberID SubscriberID) context.Context {
	return context.WithValue(ctx, contextKeySubscriberID{}, subscriberID)
}

func SubscriberIDFromContext(ctx context.Context) (SubscriberID, error) {
	subscriberID, ok := ctx.Value(contextKeySubscriberID{}).(SubscriberID)
	if !ok {
		return "", fmt.Errorf("subscriber id: %w", ErrNoValue)
	}

	return subscriberID, nil
}
