package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
)

func TestSubscriberID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testSubscriberIDEmpty contextx.SubscriberID

	testSubscriberIDNotEmpty := contextx.SubscriberID("5294292729")

	subscriberID, err := contextx.SubscriberIDFromContext(ctx)
	rq.Equal(testSubscriberIDEmpty, subscriberID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "subscriber id: no value in context")

	ctx = contextx.WithSubscriberID(ctx, testSubscriberIDNotEmpty)

	subscriberID, err = contextx.SubscriberIDFromContext(ctx)
	rq.Equal(testSubscriberIDNotEmpty, subscriberID)
	rq.NoError(err)
}
