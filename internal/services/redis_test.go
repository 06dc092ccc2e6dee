package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQueue(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_URL", "redis://"+mr.Addr())
	require.NoError(t, InitRedis())
}

func TestBookingNotificationQueueRoundTrip(t *testing.T) {
	setupQueue(t)
	ctx := context.Background()

	in := BookingNotification{
		ParcelID:      42,
		SenderEmail:   "sender@example.com",
		ReceiverEmail: "receiver@example.com",
	}
	require.NoError(t, EnqueueBookingNotification(ctx, in))

	length, err := BookingQueueLength(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, length)

	out, err := DequeueBookingNotification(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, in.ParcelID, out.ParcelID)
	assert.Equal(t, in.SenderEmail, out.SenderEmail)
	assert.Equal(t, in.ReceiverEmail, out.ReceiverEmail)
	assert.NotZero(t, out.QueuedAt, "enqueue stamps the job")

	length, err = BookingQueueLength(ctx)
	require.NoError(t, err)
	assert.Zero(t, length)
}

func TestBookingNotificationQueueOrder(t *testing.T) {
	setupQueue(t)
	ctx := context.Background()

	for id := uint(1); id <= 3; id++ {
		require.NoError(t, EnqueueBookingNotification(ctx, BookingNotification{ParcelID: id}))
	}

	// Jobs come out in the order they went in
	for id := uint(1); id <= 3; id++ {
		n, err := DequeueBookingNotification(ctx, time.Second)
		require.NoError(t, err)
		assert.Equal(t, id, n.ParcelID)
	}
}

func TestDequeueTimesOutOnEmptyQueue(t *testing.T) {
	setupQueue(t)

	_, err := DequeueBookingNotification(context.Background(), 50*time.Millisecond)
	assert.ErrorIs(t, err, redis.Nil)
}
