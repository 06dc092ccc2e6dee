package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// bookingQueueKey is the Redis list holding pending booking notifications.
const bookingQueueKey = "notifications:booking"

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// BookingNotification is one queued email job for a submitted booking.
type BookingNotification struct {
	ParcelID      uint   `json:"parcelId"`
	SenderEmail   string `json:"senderEmail"`
	ReceiverEmail string `json:"receiverEmail"`
	QueuedAt      int64  `json:"queuedAt"`
}

// EnqueueBookingNotification pushes a booking notification onto the queue.
// Called after the parcel insert has committed.
func EnqueueBookingNotification(ctx context.Context, n BookingNotification) error {
	if n.QueuedAt == 0 {
		n.QueuedAt = time.Now().Unix()
	}

	data, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return RedisClient.LPush(ctx, bookingQueueKey, data).Err()
}

// DequeueBookingNotification blocks up to timeout for the next queued
// notification. Returns redis.Nil when the queue stays empty.
func DequeueBookingNotification(ctx context.Context, timeout time.Duration) (*BookingNotification, error) {
	result, err := RedisClient.BRPop(ctx, timeout, bookingQueueKey).Result()
	if err != nil {
		return nil, err
	}

	// BRPop returns [key, value]
	var n BookingNotification
	if err := json.Unmarshal([]byte(result[1]), &n); err != nil {
		return nil, err
	}

	return &n, nil
}

// BookingQueueLength reports how many notifications are waiting.
func BookingQueueLength(ctx context.Context) (int64, error) {
	return RedisClient.LLen(ctx, bookingQueueKey).Result()
}
