package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mehedihasan2004/parcel-pro-server/pkg/utils"
	"github.com/redis/go-redis/v9"
)

// RunNotificationWorker drains the booking notification queue and sends one
// email per job. A failed send is logged and the job dropped; booking
// handlers never wait on this loop. Run as a goroutine from main.
func RunNotificationWorker(ctx context.Context) {
	for {
		n, err := DequeueBookingNotification(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				log.Println("Notification worker stopped")
				return
			}
			log.Printf("Failed to dequeue booking notification: %v", err)
			time.Sleep(time.Second)
			continue
		}

		if err := utils.SendParcelBookedEmail(n.ReceiverEmail, n.SenderEmail); err != nil {
			log.Printf("Failed to send booking email for parcel %d: %v", n.ParcelID, err)
			continue
		}

		log.Printf("Sent booking email for parcel %d to %s", n.ParcelID, n.ReceiverEmail)
	}
}
