package handlers

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mehedihasan2004/parcel-pro-server/internal/models"
	"github.com/mehedihasan2004/parcel-pro-server/internal/services"
	"gorm.io/gorm"
)

type CreateParcelInput struct {
	SenderEmail      string `json:"sender_email" binding:"required,email"`
	SenderPhone      string `json:"sender_phone"`
	ReceiverEmail    string `json:"receiver_email" binding:"required,email"`
	ReceiverPhone    string `json:"receiver_phone"`
	SenderLocation   string `json:"sender_location"`
	ReceiverLocation string `json:"receiver_location"`
	ProductWeight    string `json:"product_weight" binding:"required"`
	ParcelType       string `json:"parcel_type"`
	PaymentMethod    string `json:"payment_method"`
	PressedTime      string `json:"pressed_time"`
	Charge           string `json:"charge"`
}

// CreateParcel submits a parcel booking. The weight arrives as a string and
// is coerced to a number before anything is persisted; a booking that cannot
// be parsed never reaches the store. When booking emails are enabled the
// notification is enqueued after the insert commits.
func CreateParcel(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateParcelInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		weight, err := strconv.ParseFloat(input.ProductWeight, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "product_weight must be numeric"})
			return
		}

		parcel := models.Parcel{
			SenderEmail:      input.SenderEmail,
			SenderPhone:      input.SenderPhone,
			ReceiverEmail:    input.ReceiverEmail,
			ReceiverPhone:    input.ReceiverPhone,
			SenderLocation:   input.SenderLocation,
			ReceiverLocation: input.ReceiverLocation,
			ProductWeight:    weight,
			ParcelType:       input.ParcelType,
			PaymentMethod:    input.PaymentMethod,
			PressedTime:      input.PressedTime,
			State:            models.ParcelStatePending,
			Charge:           input.Charge,
		}

		if err := db.Create(&parcel).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create parcel booking"})
			return
		}

		// Post-commit notification step. A queue failure is logged, never
		// surfaced; the booking already exists.
		if bookingEmailEnabled() {
			notification := services.BookingNotification{
				ParcelID:      parcel.ID,
				SenderEmail:   parcel.SenderEmail,
				ReceiverEmail: parcel.ReceiverEmail,
			}
			if err := services.EnqueueBookingNotification(context.Background(), notification); err != nil {
				log.Printf("Failed to enqueue booking notification for parcel %d: %v", parcel.ID, err)
			}
		}

		hub.BroadcastParcelUpdate(parcel.ID, parcel.State)

		c.JSON(201, parcel)
	}
}

func bookingEmailEnabled() bool {
	return os.Getenv("BOOKING_EMAIL_ENABLED") == "true"
}

// GetMyOrders lists the parcels a sender has booked
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(400, gin.H{"error": "email query parameter required"})
			return
		}

		var parcels []models.Parcel
		if err := db.Where("sender_email = ?", email).Find(&parcels).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch parcels"})
			return
		}

		c.JSON(200, parcels)
	}
}

func listByState(db *gorm.DB, state models.ParcelState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parcels []models.Parcel
		if err := db.Where("state = ?", state).Find(&parcels).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch parcels"})
			return
		}

		c.JSON(200, parcels)
	}
}

// GetPendingOrders lists parcels awaiting acceptance
func GetPendingOrders(db *gorm.DB) gin.HandlerFunc {
	return listByState(db, models.ParcelStatePending)
}

// GetAcceptedOrders lists parcels accepted for delivery
func GetAcceptedOrders(db *gorm.DB) gin.HandlerFunc {
	return listByState(db, models.ParcelStateAccepted)
}

// GetDeliveredOrders lists delivered parcels
func GetDeliveredOrders(db *gorm.DB) gin.HandlerFunc {
	return listByState(db, models.ParcelStateDelivered)
}

// GetCyclistOrders lists parcels light enough for a cyclist (weights 1-10)
func GetCyclistOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parcels []models.Parcel
		if err := db.Where("product_weight IN ?", models.CyclistWeights()).Find(&parcels).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch parcels"})
			return
		}

		c.JSON(200, parcels)
	}
}

// GetBikerOrders lists parcels for a biker (weights 11-20)
func GetBikerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parcels []models.Parcel
		if err := db.Where("product_weight IN ?", models.BikerWeights()).Find(&parcels).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch parcels"})
			return
		}

		c.JSON(200, parcels)
	}
}

// GetPickupOrders lists parcels needing a pickup vehicle (weight 21 and up)
func GetPickupOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parcels []models.Parcel
		if err := db.Where("product_weight >= ?", models.PickupMinWeight).Find(&parcels).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch parcels"})
			return
		}

		c.JSON(200, parcels)
	}
}

func transitionParcel(db *gorm.DB, hub *services.Hub, next models.ParcelState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid parcel ID"})
			return
		}

		var parcel models.Parcel
		if err := db.First(&parcel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Parcel not found"})
				return
			}
			c.JSON(500, gin.H{"error": "Failed to fetch parcel"})
			return
		}

		if err := parcel.TransitionTo(next); err != nil {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&parcel).Update("state", parcel.State).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update parcel state"})
			return
		}

		hub.BroadcastParcelUpdate(parcel.ID, parcel.State)

		c.JSON(200, parcel)
	}
}

// AcceptParcel moves a pending parcel to accepted
func AcceptParcel(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return transitionParcel(db, hub, models.ParcelStateAccepted)
}

// DeliverParcel moves an accepted parcel to delivered
func DeliverParcel(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return transitionParcel(db, hub, models.ParcelStateDelivered)
}
