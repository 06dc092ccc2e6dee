package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mehedihasan2004/parcel-pro-server/internal/models"
	"gorm.io/gorm"
)

// GetRiders lists every registered rider
func GetRiders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var riders []models.Rider
		if err := db.Find(&riders).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch riders"})
			return
		}

		c.JSON(200, riders)
	}
}

// GetRiderByEmail fetches the user record behind a rider email
func GetRiderByEmail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(400, gin.H{"error": "email query parameter required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(404, gin.H{"error": "Rider not found"})
			return
		}

		c.JSON(200, user)
	}
}

type RegisterRiderInput struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Area        string `json:"area"`
	VehicleType string `json:"vehicleType"`
}

// RegisterRider creates a rider record
func RegisterRider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterRiderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		rider := models.Rider{
			Username:    input.Username,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Area:        input.Area,
			VehicleType: input.VehicleType,
		}

		if err := db.Create(&rider).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create rider: " + err.Error()})
			return
		}

		c.JSON(201, rider)
	}
}

// AcceptRiderAssignment marks a rider as having accepted an assignment
func AcceptRiderAssignment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid rider ID"})
			return
		}

		var rider models.Rider
		if err := db.First(&rider, id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Rider not found"})
			return
		}

		rider.State = models.RiderStateAccepted
		if err := db.Save(&rider).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update rider"})
			return
		}

		c.JSON(200, rider)
	}
}
