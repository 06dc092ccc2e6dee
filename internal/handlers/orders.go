package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/mehedihasan2004/parcel-pro-server/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateAcceptedOrder stores a raw accepted-order payload verbatim. The
// orders collection has no schema beyond being valid JSON.
func CreateAcceptedOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(400, gin.H{"error": "Failed to read request body"})
			return
		}

		if !json.Valid(body) {
			c.JSON(400, gin.H{"error": "Request body must be valid JSON"})
			return
		}

		order := models.Order{
			Payload: datatypes.JSON(body),
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to record order"})
			return
		}

		c.JSON(201, order)
	}
}
