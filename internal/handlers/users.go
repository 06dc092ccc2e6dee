package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mehedihasan2004/parcel-pro-server/internal/models"
	"gorm.io/gorm"
)

// GetUsers lists every registered user
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(200, users)
	}
}

type RegisterUserInput struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// RegisterUser creates a user record
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		role := input.Role
		if role == "" {
			role = "user"
		}

		user := models.User{
			Email: input.Email,
			Role:  role,
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create user: " + err.Error()})
			return
		}

		c.JSON(201, user)
	}
}

// CheckAdmin answers whether the email belongs to an admin user. An absent
// user is not an error; it just means false.
func CheckAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(200, gin.H{"isAdmin": false})
				return
			}
			c.JSON(500, gin.H{"error": "Failed to look up user"})
			return
		}

		c.JSON(200, gin.H{"isAdmin": user.IsAdmin()})
	}
}
