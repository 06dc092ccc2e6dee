package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mehedihasan2004/parcel-pro-server/internal/services"
	"gorm.io/gorm"
)

const greeting = "Hello I'm from Parcel Pro Server. I'm ready to pick you parcel...................."

// SetupRoutes registers every route on the router
func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *services.Hub) {
	r.GET("/", func(c *gin.Context) {
		c.String(200, greeting)
	})

	// Users
	r.GET("/users", GetUsers(db))
	r.POST("/users", RegisterUser(db))
	r.GET("/admin/:email", CheckAdmin(db))

	// Riders
	r.GET("/rider", GetRiderByEmail(db))
	r.GET("/riders", GetRiders(db))
	r.POST("/riders", RegisterRider(db))
	r.PUT("/riders/:id", AcceptRiderAssignment(db))

	// Parcel bookings
	r.POST("/parcel_info", CreateParcel(db, hub))
	r.GET("/my_orders", GetMyOrders(db))
	r.GET("/pending_orders", GetPendingOrders(db))
	r.GET("/accepted_orders", GetAcceptedOrders(db))
	r.GET("/delivered_orders", GetDeliveredOrders(db))
	r.GET("/cyclist_orders", GetCyclistOrders(db))
	r.GET("/biker_orders", GetBikerOrders(db))
	r.GET("/pickup_orders", GetPickupOrders(db))
	r.PUT("/accept/:id", AcceptParcel(db, hub))
	r.PUT("/delivered/:id", DeliverParcel(db, hub))

	// Accepted-order records (raw payloads)
	r.POST("/accepted_orders", CreateAcceptedOrder(db))

	// Realtime parcel state updates
	r.GET("/ws", WebSocketHandler(hub))
}
