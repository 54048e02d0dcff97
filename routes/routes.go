package routes

import (
	"net/http"
	"time"

	shopRepo "firstcut/database/repository/shop"
	"firstcut/handlers"
	"firstcut/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates everything route registration needs.
type HandlerBundle struct {
	ShopRepo shopRepo.ShopRepository

	Auth    *handlers.AuthHandler
	Shop    *handlers.ShopHandler
	Booking *handlers.BookingHandler
	Wallet  *handlers.WalletHandler
}

// RegisterAuthRoutes registers login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterShopRoutes registers the public browse surface and shop registration.
func RegisterShopRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/shops")
	{
		api.GET("", hb.Shop.ListShopsHandler)
		api.GET("/:id", hb.Shop.GetShopHandler)
		api.POST("/register", hb.Shop.RegisterShopHandler)
	}
}

// RegisterBookingRoutes sets up the customer booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.AuthCustomerMiddleware())
		bookingGroup.POST("/quote", hb.Booking.QuoteBookingHandler)
		bookingGroup.POST("/confirm/:bookingID", hb.Booking.ConfirmBookingHandler)
	}
}

// RegisterDashboardRoutes sets up the owner dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	dashboardGroup := r.Group("/api/dashboard")
	{
		dashboardGroup.Use(middleware.AuthOwnerMiddleware(hb.ShopRepo))
		dashboardGroup.GET("", hb.Wallet.DashboardHandler)
		dashboardGroup.POST("/toggle-status", hb.Shop.ToggleStatusHandler)
		dashboardGroup.POST("/complete-jobs", hb.Wallet.CompleteJobsHandler)
		dashboardGroup.POST("/withdraw", hb.Wallet.WithdrawHandler)
	}
}

// RegisterHelpRoutes registers the help-center endpoint.
func RegisterHelpRoutes(r *gin.Engine) {
	r.GET("/api/help/:role", handlers.HelpHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FirstCut"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHelpRoutes(r)
	RegisterHealthRoute(r)
}
