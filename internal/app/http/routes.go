package routes

import (
	artistsapi "artmarket-api/internal/api/artists"
	artworksapi "artmarket-api/internal/api/artworks"
	auctionsapi "artmarket-api/internal/api/auctions"
	authapi "artmarket-api/internal/api/auth"
	bidsapi "artmarket-api/internal/api/bids"
	collectorsapi "artmarket-api/internal/api/collectors"
	galleriesapi "artmarket-api/internal/api/galleries"
	"artmarket-api/internal/api/paymentwebhook"
	paymentsapi "artmarket-api/internal/api/payments"
	usersapi "artmarket-api/internal/api/users"
	"artmarket-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes is the composition root: every service and handler is built
// here, once, around the shared *gorm.DB.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	userHandler := usersapi.NewHandler(usersapi.NewService(db))
	artistHandler := artistsapi.NewHandler(artistsapi.NewService(db))
	galleryHandler := galleriesapi.NewHandler(galleriesapi.NewService(db))
	collectorHandler := collectorsapi.NewHandler(collectorsapi.NewService(db))
	artworkHandler := artworksapi.NewHandler(artworksapi.NewService(db))
	auctionHandler := auctionsapi.NewHandler(auctionsapi.NewService(db))
	bidHandler := bidsapi.NewHandler(bidsapi.NewService(db))

	paymentService := paymentsapi.NewService(db)
	paymentHandler := paymentsapi.NewHandler(paymentService)
	webhookHandler := paymentwebhook.NewHandler(paymentService)

	authHandler := authapi.NewHandler(db)

	r.POST("/webhook", webhookHandler.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.GET("/auth/google", authHandler.GoogleStart)
	public.GET("/auth/google/callback", authHandler.GoogleCallback)

	registerResource(public, "/user", userHandler.Create, userHandler.GetAll,
		userHandler.GetByID, userHandler.Update, userHandler.Delete)
	registerResource(public, "/artist", artistHandler.Create, artistHandler.GetAll,
		artistHandler.GetByID, artistHandler.Update, artistHandler.Delete)
	registerResource(public, "/gallery", galleryHandler.Create, galleryHandler.GetAll,
		galleryHandler.GetByID, galleryHandler.Update, galleryHandler.Delete)
	registerResource(public, "/collector", collectorHandler.Create, collectorHandler.GetAll,
		collectorHandler.GetByID, collectorHandler.Update, collectorHandler.Delete)
	registerResource(public, "/artwork", artworkHandler.Create, artworkHandler.GetAll,
		artworkHandler.GetByID, artworkHandler.Update, artworkHandler.Delete)
	registerResource(public, "/auction", auctionHandler.Create, auctionHandler.GetAll,
		auctionHandler.GetByID, auctionHandler.Update, auctionHandler.Delete)
	registerResource(public, "/bid", bidHandler.Create, bidHandler.GetAll,
		bidHandler.GetByID, bidHandler.Update, bidHandler.Delete)
	registerResource(public, "/payment", paymentHandler.Create, paymentHandler.GetAll,
		paymentHandler.GetByID, paymentHandler.Update, paymentHandler.Delete)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", userHandler.GetCurrentUser)
	auth.POST("/change-password", authHandler.ChangePassword)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))
	admin.GET("/users", userHandler.GetAll)
	admin.GET("/payments", paymentHandler.GetAll)
}

// registerResource binds the uniform CRUD verb/path table every resource
// shares: POST /R, GET /R, GET /R/:id, PUT /R/:id, DELETE /R/:id.
func registerResource(g *gin.RouterGroup, path string, create, getAll, getByID, update, del gin.HandlerFunc) {
	g.POST(path, create)
	g.GET(path, getAll)
	g.GET(path+"/:id", getByID)
	g.PUT(path+"/:id", update)
	g.DELETE(path+"/:id", del)
}
