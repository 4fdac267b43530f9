package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/server/http/handlers"
	"github.com/inkandimagination/artstore/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, pinger handlers.Pinger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(pinger)
	authHandler := handlers.NewAuthHandler(facade)
	artworkHandler := handlers.NewArtworkHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	api.GET("/artworks", artworkHandler.List)
	api.GET("/artworks/category/:category", artworkHandler.ListByCategory)
	api.GET("/artworks/:id", artworkHandler.Get)

	api.POST("/orders", orderHandler.Create)
	api.POST("/payment/create-order", paymentHandler.CreateOrder)
	api.POST("/payment/verify-payment", paymentHandler.VerifyPayment)
	api.POST("/contact", contactHandler.Submit)

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	admin := api.Group("")
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/auth/me", authHandler.Me)
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	admin.POST("/artworks", artworkHandler.Create)
	admin.PUT("/artworks/:id", artworkHandler.Update)
	admin.DELETE("/artworks/:id", artworkHandler.Delete)
	admin.GET("/contact", contactHandler.List)
	admin.GET("/contact/:id", contactHandler.Get)
	admin.PUT("/contact/:id/status", contactHandler.UpdateStatus)
	admin.GET("/admin/dashboard", adminHandler.Dashboard)
	admin.GET("/admin/activity", adminHandler.Activity)

	return engine
}
