package routes

import (
	"time"

	"tripmate/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterChatRoutes registers the chat session endpoints.
func RegisterChatRoutes(r *gin.Engine, h *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", h.CreateSessionHandler)
		api.GET("/session/:id", h.GetSessionHandler)
		api.POST("/session/:id/message", h.SendMessageHandler)
		api.POST("/session/:id/section", h.SwitchSectionHandler) // quick actions
		api.POST("/session/:id/toggle", h.ToggleChatHandler)
		api.DELETE("/session/:id", h.CloseSessionHandler)
	}
}

// RegisterBookingRoutes registers the form field setters.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/booking")
	{
		api.GET("/session/:id", h.GetBookingStateHandler)
		api.PUT("/session/:id/transport", h.UpdateTransportHandler)
		api.PUT("/session/:id/accommodation", h.UpdateAccommodationHandler)
		api.PUT("/session/:id/tourism", h.UpdateTourismHandler)
	}
}

// RegisterRoutes wires CORS and every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, chat *handlers.ChatHandler, booking *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, chat)
	RegisterBookingRoutes(r, booking)

	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
