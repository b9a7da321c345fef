package routes

import (
	"net/http"
	"time"

	"weddify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPaymentRoutes registers the gateway return surface.
func RegisterPaymentRoutes(r *gin.Engine, h *handlers.PaymentStatusHandler) {
	api := r.Group("/payment")
	{
		api.GET("/status", h.Resolve)
	}
}

// SetupRouter builds the local router: recovery, CORS and the payment
// return route. The rest of the application is a client of the external
// backend; nothing else is served here.
func SetupRouter(h *handlers.PaymentStatusHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	RegisterPaymentRoutes(router, h)
	return router
}
