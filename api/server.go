package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodmarket/config"
	"foodmarket/pkg/cart"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/service"
)

type Server struct {
	cfg    config.Config
	svc    service.IServiceManager
	carts  *cart.Manager
	log    logger.ILogger
	router *gin.Engine
}

func NewServer(cfg config.Config, svc service.IServiceManager, carts *cart.Manager, log logger.ILogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	s := &Server{
		cfg:    cfg,
		svc:    svc,
		carts:  carts,
		log:    log,
		router: router,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/restaurants", s.listRestaurants)
	s.router.GET("/restaurants/:id/menu", s.getMenu)

	auth := s.router.Group("/", s.authRequired())
	{
		auth.GET("/cart", s.getCart)
		auth.POST("/cart/items", s.addCartItem)
		auth.PATCH("/cart/items/:id", s.updateCartItem)
		auth.DELETE("/cart/items/:id", s.removeCartItem)
		auth.DELETE("/cart", s.clearCart)

		auth.POST("/orders", s.createOrder)
		auth.GET("/orders", s.listOrders)
		auth.GET("/orders/:id/tracking", s.getTracking)
		auth.POST("/orders/:id/update-status", s.updateOrderStatus)

		auth.GET("/restaurant/orders", s.roleRequired(models.RoleRestaurant), s.listRestaurantOrders)

		delivery := auth.Group("/delivery", s.roleRequired(models.RoleDelivery))
		{
			delivery.GET("/orders", s.listDeliveryOrders)
			delivery.POST("/orders/:id/assign", s.assignOrder)
		}
	}
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.AppPort)
	s.log.Info("HTTP server starting", logger.String("address", addr))
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func requestLogger(log logger.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("HTTP request",
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Any("latency", time.Since(start)),
		)
	}
}
