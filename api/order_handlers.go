package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/service"
)

type updateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Message string `json:"message"`
}

func (s *Server) createOrder(c *gin.Context) {
	profile := currentProfile(c)

	var req service.CheckoutInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	state := s.carts.Get(ctx, profile.ID)
	order, err := s.svc.Order().Checkout(ctx, profile, state, req)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.carts.Clear(ctx, profile.ID); err != nil {
		// Order committed; a stale cart is an annoyance, not a failure.
		s.log.Warning("failed to clear cart after checkout", logger.String("customer_id", profile.ID), logger.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func (s *Server) listOrders(c *gin.Context) {
	profile := currentProfile(c)
	orders, err := s.svc.Order().ListForCustomer(c.Request.Context(), profile.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) listRestaurantOrders(c *gin.Context) {
	profile := currentProfile(c)
	orders, err := s.svc.Order().ListForRestaurant(c.Request.Context(), profile)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	profile := currentProfile(c)

	var req updateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.svc.Order().UpdateStatus(c.Request.Context(), profile, c.Param("id"), models.OrderStatus(req.Status), req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getTracking(c *gin.Context) {
	profile := currentProfile(c)
	events, err := s.svc.Tracking().History(c.Request.Context(), profile, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracking": events})
}
