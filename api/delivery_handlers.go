package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listDeliveryOrders(c *gin.Context) {
	profile := currentProfile(c)
	ctx := c.Request.Context()

	status := c.DefaultQuery("status", "ready")
	switch status {
	case "ready":
		orders, err := s.svc.Delivery().ListAvailable(ctx, profile)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	case "assigned":
		orders, err := s.svc.Delivery().ListAssigned(ctx, profile)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be ready or assigned"})
	}
}

func (s *Server) assignOrder(c *gin.Context) {
	profile := currentProfile(c)
	order, err := s.svc.Delivery().Claim(c.Request.Context(), profile, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
