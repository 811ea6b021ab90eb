package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listRestaurants(c *gin.Context) {
	restaurants, err := s.svc.Restaurant().List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

func (s *Server) getMenu(c *gin.Context) {
	items, err := s.svc.Restaurant().Menu(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
