package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/cart"
)

type addCartItemRequest struct {
	MenuItemID          string `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type updateCartItemRequest struct {
	Quantity            *int    `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions"`
}

func (s *Server) getCart(c *gin.Context) {
	profile := currentProfile(c)
	c.JSON(http.StatusOK, s.carts.Get(c.Request.Context(), profile.ID))
}

func (s *Server) addCartItem(c *gin.Context) {
	profile := currentProfile(c)

	var req addCartItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	item, err := s.svc.Restaurant().MenuItem(ctx, req.MenuItemID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !item.IsAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "menu item is not available"})
		return
	}

	rest, err := s.svc.Restaurant().Get(ctx, item.RestaurantID)
	if err != nil {
		writeError(c, err)
		return
	}

	state := s.carts.Get(ctx, profile.ID)
	if !cart.CanAddItem(state, item.RestaurantID) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart already holds items from another restaurant"})
		return
	}

	line := cart.Line{
		MenuItemID:          item.ID,
		Name:                item.Name,
		Price:               item.Price,
		ImageURL:            item.ImageURL,
		RestaurantID:        rest.ID,
		RestaurantName:      rest.Name,
		SpecialInstructions: req.SpecialInstructions,
	}
	state, err = s.carts.AddItem(ctx, profile.ID, line, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) updateCartItem(c *gin.Context) {
	profile := currentProfile(c)
	menuItemID := c.Param("id")

	var req updateCartItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	state := s.carts.Get(ctx, profile.ID)
	var err error
	if req.Quantity != nil {
		state, err = s.carts.UpdateQuantity(ctx, profile.ID, menuItemID, *req.Quantity)
		if err != nil {
			writeError(c, err)
			return
		}
	}
	if req.SpecialInstructions != nil {
		state, err = s.carts.UpdateInstructions(ctx, profile.ID, menuItemID, *req.SpecialInstructions)
		if err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) removeCartItem(c *gin.Context) {
	profile := currentProfile(c)
	state, err := s.carts.RemoveItem(c.Request.Context(), profile.ID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) clearCart(c *gin.Context) {
	profile := currentProfile(c)
	if err := s.carts.Clear(c.Request.Context(), profile.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
