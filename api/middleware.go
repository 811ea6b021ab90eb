package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/models"
)

const profileKey = "profile"

// authRequired resolves the bearer subject issued by the external identity
// provider into a profile. Requests without a valid subject are rejected
// before reaching any handler.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrUnauthenticated.Error()})
			return
		}
		subject, err := uuid.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrUnauthenticated.Error()})
			return
		}

		profile, err := s.svc.User().GetProfile(c.Request.Context(), subject.String())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrUnauthenticated.Error()})
			return
		}

		c.Set(profileKey, profile)
		c.Next()
	}
}

func (s *Server) roleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := currentProfile(c)
		if profile == nil || profile.UserType != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperr.ErrUnauthorized.Error()})
			return
		}
		c.Next()
	}
}

func currentProfile(c *gin.Context) *models.Profile {
	value, exists := c.Get(profileKey)
	if !exists {
		return nil
	}
	profile, _ := value.(*models.Profile)
	return profile
}
