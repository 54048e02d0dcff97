package middleware

import (
	"net/http"
	"strconv"
	"strings"

	shopRepo "firstcut/database/repository/shop"
	"firstcut/models"
	"firstcut/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// AuthCustomerMiddleware requires a valid customer session token and sets the
// session user on the context.
func AuthCustomerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, name, err := utils.ExtractSessionFromToken(token)
		if err != nil || role != models.RoleCustomer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("sessionUser", models.SessionUser{Name: name, Role: role, Contact: subject})
		c.Next()
	}
}

// AuthOwnerMiddleware requires a valid owner session token whose shop still
// exists, and sets both the session user and the shop ID on the context.
// An owner token for a shop that can no longer be looked up is a blocking
// error, not a recoverable one.
func AuthOwnerMiddleware(shops shopRepo.ShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, name, err := utils.ExtractSessionFromToken(token)
		if err != nil || role != models.RoleOwner {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		shopID, err := strconv.Atoi(subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if _, err := shops.GetByID(shopID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Shop not found for this session"})
			return
		}

		c.Set("sessionUser", models.SessionUser{Name: name, Role: role, ShopID: shopID})
		c.Set("shopID", shopID)
		c.Next()
	}
}
