package handlers

import (
	"errors"
	"net/http"
	"time"

	"firstcut/models"
	"firstcut/services/shop"
	"firstcut/utils"

	"github.com/gin-gonic/gin"
)

const customerTokenTTL = 24 * time.Hour

// Demo customer identity: there is no customer account store, any login
// succeeds as the simulated customer.
const demoCustomerName = "John Doe"

// AuthHandler serves login and logout for both roles.
type AuthHandler struct {
	ShopSvc shop.Service
}

func NewAuthHandler(shopSvc shop.Service) *AuthHandler {
	return &AuthHandler{ShopSvc: shopSvc}
}

// LoginHandler signs in an owner (mobile/email + plaintext password against
// the shop record) or a customer (simulated, always succeeds).
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Role       string `json:"role" binding:"required"`
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	switch input.Role {
	case models.RoleOwner:
		shopRec, token, err := h.ShopSvc.Authenticate(input.Identifier, input.Password)
		if err != nil {
			if errors.Is(err, shop.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials",
					"If you are a new owner, please register your shop first.")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": models.SessionUser{
				Name:    shopRec.OwnerName,
				Role:    models.RoleOwner,
				ShopID:  shopRec.ID,
				Contact: input.Identifier,
			},
		})

	case models.RoleCustomer:
		token, err := utils.GenerateToken(input.Identifier, models.RoleCustomer, demoCustomerName, customerTokenTTL)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": models.SessionUser{
				Name:    demoCustomerName,
				Role:    models.RoleCustomer,
				Contact: input.Identifier,
			},
		})

	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "role must be customer or owner")
	}
}

// LogoutHandler ends a session. Tokens are stateless, so the server side has
// nothing to discard; the client drops the token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
