package handlers

import (
	"errors"
	"net/http"
	"strconv"

	shopRepo "firstcut/database/repository/shop"
	"firstcut/models"
	"firstcut/services/catalog"
	"firstcut/services/shop"
	"firstcut/utils"

	"github.com/gin-gonic/gin"
)

// ShopHandler serves the shop browse and management endpoints.
type ShopHandler struct {
	Svc shop.Service
}

func NewShopHandler(svc shop.Service) *ShopHandler {
	return &ShopHandler{Svc: svc}
}

// RegisterShopHandler creates a new shop from a registration payload.
func (h *ShopHandler) RegisterShopHandler(c *gin.Context) {
	var reg models.ShopRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	newShop, err := h.Svc.Register(reg)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Shop Registered Successfully! Please Login.",
		"shop":    newShop,
	})
}

// ListShopsHandler returns all shops for the browse view.
func (h *ShopHandler) ListShopsHandler(c *gin.Context) {
	shops, err := h.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list shops", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// GetShopHandler returns one shop together with the service catalog and the
// shop's slot availability, everything the selection screen needs.
func (h *ShopHandler) GetShopHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid shop id", c.Param("id"))
		return
	}

	shopRec, err := h.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, shopRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "shop not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch shop", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop":     shopRec,
		"services": catalog.Services(),
		"slots":    catalog.AvailabilityFor(shopRec),
	})
}

// ToggleStatusHandler flips the authenticated owner's shop between open and
// closed.
func (h *ShopHandler) ToggleStatusHandler(c *gin.Context) {
	shopID := c.GetInt("shopID")
	updated, err := h.Svc.ToggleOpen(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to toggle shop status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"shop": updated})
}
