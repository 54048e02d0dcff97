package handlers

import (
	"errors"
	"fmt"
	"net/http"

	shopRepo "firstcut/database/repository/shop"
	"firstcut/services/booking"
	"firstcut/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the customer booking flow.
type BookingHandler struct {
	Svc    booking.Service
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// QuoteBookingHandler prices a service and slot selection and holds the quote
// for confirmation.
func (h *BookingHandler) QuoteBookingHandler(c *gin.Context) {
	var input struct {
		ShopID     int      `json:"shopId" binding:"required"`
		ServiceIDs []string `json:"serviceIds" binding:"required"`
		Slot       string   `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	details, err := h.Svc.Quote(input.ShopID, input.ServiceIDs, input.Slot)
	if err != nil {
		switch {
		case errors.Is(err, shopRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "shop not found", "")
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot already booked", input.Slot)
		case errors.Is(err, booking.ErrShopClosed),
			errors.Is(err, booking.ErrNoServices),
			errors.Is(err, booking.ErrUnknownSlot):
			utils.JSONError(c, http.StatusBadRequest, "cannot quote booking", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to quote booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": details})
}

// ConfirmBookingHandler finalizes a quoted booking after payment.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")

	shop, details, tx, err := h.Svc.Confirm(bookingID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", bookingID)
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot already booked", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "booking confirmation failed", err.Error())
		}
		return
	}

	h.Logger.Info("booking confirmed",
		zap.String("bookingID", details.ID),
		zap.Int("shopID", shop.ID),
	)
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Booking confirmed at %s for %s", shop.Name, details.Slot),
		"booking":     details,
		"transaction": tx,
	})
}
