// Package booking drives the customer booking flow: quoting a service and
// slot selection into priced booking details, holding the quote while the
// customer reviews it, and handing the confirmed booking to the ledger.
// All slot-availability checks happen here, before the ledger is touched.
package booking

import (
	"fmt"

	shopRepo "firstcut/database/repository/shop"
	"firstcut/models"
	"firstcut/services/catalog"
	"firstcut/services/ledger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the booking session flow.
type Service interface {
	// Quote validates the selection and builds priced booking details held
	// for confirmation.
	Quote(shopID int, serviceIDs []string, slot string) (*models.BookingDetails, error)
	// Confirm finalizes a quoted booking after payment, settling it through
	// the ledger.
	Confirm(bookingID string) (*models.Shop, *models.BookingDetails, *models.Transaction, error)
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Shops    shopRepo.ShopRepository
	Ledger   ledger.Engine
	Sessions *SessionStore
	Logger   *zap.Logger
}

func (s *DefaultBookingService) Quote(shopID int, serviceIDs []string, slot string) (*models.BookingDetails, error) {
	shop, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("quote booking: %w", err)
	}
	if !shop.IsOpen {
		return nil, ErrShopClosed
	}
	if len(serviceIDs) == 0 {
		return nil, ErrNoServices
	}
	services, err := catalog.ResolveServices(serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("quote booking: %w", err)
	}
	if !catalog.ValidSlot(slot) {
		return nil, ErrUnknownSlot
	}
	if shop.SlotBooked(slot) {
		return nil, ErrSlotTaken
	}

	split := ledger.ComputeSplit(services, ledger.CommissionRate)
	details := models.BookingDetails{
		ID:           uuid.New().String(),
		ShopID:       shop.ID,
		ShopName:     shop.Name,
		Services:     services,
		Slot:         slot,
		Subtotal:     split.Subtotal,
		PlatformFee:  split.Commission,
		GrandTotal:   split.Subtotal,
		ShopEarnings: split.ShopEarnings,
	}
	s.Sessions.Put(details)

	s.Logger.Debug("booking quoted",
		zap.String("bookingID", details.ID),
		zap.Int("shopID", shop.ID),
		zap.String("slot", slot),
		zap.Int("grandTotal", details.GrandTotal),
	)
	return &details, nil
}

func (s *DefaultBookingService) Confirm(bookingID string) (*models.Shop, *models.BookingDetails, *models.Transaction, error) {
	details, ok := s.Sessions.Take(bookingID)
	if !ok {
		return nil, nil, nil, ErrSessionNotFound
	}

	// Re-check the slot against current state: it may have been taken
	// between quote and confirmation.
	shop, err := s.Shops.GetByID(details.ShopID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("confirm booking: %w", err)
	}
	if shop.SlotBooked(details.Slot) {
		return nil, nil, nil, ErrSlotTaken
	}

	updatedShop, tx, err := s.Ledger.ConfirmBooking(details)
	if err != nil {
		// Restore the session so a transient failure can be retried.
		s.Sessions.Put(details)
		return nil, nil, nil, err
	}
	return updatedShop, &details, tx, nil
}
