// Package shop covers the shop-owner surface: registration, owner sign-in,
// and the open/closed toggle. Credentials are held and compared in plaintext;
// this prototype deliberately has no real authentication.
package shop

import (
	"fmt"
	"strconv"
	"time"

	shopRepo "firstcut/database/repository/shop"
	"firstcut/models"
	"firstcut/utils"

	"go.uber.org/zap"
)

const sessionTokenTTL = 24 * time.Hour

// Service defines shop management operations.
type Service interface {
	// Register validates the payload and creates a new shop with an empty wallet.
	Register(reg models.ShopRegistration) (*models.Shop, error)
	// Authenticate matches an owner by mobile or email plus password and
	// issues a session token.
	Authenticate(identifier, password string) (*models.Shop, string, error)
	// ToggleOpen flips a shop's open/closed status.
	ToggleOpen(shopID int) (*models.Shop, error)
	// GetAll lists every shop for the browse surface.
	GetAll() ([]models.Shop, error)
	// GetByID retrieves a single shop.
	GetByID(id int) (*models.Shop, error)
}

// DefaultShopService implements Service.
type DefaultShopService struct {
	Repo   shopRepo.ShopRepository
	Logger *zap.Logger
}

func (s *DefaultShopService) Register(reg models.ShopRegistration) (*models.Shop, error) {
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	shop := &models.Shop{
		Name:        reg.ShopName,
		Address:     reg.Address,
		OwnerName:   reg.OwnerName,
		Mobile:      reg.Mobile,
		Email:       reg.Email,
		Password:    reg.Password,
		Distance:    "New",
		Rating:      5.0,
		Reviews:     0,
		Image:       reg.Image,
		IsOpen:      true,
		BookedSlots: []string{},
		Wallet:      models.Wallet{Pending: 0, Available: 0},
	}
	if err := s.Repo.Create(shop); err != nil {
		return nil, fmt.Errorf("register shop: %w", err)
	}

	// Default image depends on the assigned ID.
	if shop.Image == "" {
		shop.Image = fmt.Sprintf("https://picsum.photos/800/600?random=%d", shop.ID)
		if err := s.Repo.Update(shop); err != nil {
			return nil, fmt.Errorf("register shop: %w", err)
		}
	}

	s.Logger.Info("shop registered", zap.Int("shopID", shop.ID), zap.String("name", shop.Name))
	return shop, nil
}

func (s *DefaultShopService) Authenticate(identifier, password string) (*models.Shop, string, error) {
	shop, err := s.Repo.GetByContact(identifier)
	if err != nil || shop.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(strconv.Itoa(shop.ID), models.RoleOwner, shop.OwnerName, sessionTokenTTL)
	if err != nil {
		s.Logger.Error("Authenticate: failed to issue token", zap.Error(err))
		return nil, "", fmt.Errorf("authentication failed, please try again")
	}
	return shop, token, nil
}

func (s *DefaultShopService) ToggleOpen(shopID int) (*models.Shop, error) {
	shop, err := s.Repo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("toggle shop status: %w", err)
	}
	shop.IsOpen = !shop.IsOpen
	if err := s.Repo.Update(shop); err != nil {
		return nil, fmt.Errorf("toggle shop status: %w", err)
	}

	s.Logger.Info("shop status toggled", zap.Int("shopID", shopID), zap.Bool("isOpen", shop.IsOpen))
	return shop, nil
}

func (s *DefaultShopService) GetAll() ([]models.Shop, error) {
	return s.Repo.GetAll()
}

func (s *DefaultShopService) GetByID(id int) (*models.Shop, error) {
	return s.Repo.GetByID(id)
}
