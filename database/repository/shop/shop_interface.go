package shopRepo

import (
	"firstcut/models"
)

// ShopRepository defines methods for shop data access.
type ShopRepository interface {
	// GetByID retrieves a shop by its unique ID.
	GetByID(id int) (*models.Shop, error)
	// GetAll retrieves all shops in registration order.
	GetAll() ([]models.Shop, error)
	// GetByContact retrieves a shop whose mobile number or email matches the identifier.
	GetByContact(identifier string) (*models.Shop, error)
	// Create inserts a new shop record and assigns it the next sequential ID.
	Create(shop *models.Shop) error
	// Update replaces an existing shop record wholesale.
	Update(shop *models.Shop) error
}
