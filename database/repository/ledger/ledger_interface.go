package ledgerRepo

import (
	"firstcut/models"
)

// TransactionRepository defines methods for the append-only transaction log.
type TransactionRepository interface {
	// Append records a new transaction and assigns it a time-based ID.
	Append(tx *models.Transaction) error
	// GetByShop retrieves a shop's transactions, newest first.
	GetByShop(shopID int) ([]models.Transaction, error)
	// GetAll retrieves every transaction, newest first.
	GetAll() ([]models.Transaction, error)
	// PromotePending flips all of a shop's pending transactions to available,
	// appending the annotation to each description. It returns the updated
	// records.
	PromotePending(shopID int, annotation string) ([]models.Transaction, error)
}
