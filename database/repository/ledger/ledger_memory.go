package ledgerRepo

import (
	"sync"
	"time"

	"firstcut/models"
)

// MemoryTransactionRepo is a thread-safe in-memory transaction log. Records
// are append-only; the only in-place mutation is the pending -> available
// status flip performed by PromotePending.
type MemoryTransactionRepo struct {
	mu     sync.RWMutex
	log    []models.Transaction // insertion order, oldest first
	lastID int64
}

// NewMemoryTransactionRepo returns an in-memory transaction log, optionally
// seeded with fixture records whose IDs are preserved.
func NewMemoryTransactionRepo(seed ...models.Transaction) *MemoryTransactionRepo {
	repo := &MemoryTransactionRepo{}
	for _, tx := range seed {
		repo.log = append(repo.log, tx)
		if tx.ID > repo.lastID {
			repo.lastID = tx.ID
		}
	}
	return repo
}

// nextID issues a millisecond-timestamp ID, bumped when two appends land in
// the same millisecond so IDs stay strictly increasing.
func (r *MemoryTransactionRepo) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *MemoryTransactionRepo) Append(tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx.ID = r.nextID()
	r.log = append(r.log, *tx)
	return nil
}

func (r *MemoryTransactionRepo) GetByShop(shopID int) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Transaction
	for i := len(r.log) - 1; i >= 0; i-- {
		if r.log[i].ShopID == shopID {
			result = append(result, r.log[i])
		}
	}
	return result, nil
}

func (r *MemoryTransactionRepo) GetAll() ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Transaction, 0, len(r.log))
	for i := len(r.log) - 1; i >= 0; i-- {
		result = append(result, r.log[i])
	}
	return result, nil
}

func (r *MemoryTransactionRepo) PromotePending(shopID int, annotation string) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var updated []models.Transaction
	for i := range r.log {
		if r.log[i].ShopID == shopID && r.log[i].Status == models.TxStatusPending {
			r.log[i].Status = models.TxStatusAvailable
			r.log[i].Desc += annotation
			updated = append(updated, r.log[i])
		}
	}
	return updated, nil
}
