package shopRepo

import (
	"fmt"
	"sync"

	"firstcut/models"
)

// MemoryShopRepo is a thread-safe in-memory ShopRepository. All state resets
// on process restart. Every read returns a copy and every write replaces the
// stored record wholesale, so callers never alias repository-owned memory.
type MemoryShopRepo struct {
	mu           sync.RWMutex
	shops        map[int]*models.Shop
	contactIndex map[string]int // mobile or email -> shop ID
	nextID       int
}

// NewMemoryShopRepo returns an empty in-memory shop repository, optionally
// seeded with fixture shops whose IDs are preserved.
func NewMemoryShopRepo(seed ...models.Shop) *MemoryShopRepo {
	repo := &MemoryShopRepo{
		shops:        make(map[int]*models.Shop),
		contactIndex: make(map[string]int),
		nextID:       1,
	}
	for _, shop := range seed {
		s := cloneShop(&shop)
		repo.shops[s.ID] = s
		repo.index(s)
		if s.ID >= repo.nextID {
			repo.nextID = s.ID + 1
		}
	}
	return repo
}

func (r *MemoryShopRepo) index(s *models.Shop) {
	if s.Mobile != "" {
		r.contactIndex[s.Mobile] = s.ID
	}
	if s.Email != "" {
		r.contactIndex[s.Email] = s.ID
	}
}

func (r *MemoryShopRepo) GetByID(id int) (*models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shop, ok := r.shops[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneShop(shop), nil
}

func (r *MemoryShopRepo) GetAll() ([]models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Shop, 0, len(r.shops))
	for id := 1; id < r.nextID; id++ {
		if shop, ok := r.shops[id]; ok {
			all = append(all, *cloneShop(shop))
		}
	}
	return all, nil
}

func (r *MemoryShopRepo) GetByContact(identifier string) (*models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.contactIndex[identifier]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneShop(r.shops[id]), nil
}

func (r *MemoryShopRepo) Create(shop *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if shop.Mobile != "" {
		if _, taken := r.contactIndex[shop.Mobile]; taken {
			return fmt.Errorf("mobile %q already registered", shop.Mobile)
		}
	}
	if shop.Email != "" {
		if _, taken := r.contactIndex[shop.Email]; taken {
			return fmt.Errorf("email %q already registered", shop.Email)
		}
	}

	shop.ID = r.nextID
	r.nextID++
	r.shops[shop.ID] = cloneShop(shop)
	r.index(r.shops[shop.ID])
	return nil
}

func (r *MemoryShopRepo) Update(shop *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shops[shop.ID]; !ok {
		return ErrNotFound
	}
	r.shops[shop.ID] = cloneShop(shop)
	return nil
}

func cloneShop(s *models.Shop) *models.Shop {
	c := *s
	c.BookedSlots = append([]string(nil), s.BookedSlots...)
	return &c
}
