package shopRepo

import (
	"errors"
	"testing"

	"firstcut/models"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryShopRepo(models.Shop{ID: 3, Name: "Seeded", Mobile: "111"})

	shop := &models.Shop{Name: "New Shop", Mobile: "222"}
	if err := repo.Create(shop); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if shop.ID != 4 {
		t.Fatalf("ID = %d, want 4 (after seeded ID 3)", shop.ID)
	}
}

func TestGetByContact(t *testing.T) {
	repo := NewMemoryShopRepo(models.Shop{ID: 1, Name: "Test Cuts", Mobile: "9876543210", Email: "a@demo.com"})

	for _, identifier := range []string{"9876543210", "a@demo.com"} {
		shop, err := repo.GetByContact(identifier)
		if err != nil {
			t.Fatalf("GetByContact(%q): %v", identifier, err)
		}
		if shop.ID != 1 {
			t.Fatalf("GetByContact(%q) ID = %d", identifier, shop.ID)
		}
	}

	if _, err := repo.GetByContact("unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateRejectsDuplicateContact(t *testing.T) {
	repo := NewMemoryShopRepo(models.Shop{ID: 1, Mobile: "111", Email: "a@demo.com"})

	if err := repo.Create(&models.Shop{Mobile: "111"}); err == nil {
		t.Fatal("expected duplicate mobile error")
	}
	if err := repo.Create(&models.Shop{Email: "a@demo.com"}); err == nil {
		t.Fatal("expected duplicate email error")
	}
}

func TestReadsReturnCopies(t *testing.T) {
	repo := NewMemoryShopRepo(models.Shop{ID: 1, Name: "Test Cuts", BookedSlots: []string{"10:00 AM"}})

	shop, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	shop.Name = "Mutated"
	shop.BookedSlots[0] = "mutated"
	shop.Wallet.Pending = 999

	fresh, _ := repo.GetByID(1)
	if fresh.Name != "Test Cuts" || fresh.BookedSlots[0] != "10:00 AM" || fresh.Wallet.Pending != 0 {
		t.Fatalf("repository state aliased by caller mutation: %+v", fresh)
	}
}

func TestUpdateUnknownShop(t *testing.T) {
	repo := NewMemoryShopRepo()
	if err := repo.Update(&models.Shop{ID: 9}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetAllInRegistrationOrder(t *testing.T) {
	repo := NewMemoryShopRepo()
	for _, name := range []string{"First", "Second", "Third"} {
		if err := repo.Create(&models.Shop{Name: name, Mobile: name}); err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 || all[0].Name != "First" || all[2].Name != "Third" {
		t.Fatalf("GetAll = %+v", all)
	}
}
