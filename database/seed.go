// Package database holds the demo fixtures the server boots with. There is no
// real database behind this prototype: all state lives in the in-memory
// repositories and resets on restart.
package database

import (
	"firstcut/models"
)

// SeedShops returns the demo shops the marketplace starts with.
func SeedShops() []models.Shop {
	return []models.Shop{
		{
			ID:          1,
			Name:        "Gentleman's Grooming",
			Address:     "12 Main St, Downtown",
			OwnerName:   "Rajesh Kumar",
			Mobile:      "9876543210",
			Email:       "rajesh@demo.com",
			Password:    "123",
			Distance:    "0.8 km",
			Rating:      4.8,
			Reviews:     124,
			Image:       "https://picsum.photos/800/600?random=1",
			IsOpen:      true,
			BookedSlots: []string{"10:00 AM"},
			Wallet:      models.Wallet{Pending: 450, Available: 1200},
		},
		{
			ID:          2,
			Name:        "Urban Fadez Barbershop",
			Address:     "45 West Avenue",
			OwnerName:   "Amit Singh",
			Mobile:      "1234567890",
			Email:       "amit@demo.com",
			Password:    "123",
			Distance:    "1.2 km",
			Rating:      4.5,
			Reviews:     89,
			Image:       "https://picsum.photos/800/600?random=2",
			IsOpen:      true,
			BookedSlots: []string{},
			Wallet:      models.Wallet{Pending: 0, Available: 500},
		},
		{
			ID:          3,
			Name:        "The Classic Cut",
			Address:     "88 Market Square",
			OwnerName:   "Vikram Das",
			Mobile:      "1122334455",
			Email:       "vikram@demo.com",
			Password:    "123",
			Distance:    "2.5 km",
			Rating:      4.9,
			Reviews:     210,
			Image:       "https://picsum.photos/800/600?random=3",
			IsOpen:      true,
			BookedSlots: []string{"04:00 PM", "04:30 PM"},
			Wallet:      models.Wallet{Pending: 150, Available: 2000},
		},
	}
}

// SeedTransactions returns the demo transaction history.
func SeedTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: 1, ShopID: 1, Type: models.TxCredit, Amount: 250, Desc: "Hair Cut (Completed)", Status: models.TxStatusAvailable, Date: "Today, 9:00 AM"},
		{ID: 2, ShopID: 1, Type: models.TxCredit, Amount: 450, Desc: "Facial (Scheduled)", Status: models.TxStatusPending, Date: "Today, 2:00 PM"},
	}
}
