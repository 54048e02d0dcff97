package models

// Wallet is a shop's two-bucket balance. Pending holds earnings for bookings
// not yet marked complete; Available is eligible for withdrawal. Both buckets
// stay non-negative.
type Wallet struct {
	Pending   int `json:"pending"`
	Available int `json:"available"`
}

type Shop struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	OwnerName   string   `json:"ownerName"`
	Mobile      string   `json:"mobile"`
	Email       string   `json:"email"`
	Password    string   `json:"-"`
	Distance    string   `json:"distance"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Image       string   `json:"image"`
	IsOpen      bool     `json:"isOpen"`
	BookedSlots []string `json:"bookedSlots"`
	Wallet      Wallet   `json:"wallet"`
}

// SlotBooked reports whether the given slot label has already been taken at
// this shop.
func (s *Shop) SlotBooked(slot string) bool {
	for _, booked := range s.BookedSlots {
		if booked == slot {
			return true
		}
	}
	return false
}
