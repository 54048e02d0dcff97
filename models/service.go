package models

// Service is a static catalog entry. Prices are whole currency units,
// durations are minutes. Catalog entries are shared across bookings and
// never mutated.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"`
}
