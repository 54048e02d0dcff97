// Package catalog holds the static service and time-slot catalogs. Entries
// are fixed for the process lifetime and shared by reference semantics:
// bookings copy catalog values, they never own them.
package catalog

import (
	"fmt"

	"firstcut/models"
)

var services = []models.Service{
	{ID: "s1", Name: "Hair Cut", Price: 250, Duration: 30},
	{ID: "s2", Name: "Beard Shave", Price: 150, Duration: 20},
	{ID: "s3", Name: "Facewash & Cleanup", Price: 450, Duration: 45},
	{ID: "s4", Name: "Hair Color", Price: 800, Duration: 60},
	{ID: "s5", Name: "Head Massage", Price: 300, Duration: 30},
}

var timeSlots = []string{
	"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "01:00 PM", "01:30 PM", "02:00 PM",
	"02:30 PM", "03:00 PM", "04:00 PM", "04:30 PM",
}

// Services returns the full service catalog.
func Services() []models.Service {
	return append([]models.Service(nil), services...)
}

// ResolveServices maps service IDs to catalog entries, rejecting unknown IDs.
func ResolveServices(ids []string) ([]models.Service, error) {
	resolved := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		svc, err := serviceByID(id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, svc)
	}
	return resolved, nil
}

func serviceByID(id string) (models.Service, error) {
	for _, svc := range services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, fmt.Errorf("unknown service %q", id)
}

// TimeSlots returns the fixed list of bookable slot labels.
func TimeSlots() []string {
	return append([]string(nil), timeSlots...)
}

// ValidSlot reports whether the label is one of the fixed time slots.
func ValidSlot(label string) bool {
	for _, slot := range timeSlots {
		if slot == label {
			return true
		}
	}
	return false
}

// SlotAvailability describes a slot's bookability at one shop.
type SlotAvailability struct {
	Slot   string `json:"slot"`
	Booked bool   `json:"booked"`
}

// AvailabilityFor returns every slot with its booked state for the given
// shop, in catalog order. Booked slots must be treated as unselectable.
func AvailabilityFor(shop *models.Shop) []SlotAvailability {
	availability := make([]SlotAvailability, 0, len(timeSlots))
	for _, slot := range timeSlots {
		availability = append(availability, SlotAvailability{
			Slot:   slot,
			Booked: shop.SlotBooked(slot),
		})
	}
	return availability
}
