package models

// BookingDetails is the transient aggregate built when a customer confirms a
// service and slot selection. It lives only between the quote and the payment
// confirmation; once the booking is confirmed it is discarded.
//
// GrandTotal equals Subtotal: the platform fee is taken out of the shop's
// side, the customer never pays it on top.
type BookingDetails struct {
	ID           string    `json:"id"`
	ShopID       int       `json:"shopId"`
	ShopName     string    `json:"shopName"`
	Services     []Service `json:"services"`
	Slot         string    `json:"slot"`
	Subtotal     int       `json:"subtotal"`
	PlatformFee  int       `json:"platformFee"`
	GrandTotal   int       `json:"grandTotal"`
	ShopEarnings int       `json:"shopEarnings"`
}
