package models

// Session roles.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// SessionUser is the identity carried by a session token. Created at login,
// discarded at logout, never persisted. Owners carry a back-reference to
// their shop.
type SessionUser struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	ShopID  int    `json:"shopId,omitempty"`
	Contact string `json:"contact,omitempty"`
}
