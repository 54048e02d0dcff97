package models

import (
	"errors"
	"strings"
)

// ShopRegistration is the structured input for registering a new shop.
// All fields except Image are required.
type ShopRegistration struct {
	ShopName  string `json:"shopName" binding:"required"`
	Address   string `json:"address" binding:"required"`
	OwnerName string `json:"ownerName" binding:"required"`
	Mobile    string `json:"mobile" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Image     string `json:"image"`
}

// Validate checks the registration payload beyond what request binding covers.
func (r *ShopRegistration) Validate() error {
	if strings.TrimSpace(r.ShopName) == "" {
		return errors.New("shop name is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		return errors.New("address is required")
	}
	if strings.TrimSpace(r.OwnerName) == "" {
		return errors.New("owner name is required")
	}
	if strings.TrimSpace(r.Mobile) == "" {
		return errors.New("mobile number is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
