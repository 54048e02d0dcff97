package booking

import "errors"

var (
	ErrShopClosed      = errors.New("shop is currently closed")
	ErrNoServices      = errors.New("no services selected")
	ErrUnknownSlot     = errors.New("unknown time slot")
	ErrSlotTaken       = errors.New("slot already booked")
	ErrSessionNotFound = errors.New("booking session not found or expired")
)
