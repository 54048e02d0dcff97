// Package ledger owns shop wallets and the transaction log. Every money
// movement goes through one of its named transition functions: a booking
// credits the pending bucket, job completion promotes pending to available,
// and a withdrawal zeroes the available bucket. Each transition appends or
// flips transaction records so the log always accounts for the wallet state.
package ledger

import (
	"fmt"
	"strings"

	ledgerRepo "firstcut/database/repository/ledger"
	shopRepo "firstcut/database/repository/shop"
	"firstcut/models"

	"go.uber.org/zap"
)

const completedAnnotation = " (Completed)"

// Engine defines the wallet and settlement transitions.
type Engine interface {
	// ConfirmBooking settles a paid booking: the slot is marked taken, the
	// shop's earnings land in the pending bucket and a pending credit is
	// recorded. Slot availability is the caller's responsibility; the ledger
	// does not re-validate it.
	ConfirmBooking(details models.BookingDetails) (*models.Shop, *models.Transaction, error)
	// CompleteJobs promotes the shop's entire pending balance to available
	// and flips every pending transaction. Returns ErrNoPendingFunds when
	// there is nothing to clear.
	CompleteJobs(shopID int) (*models.Shop, []models.Transaction, error)
	// Withdraw pays out the full available balance and records a completed
	// debit. Returns ErrNothingToWithdraw when the balance is zero.
	Withdraw(shopID int) (*models.Shop, *models.Transaction, error)
	// WalletStatement returns a shop's transactions, newest first.
	WalletStatement(shopID int) ([]models.Transaction, error)
}

// DefaultEngine implements Engine over the shop and transaction repositories.
type DefaultEngine struct {
	Shops        shopRepo.ShopRepository
	Transactions ledgerRepo.TransactionRepository
	Logger       *zap.Logger
}

func (e *DefaultEngine) ConfirmBooking(details models.BookingDetails) (*models.Shop, *models.Transaction, error) {
	shop, err := e.Shops.GetByID(details.ShopID)
	if err != nil {
		return nil, nil, fmt.Errorf("confirm booking: %w", err)
	}

	// Compute the full updated state before committing anything.
	shop.BookedSlots = append(shop.BookedSlots, details.Slot)
	shop.Wallet.Pending += details.ShopEarnings

	names := make([]string, 0, len(details.Services))
	for _, svc := range details.Services {
		names = append(names, svc.Name)
	}
	tx := &models.Transaction{
		ShopID: shop.ID,
		Type:   models.TxCredit,
		Amount: details.ShopEarnings,
		Desc:   "Booking: " + strings.Join(names, ", "),
		Status: models.TxStatusPending,
		Date:   "Today, " + details.Slot,
	}

	if err := e.Shops.Update(shop); err != nil {
		return nil, nil, fmt.Errorf("confirm booking: update shop: %w", err)
	}
	if err := e.Transactions.Append(tx); err != nil {
		return nil, nil, fmt.Errorf("confirm booking: record transaction: %w", err)
	}

	e.Logger.Info("booking settled",
		zap.Int("shopID", shop.ID),
		zap.String("slot", details.Slot),
		zap.Int("shopEarnings", details.ShopEarnings),
		zap.Int("platformFee", details.PlatformFee),
	)
	return shop, tx, nil
}

func (e *DefaultEngine) CompleteJobs(shopID int) (*models.Shop, []models.Transaction, error) {
	shop, err := e.Shops.GetByID(shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("complete jobs: %w", err)
	}
	if shop.Wallet.Pending == 0 {
		return nil, nil, ErrNoPendingFunds
	}

	moved := shop.Wallet.Pending
	shop.Wallet.Available += moved
	shop.Wallet.Pending = 0

	if err := e.Shops.Update(shop); err != nil {
		return nil, nil, fmt.Errorf("complete jobs: update shop: %w", err)
	}
	flipped, err := e.Transactions.PromotePending(shopID, completedAnnotation)
	if err != nil {
		return nil, nil, fmt.Errorf("complete jobs: promote transactions: %w", err)
	}

	e.Logger.Info("pending funds cleared",
		zap.Int("shopID", shopID),
		zap.Int("amount", moved),
		zap.Int("transactions", len(flipped)),
	)
	return shop, flipped, nil
}

func (e *DefaultEngine) Withdraw(shopID int) (*models.Shop, *models.Transaction, error) {
	shop, err := e.Shops.GetByID(shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("withdraw: %w", err)
	}
	if shop.Wallet.Available <= 0 {
		return nil, nil, ErrNothingToWithdraw
	}

	amount := shop.Wallet.Available
	shop.Wallet.Available = 0

	tx := &models.Transaction{
		ShopID: shopID,
		Type:   models.TxDebit,
		Amount: amount,
		Desc:   "Withdrawal to Bank Account",
		Status: models.TxStatusCompleted,
		Date:   "Just Now",
	}

	if err := e.Shops.Update(shop); err != nil {
		return nil, nil, fmt.Errorf("withdraw: update shop: %w", err)
	}
	if err := e.Transactions.Append(tx); err != nil {
		return nil, nil, fmt.Errorf("withdraw: record transaction: %w", err)
	}

	e.Logger.Info("withdrawal recorded", zap.Int("shopID", shopID), zap.Int("amount", amount))
	return shop, tx, nil
}

func (e *DefaultEngine) WalletStatement(shopID int) ([]models.Transaction, error) {
	if _, err := e.Shops.GetByID(shopID); err != nil {
		return nil, fmt.Errorf("wallet statement: %w", err)
	}
	return e.Transactions.GetByShop(shopID)
}
