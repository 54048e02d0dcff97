package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"firstcut/services/ledger"
	"firstcut/services/shop"
	"firstcut/utils"

	"github.com/gin-gonic/gin"
)

// WalletHandler serves the owner dashboard: wallet state, transaction history,
// the job-completion simulation and withdrawals.
type WalletHandler struct {
	ShopSvc shop.Service
	Ledger  ledger.Engine
}

func NewWalletHandler(shopSvc shop.Service, engine ledger.Engine) *WalletHandler {
	return &WalletHandler{ShopSvc: shopSvc, Ledger: engine}
}

// DashboardHandler returns the owner's shop with its wallet and transaction
// history.
func (h *WalletHandler) DashboardHandler(c *gin.Context) {
	shopID := c.GetInt("shopID")

	shopRec, err := h.ShopSvc.GetByID(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard", err.Error())
		return
	}
	transactions, err := h.Ledger.WalletStatement(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load transactions", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop":         shopRec,
		"transactions": transactions,
	})
}

// CompleteJobsHandler simulates job completion: the whole pending balance
// moves to available. Nothing pending is an informational notice, not a fault.
func (h *WalletHandler) CompleteJobsHandler(c *gin.Context) {
	shopID := c.GetInt("shopID")

	shopRec, flipped, err := h.Ledger.CompleteJobs(shopID)
	if err != nil {
		if errors.Is(err, ledger.ErrNoPendingFunds) {
			c.JSON(http.StatusOK, gin.H{"notice": "No pending funds to clear."})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to complete jobs", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Job done. Funds moved to Available Balance.",
		"shop":         shopRec,
		"transactions": flipped,
	})
}

// WithdrawHandler pays out the full available balance. An empty balance is an
// informational notice, not a fault.
func (h *WalletHandler) WithdrawHandler(c *gin.Context) {
	shopID := c.GetInt("shopID")

	shopRec, tx, err := h.Ledger.Withdraw(shopID)
	if err != nil {
		if errors.Is(err, ledger.ErrNothingToWithdraw) {
			c.JSON(http.StatusOK, gin.H{"notice": "Nothing to withdraw."})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "withdrawal failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Successfully withdrew %s%d to bank account.", utils.Currency, tx.Amount),
		"shop":        shopRec,
		"transaction": tx,
	})
}
