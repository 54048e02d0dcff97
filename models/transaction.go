package models

// Transaction types.
const (
	TxCredit = "credit"
	TxDebit  = "debit"
)

// Transaction statuses. A credit starts out pending and is promoted to
// available when the job completes; a withdrawal debit is recorded as
// completed immediately.
const (
	TxStatusPending   = "pending"
	TxStatusAvailable = "available"
	TxStatusCompleted = "completed"
)

// Transaction is an append-only ledger record for a shop. Records are never
// deleted; the only in-place mutation is the pending -> available status flip
// on job completion.
type Transaction struct {
	ID     int64  `json:"id"`
	ShopID int    `json:"shopId"`
	Type   string `json:"type"`
	Amount int    `json:"amount"`
	Desc   string `json:"desc"`
	Status string `json:"status"`
	Date   string `json:"date"`
}
