package ledger

import "errors"

// Precondition-not-met results. These are informational no-ops: the attempted
// operation did not mutate any state.
var (
	ErrNoPendingFunds    = errors.New("no pending funds to clear")
	ErrNothingToWithdraw = errors.New("no available funds to withdraw")
)
