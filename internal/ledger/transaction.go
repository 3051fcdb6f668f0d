package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a ledger entry.
type Kind string

const (
	KindCreation    Kind = "CREATION"
	KindDeposit     Kind = "DEPOSIT"
	KindWithdrawal  Kind = "WITHDRAWAL"
	KindTransferOut Kind = "TRANSFER_OUT"
	KindTransferIn  Kind = "TRANSFER_IN"
	KindPayment     Kind = "PAYMENT"
)

// Transaction is one immutable ledger entry. Amount is signed: positive for
// credits, negative for debits, zero only for the CREATION marker that opens
// every history. BalanceAfter snapshots the running balance right after the
// entry applied, so the sum of all amounts up to entry i always equals the
// BalanceAfter of entry i.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Kind         Kind            `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}
