package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds a balance and its append-only transaction history. Accounts
// are created only through Registry.CreateAccount, which validates inputs and
// assigns the number. Methods do not lock: the owning registry serializes
// every call, and callers outside the registry must go through it by account
// number.
type Account struct {
	number    int64
	holder    string
	holderID  string
	balance   decimal.Decimal
	history   []Transaction
	createdAt time.Time
}

// Summary is a read-only value snapshot of an account.
type Summary struct {
	Number           int64           `json:"number"`
	HolderName       string          `json:"holder_name"`
	HolderID         string          `json:"holder_id"`
	Balance          decimal.Decimal `json:"balance"`
	CreatedAt        time.Time       `json:"created_at"`
	TransactionCount int             `json:"transaction_count"`
}

func newAccount(number int64, holder, holderID string) (*Account, error) {
	holder = strings.TrimSpace(holder)
	holderID = strings.TrimSpace(holderID)
	if holder == "" {
		return nil, fmt.Errorf("%w: holder name is required", ErrInvalidInput)
	}
	if holderID == "" {
		return nil, fmt.Errorf("%w: holder id is required", ErrInvalidInput)
	}

	a := &Account{
		number:    number,
		holder:    holder,
		holderID:  holderID,
		balance:   decimal.Zero,
		createdAt: time.Now(),
	}
	a.record(KindCreation, decimal.Zero, "account opened")
	return a, nil
}

// record appends an entry carrying the balance as it stands now, so callers
// must mutate the balance first.
func (a *Account) record(kind Kind, amount decimal.Decimal, description string) {
	a.history = append(a.history, Transaction{
		ID:           uuid.New(),
		Timestamp:    time.Now(),
		Kind:         kind,
		Amount:       amount,
		Description:  description,
		BalanceAfter: a.balance,
	})
}

func (a *Account) Number() int64        { return a.number }
func (a *Account) HolderName() string   { return a.holder }
func (a *Account) HolderID() string     { return a.holderID }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Balance returns the current balance. Never negative.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit credits amount to the account.
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit of %s", ErrInvalidAmount, amount)
	}
	if strings.TrimSpace(description) == "" {
		description = "deposit"
	}
	a.balance = a.balance.Add(amount)
	a.record(KindDeposit, amount, description)
	return nil
}

// Withdraw debits amount from the account, keeping the balance non-negative.
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal of %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance is %s", ErrInsufficientFunds, a.balance)
	}
	if strings.TrimSpace(description) == "" {
		description = "withdrawal"
	}
	a.balance = a.balance.Sub(amount)
	a.record(KindWithdrawal, amount.Neg(), description)
	return nil
}

// PayBill debits amount like Withdraw but records a PAYMENT entry and
// requires the caller to say what was paid.
func (a *Account) PayBill(amount decimal.Decimal, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("%w: payment description is required", ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payment of %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance is %s", ErrInsufficientFunds, a.balance)
	}
	a.balance = a.balance.Sub(amount)
	a.record(KindPayment, amount.Neg(), description)
	return nil
}

// TransferTo moves amount into target, recording a TRANSFER_OUT leg here and
// a TRANSFER_IN leg on target. Every precondition is checked before either
// account is touched, so a failed transfer leaves both sides untouched.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal, description string) error {
	if target == nil || target == a {
		return fmt.Errorf("%w: transfer needs a distinct target account", ErrInvalidTarget)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer of %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance is %s", ErrInsufficientFunds, a.balance)
	}
	if strings.TrimSpace(description) == "" {
		description = "transfer"
	}

	a.balance = a.balance.Sub(amount)
	target.balance = target.balance.Add(amount)
	a.record(KindTransferOut, amount.Neg(), fmt.Sprintf("%s to account %d", description, target.number))
	target.record(KindTransferIn, amount, fmt.Sprintf("%s from account %d", description, a.number))
	return nil
}

// Statement returns the full history most-recent-first. The result is a copy
// and stays valid (and identical across calls) until the next mutation.
func (a *Account) Statement() []Transaction {
	out := make([]Transaction, len(a.history))
	for i, tx := range a.history {
		out[len(a.history)-1-i] = tx
	}
	return out
}

// Summary returns a value snapshot of the account.
func (a *Account) Summary() Summary {
	return Summary{
		Number:           a.number,
		HolderName:       a.holder,
		HolderID:         a.holderID,
		Balance:          a.balance,
		CreatedAt:        a.createdAt,
		TransactionCount: len(a.history),
	}
}
