package ledger

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Account numbers start here. The counter belongs to the registry instance
// and freed numbers are never reassigned.
const firstAccountNumber = 1001

// Registry is the aggregate root: it owns every account and is the only way
// to create, look up, mutate, or remove one. A single mutex serializes all
// operations so concurrent callers (the HTTP shell) cannot interleave the two
// legs of a transfer or race the holder-id uniqueness check. Accounts are
// never handed out by pointer; callers receive value snapshots keyed by
// account number.
type Registry struct {
	mu         sync.Mutex
	name       string
	nextNumber int64
	accounts   map[int64]*Account
}

// NewRegistry creates an empty registry. An empty name falls back to a
// generic one.
func NewRegistry(name string) *Registry {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Unity Bank"
	}
	return &Registry{
		name:       name,
		nextNumber: firstAccountNumber,
		accounts:   make(map[int64]*Account),
	}
}

// Name returns the institution name.
func (r *Registry) Name() string { return r.name }

// CreateAccount validates the holder data, enforces holder-id uniqueness and
// stores a new account under the next number. The number counter advances
// only on success.
func (r *Registry) CreateAccount(holderName, holderID string) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trimmedID := strings.TrimSpace(holderID)
	for _, a := range r.accounts {
		if a.holderID == trimmedID && trimmedID != "" {
			return Summary{}, fmt.Errorf("%w: %s", ErrDuplicateHolder, trimmedID)
		}
	}

	a, err := newAccount(r.nextNumber, holderName, holderID)
	if err != nil {
		return Summary{}, err
	}
	r.nextNumber++
	r.accounts[a.number] = a
	return a.Summary(), nil
}

// Lookup returns the account summary and whether the number is registered.
// Unknown numbers are not an error here; use Authenticate when the account
// must exist.
func (r *Registry) Lookup(number int64) (Summary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[number]
	if !ok {
		return Summary{}, false
	}
	return a.Summary(), true
}

// Authenticate returns the account summary or ErrAccountNotFound. All
// mutating flows route through the authenticated path.
func (r *Registry) Authenticate(number int64) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.authenticate(number)
	if err != nil {
		return Summary{}, err
	}
	return a.Summary(), nil
}

// authenticate resolves the live account. Callers must hold r.mu.
func (r *Registry) authenticate(number int64) (*Account, error) {
	a, ok := r.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, number)
	}
	return a, nil
}

// Deposit credits the account and returns its updated summary.
func (r *Registry) Deposit(number int64, amount decimal.Decimal, description string) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.authenticate(number)
	if err != nil {
		return Summary{}, err
	}
	if err := a.Deposit(amount, description); err != nil {
		return Summary{}, err
	}
	return a.Summary(), nil
}

// Withdraw debits the account and returns its updated summary.
func (r *Registry) Withdraw(number int64, amount decimal.Decimal, description string) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.authenticate(number)
	if err != nil {
		return Summary{}, err
	}
	if err := a.Withdraw(amount, description); err != nil {
		return Summary{}, err
	}
	return a.Summary(), nil
}

// PayBill debits the account as a bill payment and returns its updated
// summary.
func (r *Registry) PayBill(number int64, amount decimal.Decimal, description string) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.authenticate(number)
	if err != nil {
		return Summary{}, err
	}
	if err := a.PayBill(amount, description); err != nil {
		return Summary{}, err
	}
	return a.Summary(), nil
}

// Transfer moves amount between two registered accounts and returns both
// updated summaries. Both accounts are authenticated first, the same-account
// case is rejected, and both legs apply inside this one critical section or
// not at all, so the returned snapshots reflect exactly the post-transfer
// state.
func (r *Registry) Transfer(sourceNumber, destNumber int64, amount decimal.Decimal, description string) (Summary, Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	source, err := r.authenticate(sourceNumber)
	if err != nil {
		return Summary{}, Summary{}, err
	}
	dest, err := r.authenticate(destNumber)
	if err != nil {
		return Summary{}, Summary{}, err
	}
	if sourceNumber == destNumber {
		return Summary{}, Summary{}, fmt.Errorf("%w: %d", ErrSameAccount, sourceNumber)
	}
	if err := source.TransferTo(dest, amount, description); err != nil {
		return Summary{}, Summary{}, err
	}
	return source.Summary(), dest.Summary(), nil
}

// Statement returns the account's history, most recent first.
func (r *Registry) Statement(number int64) ([]Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.authenticate(number)
	if err != nil {
		return nil, err
	}
	return a.Statement(), nil
}

// List returns every account summary, ascending by account number.
func (r *Registry) List() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Summary, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// SearchByHolder returns summaries whose holder name contains the fragment,
// case-insensitively, ascending by holder name. An empty fragment matches
// every account.
func (r *Registry) SearchByHolder(fragment string) []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(fragment))
	out := make([]Summary, 0)
	for _, a := range r.accounts {
		if strings.Contains(strings.ToLower(a.holder), needle) {
			out = append(out, a.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HolderName != out[j].HolderName {
			return out[i].HolderName < out[j].HolderName
		}
		return out[i].Number < out[j].Number
	})
	return out
}

// Statistics aggregates balances across the registry.
type Statistics struct {
	Count        int             `json:"count"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	MeanBalance  decimal.Decimal `json:"mean_balance"`
	MaxBalance   *Summary        `json:"max_balance_account,omitempty"`
	MinBalance   *Summary        `json:"min_balance_account,omitempty"`
}

// Statistics computes count, total, mean and the extreme accounts. An empty
// registry yields zero counts and no extrema rather than an error. Ties on
// balance go to the lower account number, so repeated calls report the same
// extrema regardless of map iteration order.
func (r *Registry) Statistics() Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := Statistics{
		TotalBalance: decimal.Zero,
		MeanBalance:  decimal.Zero,
	}
	if len(r.accounts) == 0 {
		return stats
	}

	var max, min *Account
	for _, a := range r.accounts {
		stats.Count++
		stats.TotalBalance = stats.TotalBalance.Add(a.balance)
		if max == nil || a.balance.GreaterThan(max.balance) ||
			(a.balance.Equal(max.balance) && a.number < max.number) {
			max = a
		}
		if min == nil || a.balance.LessThan(min.balance) ||
			(a.balance.Equal(min.balance) && a.number < min.number) {
			min = a
		}
	}
	stats.MeanBalance = stats.TotalBalance.Div(decimal.NewFromInt(int64(stats.Count)))

	maxSummary := max.Summary()
	minSummary := min.Summary()
	stats.MaxBalance = &maxSummary
	stats.MinBalance = &minSummary
	return stats
}

// RemoveAccount deletes a zero-balance account. Its number is never handed
// out again; the history disappears with the account.
func (r *Registry) RemoveAccount(number int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.authenticate(number)
	if err != nil {
		return err
	}
	if !a.balance.IsZero() {
		return fmt.Errorf("%w: balance is %s", ErrNonZeroBalance, a.balance)
	}
	delete(r.accounts, number)
	return nil
}
