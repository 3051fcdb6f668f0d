package ledger

import (
	"errors"
	"testing"
)

func seedRegistry(t *testing.T) (*Registry, Summary, Summary) {
	t.Helper()
	r := NewRegistry("Test Bank")
	ana, err := r.CreateAccount("Ana Silva", "111")
	if err != nil {
		t.Fatalf("create ana: %v", err)
	}
	bruno, err := r.CreateAccount("Bruno Costa", "222")
	if err != nil {
		t.Fatalf("create bruno: %v", err)
	}
	return r, ana, bruno
}

func TestCreateAccount(t *testing.T) {
	r := NewRegistry("")
	if r.Name() != "Unity Bank" {
		t.Fatalf("default name=%q", r.Name())
	}

	ana, err := r.CreateAccount("  Ana Silva ", " 111 ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ana.Number != 1001 {
		t.Fatalf("first account number=%d, want 1001", ana.Number)
	}
	if ana.HolderName != "Ana Silva" || ana.HolderID != "111" {
		t.Fatalf("holder=%q id=%q, want trimmed values", ana.HolderName, ana.HolderID)
	}
	if !ana.Balance.IsZero() || ana.TransactionCount != 1 {
		t.Fatalf("new account balance=%s count=%d, want 0 balance and the creation entry", ana.Balance, ana.TransactionCount)
	}

	tests := []struct {
		name     string
		holder   string
		holderID string
		wantErr  error
	}{
		{name: "duplicate holder id", holder: "Other Person", holderID: "111", wantErr: ErrDuplicateHolder},
		{name: "duplicate holder id with whitespace", holder: "Other Person", holderID: "  111", wantErr: ErrDuplicateHolder},
		{name: "empty holder name", holder: " ", holderID: "333", wantErr: ErrInvalidInput},
		{name: "empty holder id", holder: "Carla Dias", holderID: "", wantErr: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.CreateAccount(tt.holder, tt.holderID); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
		})
	}

	// Failed creations must not consume account numbers.
	bruno, err := r.CreateAccount("Bruno Costa", "222")
	if err != nil {
		t.Fatal(err)
	}
	if bruno.Number != 1002 {
		t.Fatalf("second account number=%d, want 1002", bruno.Number)
	}
}

func TestLookupAndAuthenticate(t *testing.T) {
	r, ana, _ := seedRegistry(t)

	if got, ok := r.Lookup(ana.Number); !ok || got.Number != ana.Number {
		t.Fatalf("lookup(%d)=%v,%v", ana.Number, got, ok)
	}
	if _, ok := r.Lookup(9999); ok {
		t.Fatal("lookup of unknown number reported present")
	}

	if _, err := r.Authenticate(ana.Number); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := r.Authenticate(9999); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("err=%v, want ErrAccountNotFound", err)
	}
}

func TestRegistryOperationsRequireExistingAccount(t *testing.T) {
	r := NewRegistry("Test Bank")
	amount := dec(t, "10.00")

	if _, err := r.Deposit(9999, amount, ""); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("deposit err=%v", err)
	}
	if _, err := r.Withdraw(9999, amount, ""); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("withdraw err=%v", err)
	}
	if _, err := r.PayBill(9999, amount, "rent"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("paybill err=%v", err)
	}
	if _, err := r.Statement(9999); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("statement err=%v", err)
	}
	if err := r.RemoveAccount(9999); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("remove err=%v", err)
	}
}

func TestRegistryTransfer(t *testing.T) {
	r, ana, bruno := seedRegistry(t)
	if _, err := r.Deposit(ana.Number, dec(t, "1000.00"), ""); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		from    int64
		to      int64
		amount  string
		wantErr error
	}{
		{name: "unknown source", from: 9999, to: bruno.Number, amount: "10.00", wantErr: ErrAccountNotFound},
		{name: "unknown destination", from: ana.Number, to: 9999, amount: "10.00", wantErr: ErrAccountNotFound},
		{name: "same account", from: ana.Number, to: ana.Number, amount: "10.00", wantErr: ErrSameAccount},
		{name: "non-positive amount", from: ana.Number, to: bruno.Number, amount: "-1", wantErr: ErrInvalidAmount},
		{name: "insufficient funds", from: ana.Number, to: bruno.Number, amount: "2000.00", wantErr: ErrInsufficientFunds},
		{name: "success", from: ana.Number, to: bruno.Number, amount: "300.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, dest, err := r.Transfer(tt.from, tt.to, dec(t, tt.amount), "")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err=%v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("transfer: %v", err)
			}
			// The returned summaries come from the transfer's own
			// critical section and must already reflect both legs.
			if !source.Balance.Equal(dec(t, "700.00")) || !dest.Balance.Equal(dec(t, "300.00")) {
				t.Fatalf("returned balances=%s/%s, want 700.00/300.00", source.Balance, dest.Balance)
			}
		})
	}

	source, _ := r.Lookup(ana.Number)
	dest, _ := r.Lookup(bruno.Number)
	if !source.Balance.Equal(dec(t, "700.00")) || !dest.Balance.Equal(dec(t, "300.00")) {
		t.Fatalf("balances=%s/%s, want 700.00/300.00", source.Balance, dest.Balance)
	}
	// Failed attempts above must not have left stray entries: creation,
	// deposit and one transfer leg on the source; creation and one leg on
	// the destination.
	if source.TransactionCount != 3 || dest.TransactionCount != 2 {
		t.Fatalf("entry counts=%d/%d, want 3/2", source.TransactionCount, dest.TransactionCount)
	}
}

func TestList(t *testing.T) {
	r, _, _ := seedRegistry(t)
	if _, err := r.CreateAccount("Carla Dias", "333"); err != nil {
		t.Fatal(err)
	}

	all := r.List()
	if len(all) != 3 {
		t.Fatalf("list length=%d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Number >= all[i].Number {
			t.Fatalf("list not ascending by number: %d before %d", all[i-1].Number, all[i].Number)
		}
	}

	// Idempotent: a second call with no mutation in between is identical.
	again := r.List()
	for i := range all {
		if all[i] != again[i] {
			t.Fatalf("repeated lists differ at index %d", i)
		}
	}
}

func TestSearchByHolder(t *testing.T) {
	r, _, _ := seedRegistry(t)
	if _, err := r.CreateAccount("Ana Paula", "333"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		fragment string
		want     []string
	}{
		{name: "case-insensitive fragment", fragment: "ana", want: []string{"Ana Paula", "Ana Silva"}},
		{name: "exact name", fragment: "Bruno Costa", want: []string{"Bruno Costa"}},
		{name: "no match", fragment: "zzz", want: []string{}},
		// Documented choice: an empty fragment matches every account.
		{name: "empty fragment matches all", fragment: "", want: []string{"Ana Paula", "Ana Silva", "Bruno Costa"}},
		{name: "whitespace-only fragment matches all", fragment: "   ", want: []string{"Ana Paula", "Ana Silva", "Bruno Costa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SearchByHolder(tt.fragment)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].HolderName != want {
					t.Fatalf("result %d = %q, want %q (sorted by holder name)", i, got[i].HolderName, want)
				}
			}
		})
	}
}

func TestStatistics(t *testing.T) {
	r := NewRegistry("Test Bank")

	// Scenario: empty registry yields zeros and no extrema.
	empty := r.Statistics()
	if empty.Count != 0 || !empty.TotalBalance.IsZero() || !empty.MeanBalance.IsZero() {
		t.Fatalf("empty stats=%+v", empty)
	}
	if empty.MaxBalance != nil || empty.MinBalance != nil {
		t.Fatal("empty registry reported extrema")
	}

	ana, _ := r.CreateAccount("Ana Silva", "111")
	bruno, _ := r.CreateAccount("Bruno Costa", "222")
	if _, err := r.Deposit(ana.Number, dec(t, "900.00"), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Deposit(bruno.Number, dec(t, "100.00"), ""); err != nil {
		t.Fatal(err)
	}

	stats := r.Statistics()
	if stats.Count != 2 {
		t.Fatalf("count=%d, want 2", stats.Count)
	}
	if !stats.TotalBalance.Equal(dec(t, "1000.00")) {
		t.Fatalf("total=%s, want 1000.00", stats.TotalBalance)
	}
	if !stats.MeanBalance.Equal(dec(t, "500.00")) {
		t.Fatalf("mean=%s, want 500.00", stats.MeanBalance)
	}
	if stats.MaxBalance == nil || stats.MaxBalance.Number != ana.Number {
		t.Fatalf("max=%+v, want account %d", stats.MaxBalance, ana.Number)
	}
	if stats.MinBalance == nil || stats.MinBalance.Number != bruno.Number {
		t.Fatalf("min=%+v, want account %d", stats.MinBalance, bruno.Number)
	}
}

// Tied balances must not make the reported extrema depend on map iteration
// order: the lower account number wins, call after call.
func TestStatisticsTiedBalancesDeterministic(t *testing.T) {
	r, ana, bruno := seedRegistry(t)
	if _, err := r.Deposit(ana.Number, dec(t, "100.00"), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Deposit(bruno.Number, dec(t, "100.00"), ""); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		stats := r.Statistics()
		if stats.MaxBalance == nil || stats.MaxBalance.Number != ana.Number {
			t.Fatalf("call %d: max account=%+v, want %d", i, stats.MaxBalance, ana.Number)
		}
		if stats.MinBalance == nil || stats.MinBalance.Number != ana.Number {
			t.Fatalf("call %d: min account=%+v, want %d", i, stats.MinBalance, ana.Number)
		}
	}
}

// Scenario: removal is refused while funds remain, and freed numbers are
// never reassigned.
func TestRemoveAccount(t *testing.T) {
	r, ana, bruno := seedRegistry(t)

	if _, err := r.Deposit(ana.Number, dec(t, "50.00"), ""); err != nil {
		t.Fatal(err)
	}
	if err := r.RemoveAccount(ana.Number); !errors.Is(err, ErrNonZeroBalance) {
		t.Fatalf("err=%v, want ErrNonZeroBalance", err)
	}
	if _, ok := r.Lookup(ana.Number); !ok {
		t.Fatal("account vanished after refused removal")
	}

	if _, err := r.Withdraw(ana.Number, dec(t, "50.00"), ""); err != nil {
		t.Fatal(err)
	}
	if err := r.RemoveAccount(ana.Number); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := r.Lookup(ana.Number); ok {
		t.Fatal("removed account still present")
	}

	// Same holder id may open a fresh account, but the old number is gone
	// for good.
	again, err := r.CreateAccount("Ana Silva", "111")
	if err != nil {
		t.Fatalf("recreate after removal: %v", err)
	}
	if again.Number <= bruno.Number {
		t.Fatalf("number %d reused or non-increasing (last issued %d)", again.Number, bruno.Number)
	}
}

func TestAccountNumbersStrictlyIncrease(t *testing.T) {
	r := NewRegistry("Test Bank")
	last := int64(0)
	for i, id := range []string{"1", "2", "3", "4"} {
		s, err := r.CreateAccount("Holder", id)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if s.Number <= last {
			t.Fatalf("number %d not strictly increasing after %d", s.Number, last)
		}
		last = s.Number
	}
}
