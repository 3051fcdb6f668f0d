package seed

import (
	"github.com/charlles-dev/Unity-Bank/internal/ledger"
	"github.com/charlles-dev/Unity-Bank/internal/logger"
	"github.com/charlles-dev/Unity-Bank/internal/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var demoAccounts = []struct {
	Holder  string
	ID      string
	Deposit string
}{
	{"Ana Silva", "111.111.111-11", "1000.00"},
	{"Bruno Costa", "222.222.222-22", "500.00"},
	{"Carla Dias", "333.333.333-33", "250.00"},
}

// Run opens a few demo accounts with opening deposits so a fresh instance
// has something to show. Skipped when the registry already has accounts.
func Run(registry *ledger.Registry) {
	if len(registry.List()) > 0 {
		logger.Log.Info("seed skipped, registry not empty")
		return
	}

	for _, d := range demoAccounts {
		summary, err := registry.CreateAccount(d.Holder, d.ID)
		if err != nil {
			logger.Log.Fatal("seed account failed", zap.String("holder", d.Holder), zap.Error(err))
		}
		amount := decimal.RequireFromString(d.Deposit)
		if _, err := registry.Deposit(summary.Number, amount, "opening deposit"); err != nil {
			logger.Log.Fatal("seed deposit failed", zap.Int64("account", summary.Number), zap.Error(err))
		}
	}

	metrics.AccountsOpen.Set(float64(len(demoAccounts)))
	logger.Log.Info("seeded demo accounts", zap.Int("count", len(demoAccounts)))
}
