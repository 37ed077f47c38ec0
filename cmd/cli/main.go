// Command cli boots the ledger against a live database and runs a short
// demonstration sequence: open a bank account, deposit, withdraw, then print
// the transaction history.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/amirasaad/ledger/infra"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/dispatch"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/handler/banking"
	"github.com/amirasaad/ledger/pkg/result"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func main() {
	logger := app.NewLogger(config.Log{Level: "info", Format: "text", Prefix: "ledger"})
	cfg := config.Load(logger)
	logger = app.NewLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := infra.AutoMigrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	d := app.NewDispatcher(infrarepo.NewUoW(db), logger)
	ctx := context.Background()
	customerID := uuid.New()

	open := dispatch.Dispatch[commands.CreateBankAccount, bool](ctx, d, commands.CreateBankAccount{
		CustomerID: customerID,
		Type:       account.TypeSavings,
	})
	if failed(logger, "open bank account", open) {
		os.Exit(1)
	}

	deposit := dispatch.Dispatch[commands.AddMoney, bool](ctx, d, commands.AddMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(100),
		Currency:   "GBP",
	})
	if failed(logger, "deposit", deposit) {
		os.Exit(1)
	}

	withdraw := dispatch.Dispatch[commands.WithdrawMoney, bool](ctx, d, commands.WithdrawMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(40),
		Currency:   "GBP",
	})
	if failed(logger, "withdraw", withdraw) {
		os.Exit(1)
	}

	history := dispatch.Query[commands.GetTransactionHistory, banking.TransactionHistory](ctx, d, commands.GetTransactionHistory{
		CustomerID: customerID,
	})
	history.Switch(
		func(h banking.TransactionHistory) {
			for accountID, transactions := range h {
				for _, tx := range transactions {
					logger.Info("history entry",
						"account_id", accountID,
						"type", tx.Type,
						"amount", tx.Amount,
						"description", tx.Description,
					)
				}
			}
		},
		func(e domain.NotFoundError) {
			logger.Error("history lookup failed", "error", e.Message)
		},
	)
}

func failed(logger *slog.Logger, step string, r result.Result[bool, domain.ValidationError]) bool {
	if e, isErr := r.Err(); isErr {
		logger.Error(step+" failed", "error", e.Message)
		return true
	}
	return false
}
