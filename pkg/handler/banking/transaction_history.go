package banking

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/result"
	"github.com/google/uuid"
)

// TransactionHistory is the per-customer history aggregation, keyed by bank
// Account ID.
type TransactionHistory map[uuid.UUID][]dto.TransactionRead

// GetTransactionHistoryHandler fans out across all of a customer's accounts
// and aggregates their transaction lists. Read-only; no transaction scope.
type GetTransactionHistoryHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewGetTransactionHistoryHandler creates the handler.
func NewGetTransactionHistoryHandler(uow repository.UnitOfWork, logger *slog.Logger) *GetTransactionHistoryHandler {
	return &GetTransactionHistoryHandler{uow: uow, logger: logger}
}

// Handle runs the query.
func (h *GetTransactionHistoryHandler) Handle(
	ctx context.Context,
	query commands.GetTransactionHistory,
) result.Result[TransactionHistory, domain.NotFoundError] {
	logger := h.logger.With("workflow", "GetTransactionHistory", "customer_id", query.CustomerID)

	links, err := h.uow.CustomerAccounts().GetByCustomerID(ctx, query.CustomerID)
	if err != nil {
		logger.Error("workflow fault", "error", err)
		return result.Failure[TransactionHistory](domain.NewNotFoundError(
			"Exception while getting transaction history"))
	}

	history := make(TransactionHistory)
	for _, link := range links {
		transactions, err := h.uow.Transactions().GetByAccountID(ctx, link.ID)
		if err != nil {
			logger.Error("workflow fault", "error", err)
			return result.Failure[TransactionHistory](domain.NewNotFoundError(
				"Exception while getting transaction history"))
		}
		history[link.AccountID] = transactions
	}

	if len(history) == 0 {
		return result.Failure[TransactionHistory](domain.NewNotFoundError(
			"Transaction history not found"))
	}
	return result.Success[TransactionHistory, domain.NotFoundError](history)
}
