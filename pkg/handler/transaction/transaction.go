// Package transaction contains the administrative create workflow and the
// read workflows for transaction-history rows. Rows are append-only; there
// is deliberately no update handler.
package transaction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	txdomain "github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/result"
)

// CreateHandler appends a transaction row directly.
type CreateHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewCreateHandler creates the handler.
func NewCreateHandler(uow repository.UnitOfWork, logger *slog.Logger) *CreateHandler {
	return &CreateHandler{uow: uow, logger: logger}
}

// Handle runs the workflow.
func (h *CreateHandler) Handle(
	ctx context.Context,
	cmd commands.CreateTransaction,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "CreateTransaction", "transaction_id", cmd.ID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		tx := txdomain.New(cmd.ID, cmd.CustomerAccountID, cmd.Details, cmd.TransactionDateUTC)
		ok, err := uow.Transactions().Add(ctx, dto.TransactionCreate{
			ID:                tx.ID,
			CustomerAccountID: tx.CustomerAccountID,
			Type:              string(tx.Details.Type),
			Amount:            tx.Details.Amount,
			Currency:          tx.Details.Currency,
			Description:       tx.Details.Description,
			TransactionDate:   tx.TransactionDateTimeUTC,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to create transaction")
		}
		return nil
	})
	if err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			logger.Error("workflow step failed", "error", verr.Message)
			return result.Failure[bool](verr)
		}
		logger.Error("workflow fault", "error", err)
		return result.Failure[bool](domain.NewValidationError(
			"Exception while creating transaction: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}

// GetHandler looks up one transaction by ID. Read-only; no transaction scope.
type GetHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewGetHandler creates the handler.
func NewGetHandler(uow repository.UnitOfWork, logger *slog.Logger) *GetHandler {
	return &GetHandler{uow: uow, logger: logger}
}

// Handle runs the query.
func (h *GetHandler) Handle(
	ctx context.Context,
	query commands.GetTransactionByID,
) result.Result[dto.TransactionRead, domain.NotFoundError] {
	tx, err := h.uow.Transactions().Get(ctx, query.ID)
	if err != nil {
		h.logger.Error("GetTransactionByID fault", "transaction_id", query.ID, "error", err)
		return result.Failure[dto.TransactionRead](domain.NewNotFoundError(
			"Exception while getting transaction: " + err.Error()))
	}
	if tx == nil {
		return result.Failure[dto.TransactionRead](domain.NewNotFoundError("Transaction not found"))
	}
	return result.Success[dto.TransactionRead, domain.NotFoundError](*tx)
}

// ListByAccountHandler lists the transactions of one customer account.
type ListByAccountHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewListByAccountHandler creates the handler.
func NewListByAccountHandler(uow repository.UnitOfWork, logger *slog.Logger) *ListByAccountHandler {
	return &ListByAccountHandler{uow: uow, logger: logger}
}

// Handle runs the query.
func (h *ListByAccountHandler) Handle(
	ctx context.Context,
	query commands.GetTransactionsByAccountID,
) result.Result[[]dto.TransactionRead, domain.NotFoundError] {
	transactions, err := h.uow.Transactions().GetByAccountID(ctx, query.CustomerAccountID)
	if err != nil {
		h.logger.Error("GetTransactionsByAccountID fault",
			"customer_account_id", query.CustomerAccountID, "error", err)
		return result.Failure[[]dto.TransactionRead](domain.NewNotFoundError(
			"Exception while getting transactions"))
	}
	if len(transactions) == 0 {
		return result.Failure[[]dto.TransactionRead](domain.NewNotFoundError("Transactions not found"))
	}
	return result.Success[[]dto.TransactionRead, domain.NotFoundError](transactions)
}
