package banking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/result"
)

// DeleteBankAccountHandler closes every account a customer holds. For each
// account the cascade order is: transactions, vault, account, customer link.
// A single failed deletion rolls back the whole cascade across all of the
// customer's accounts, not just the failing one.
type DeleteBankAccountHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewDeleteBankAccountHandler creates the handler.
func NewDeleteBankAccountHandler(uow repository.UnitOfWork, logger *slog.Logger) *DeleteBankAccountHandler {
	return &DeleteBankAccountHandler{uow: uow, logger: logger}
}

// Handle runs the workflow.
func (h *DeleteBankAccountHandler) Handle(
	ctx context.Context,
	cmd commands.DeleteBankAccount,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "DeleteBankAccount", "customer_id", cmd.CustomerID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		links, err := uow.CustomerAccounts().GetByCustomerID(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}

		for _, link := range links {
			transactions, err := uow.Transactions().GetByAccountID(ctx, link.ID)
			if err != nil {
				return err
			}
			for _, tx := range transactions {
				ok, err := uow.Transactions().Delete(ctx, tx.ID)
				if err != nil {
					return err
				}
				if !ok {
					return domain.NewValidationError("Failed to delete transaction")
				}
			}

			account, err := uow.Accounts().Get(ctx, link.AccountID)
			if err != nil {
				return err
			}
			if account == nil {
				return fmt.Errorf("account %s not found", link.AccountID)
			}
			vault, err := uow.Vaults().GetByAccountID(ctx, account.ID)
			if err != nil {
				return err
			}
			if vault == nil {
				return fmt.Errorf("vault for account %s not found", account.ID)
			}
			ok, err := uow.Vaults().Delete(ctx, vault.ID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to delete vault")
			}

			ok, err = uow.Accounts().Delete(ctx, account.ID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to delete account")
			}

			ok, err = uow.CustomerAccounts().Delete(ctx, link.ID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to delete customer account")
			}
		}

		logger.Info("bank accounts closed", "count", len(links))
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
			"Exception while deleting bank account: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}
