package banking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/result"
	"github.com/google/uuid"
)

// AddMoneyHandler deposits into the first of the customer's accounts that
// still exists: the vault balance is replaced and a Deposit transaction is
// appended, both or neither.
type AddMoneyHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewAddMoneyHandler creates the handler.
func NewAddMoneyHandler(uow repository.UnitOfWork, logger *slog.Logger) *AddMoneyHandler {
	return &AddMoneyHandler{uow: uow, logger: logger}
}

// Handle runs the workflow.
func (h *AddMoneyHandler) Handle(
	ctx context.Context,
	cmd commands.AddMoney,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "AddMoney", "customer_id", cmd.CustomerID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		links, err := uow.CustomerAccounts().GetByCustomerID(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}

		for _, link := range links {
			account, err := uow.Accounts().Get(ctx, link.AccountID)
			if err != nil {
				return err
			}
			if account == nil {
				continue
			}

			vault, err := uow.Vaults().GetByAccountID(ctx, account.ID)
			if err != nil {
				return err
			}
			if vault == nil {
				return fmt.Errorf("vault for account %s not found", account.ID)
			}

			newBalance := vault.CurrentBalance.Add(cmd.Amount)
			ok, err := uow.Vaults().Update(ctx, vault.ID, dto.VaultUpdate{
				CurrentBalance: newBalance,
				Currency:       cmd.Currency,
			})
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to update vault")
			}

			details := transaction.NewDetails(transaction.TypeDeposit, cmd.Amount, cmd.Currency)
			ok, err = uow.Transactions().Add(ctx, dto.TransactionCreate{
				ID:                uuid.New(),
				CustomerAccountID: link.ID,
				Type:              string(details.Type),
				Amount:            details.Amount,
				Currency:          details.Currency,
				Description:       details.Description,
				TransactionDate:   time.Now().UTC(),
			})
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to add transaction")
			}

			logger.Info("money added", "account_id", account.ID, "amount", cmd.Amount)
			return nil
		}

		return domain.NewValidationError("Failed to add money")
	})
	if err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			logger.Error("workflow step failed", "error", verr.Message)
			return result.Failure[bool](verr)
		}
		logger.Error("workflow fault", "error", err)
		return result.Failure[bool](domain.NewValidationError(
			"Exception while adding money: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}
