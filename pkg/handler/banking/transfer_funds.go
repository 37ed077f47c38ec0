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

// TransferFundsHandler moves money between two accounts: debit the source
// vault, append a TransferSent row, credit the destination vault, append a
// TransferReceived row. The four mutations are one atomic unit; a failed
// credit must never leave the debit committed.
//
// The source and destination updates run sequentially on purpose; it keeps
// rollback ordering trivial.
type TransferFundsHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewTransferFundsHandler creates the handler.
func NewTransferFundsHandler(uow repository.UnitOfWork, logger *slog.Logger) *TransferFundsHandler {
	return &TransferFundsHandler{uow: uow, logger: logger}
}

// Handle runs the workflow.
func (h *TransferFundsHandler) Handle(
	ctx context.Context,
	cmd commands.TransferFunds,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With(
		"workflow", "TransferFunds",
		"customer_id", cmd.CustomerID,
		"destination_account_id", cmd.DestinationAccountID,
	)

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

			// Debit the source vault.
			sourceVault, err := uow.Vaults().GetByAccountID(ctx, account.ID)
			if err != nil {
				return err
			}
			if sourceVault == nil {
				return fmt.Errorf("vault for account %s not found", account.ID)
			}
			ok, err := uow.Vaults().Update(ctx, sourceVault.ID, dto.VaultUpdate{
				CurrentBalance: sourceVault.CurrentBalance.Sub(cmd.Amount),
				Currency:       sourceVault.Currency,
			})
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to transfer funds")
			}

			sent := transaction.NewDetails(transaction.TypeTransferSent, cmd.Amount, cmd.Currency)
			ok, err = uow.Transactions().Add(ctx, dto.TransactionCreate{
				ID:                uuid.New(),
				CustomerAccountID: link.ID,
				Type:              string(sent.Type),
				Amount:            sent.Amount,
				Currency:          sent.Currency,
				Description:       sent.Description,
				TransactionDate:   time.Now().UTC(),
			})
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to add transaction")
			}

			// Credit the destination vault.
			destVault, err := uow.Vaults().GetByAccountID(ctx, cmd.DestinationAccountID)
			if err != nil {
				return err
			}
			if destVault == nil {
				return fmt.Errorf("vault for account %s not found", cmd.DestinationAccountID)
			}
			ok, err = uow.Vaults().Update(ctx, destVault.ID, dto.VaultUpdate{
				CurrentBalance: destVault.CurrentBalance.Add(cmd.Amount),
				Currency:       destVault.Currency,
			})
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to transfer funds")
			}

			destLink, err := uow.CustomerAccounts().GetByAccountID(ctx, cmd.DestinationAccountID)
			if err != nil {
				return err
			}
			if destLink == nil {
				return fmt.Errorf("customer account for account %s not found", cmd.DestinationAccountID)
			}
			received := transaction.NewDetails(transaction.TypeTransferReceived, cmd.Amount, cmd.Currency)
			ok, err = uow.Transactions().Add(ctx, dto.TransactionCreate{
				ID:                uuid.New(),
				CustomerAccountID: destLink.ID,
				Type:              string(received.Type),
				Amount:            received.Amount,
				Currency:          received.Currency,
				Description:       received.Description,
				TransactionDate:   time.Now().UTC(),
			})
			if err != nil {
				return err
			}
			if !ok {
				return domain.NewValidationError("Failed to add transaction")
			}

			logger.Info("funds transferred",
				"source_account_id", account.ID, "amount", cmd.Amount)
			return nil
		}

		return domain.NewValidationError("Failed to transfer funds")
	})
	if err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			logger.Error("workflow step failed", "error", verr.Message)
			return result.Failure[bool](verr)
		}
		logger.Error("workflow fault", "error", err)
		return result.Failure[bool](domain.NewValidationError(
			"Exception while transferring funds: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}
