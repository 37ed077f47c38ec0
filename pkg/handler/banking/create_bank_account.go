// Package banking contains the multi-entity workflow handlers: opening and
// closing bank accounts, money movement and transaction history. Every
// mutating handler runs its repository writes inside one unit-of-work scope
// and maps the first failing step to a typed ValidationError.
package banking

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	acct "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	vaultdomain "github.com/amirasaad/ledger/pkg/domain/vault"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/result"
	"github.com/google/uuid"
)

// CreateBankAccountHandler opens a bank account for a customer: one Account,
// its Vault and the CustomerAccount link, created as an atomic triple.
type CreateBankAccountHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewCreateBankAccountHandler creates the handler.
func NewCreateBankAccountHandler(uow repository.UnitOfWork, logger *slog.Logger) *CreateBankAccountHandler {
	return &CreateBankAccountHandler{uow: uow, logger: logger}
}

// Handle runs the workflow. The first write that reports failure aborts all
// three.
func (h *CreateBankAccountHandler) Handle(
	ctx context.Context,
	cmd commands.CreateBankAccount,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "CreateBankAccount", "customer_id", cmd.CustomerID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		account := acct.New(uuid.New(), cmd.Type)
		ok, err := uow.Accounts().Add(ctx, dto.AccountCreate{
			ID:            account.ID,
			Type:          string(account.Type),
			SortCode:      account.SortCode,
			AccountNumber: account.AccountNumber,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to create account")
		}

		vault := vaultdomain.New(uuid.New(), account.ID)
		ok, err = uow.Vaults().Add(ctx, dto.VaultCreate{
			ID:             vault.ID,
			AccountID:      vault.AccountID,
			CurrentBalance: vault.Balance.Amount(),
			Currency:       vault.Balance.Currency(),
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to create vault")
		}

		link := customer.NewAccount(uuid.New(), cmd.CustomerID, account.ID)
		ok, err = uow.CustomerAccounts().Add(ctx, dto.CustomerAccountCreate{
			ID:         link.ID,
			CustomerID: link.CustomerID,
			AccountID:  link.AccountID,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to create customer account")
		}

		logger.Info("bank account opened", "account_id", account.ID)
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
			"Exception while creating bank account: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}
