// Package vault contains the single-entity administrative workflows for
// Vault rows.
package vault

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/money"
	vaultdomain "github.com/amirasaad/ledger/pkg/domain/vault"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/result"
)

// CreateHandler creates a vault with the default 0 GBP starting balance.
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
	cmd commands.CreateVault,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "CreateVault", "vault_id", cmd.ID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		vault := vaultdomain.New(cmd.ID, cmd.AccountID)
		ok, err := uow.Vaults().Add(ctx, dto.VaultCreate{
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
			"Exception while creating vault: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}

// UpdateHandler replaces a vault's balance outright.
type UpdateHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewUpdateHandler creates the handler.
func NewUpdateHandler(uow repository.UnitOfWork, logger *slog.Logger) *UpdateHandler {
	return &UpdateHandler{uow: uow, logger: logger}
}

// Handle runs the workflow.
func (h *UpdateHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateVault,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "UpdateVault", "vault_id", cmd.ID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		existing, err := uow.Vaults().Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.NewValidationError("Failed to update vault")
		}
		vault := vaultdomain.NewFromData(existing.ID, existing.AccountID,
			money.New(existing.CurrentBalance, existing.Currency))
		vault.SetBalance(cmd.Amount, cmd.Currency)
		ok, err := uow.Vaults().Update(ctx, cmd.ID, dto.VaultUpdate{
			CurrentBalance: vault.Balance.Amount(),
			Currency:       vault.Balance.Currency(),
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to update vault")
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
			"Exception while updating vault: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}

// DeleteHandler removes a single vault row.
type DeleteHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewDeleteHandler creates the handler.
func NewDeleteHandler(uow repository.UnitOfWork, logger *slog.Logger) *DeleteHandler {
	return &DeleteHandler{uow: uow, logger: logger}
}

// Handle runs the workflow.
func (h *DeleteHandler) Handle(
	ctx context.Context,
	cmd commands.DeleteVault,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "DeleteVault", "vault_id", cmd.ID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ok, err := uow.Vaults().Delete(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to delete vault")
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
			"Exception while deleting vault: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}

// GetHandler looks up one vault by ID. Read-only; no transaction scope.
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
	query commands.GetVaultByID,
) result.Result[dto.VaultRead, domain.NotFoundError] {
	vault, err := h.uow.Vaults().Get(ctx, query.ID)
	if err != nil {
		h.logger.Error("GetVaultByID fault", "vault_id", query.ID, "error", err)
		return result.Failure[dto.VaultRead](domain.NewNotFoundError(
			"Exception while getting Vault: " + err.Error()))
	}
	if vault == nil {
		return result.Failure[dto.VaultRead](domain.NewNotFoundError("Vault not found"))
	}
	return result.Success[dto.VaultRead, domain.NotFoundError](*vault)
}
