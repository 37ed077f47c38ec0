// Package account contains the single-entity administrative workflows for
// bank Account rows. Each mutation is wrapped in its own unit-of-work scope
// with the same check-and-rollback shape as the multi-entity workflows.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	acct "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/result"
)

// CreateHandler creates a bare account row. Single-step, still transactional
// for symmetry with the multi-step workflows.
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
	cmd commands.CreateAccount,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "CreateAccount", "account_id", cmd.ID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		account := acct.New(cmd.ID, cmd.Type)
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
			"Exception while creating account: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}

// UpdateHandler replaces the type of an existing account.
type UpdateHandler struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewUpdateHandler creates the handler.
func NewUpdateHandler(uow repository.UnitOfWork, logger *slog.Logger) *UpdateHandler {
	return &UpdateHandler{uow: uow, logger: logger}
}

// Handle runs the workflow. A missing account reports the same step failure
// as a rejected write.
func (h *UpdateHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateAccount,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "UpdateAccount", "account_id", cmd.ID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		existing, err := uow.Accounts().Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.NewValidationError("Failed to update account")
		}
		ok, err := uow.Accounts().Update(ctx, cmd.ID, dto.AccountUpdate{Type: string(cmd.Type)})
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to update account")
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
			"Exception while updating account: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}

// DeleteHandler removes a single account row.
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
	cmd commands.DeleteAccount,
) result.Result[bool, domain.ValidationError] {
	logger := h.logger.With("workflow", "DeleteAccount", "account_id", cmd.ID)

	err := h.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ok, err := uow.Accounts().Delete(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("Failed to delete account")
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
			"Exception while deleting account: " + err.Error()))
	}
	return result.Success[bool, domain.ValidationError](true)
}

// GetHandler looks up one account by ID. Read-only; no transaction scope.
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
	query commands.GetAccountByID,
) result.Result[dto.AccountRead, domain.NotFoundError] {
	account, err := h.uow.Accounts().Get(ctx, query.ID)
	if err != nil {
		h.logger.Error("GetAccountByID fault", "account_id", query.ID, "error", err)
		return result.Failure[dto.AccountRead](domain.NewNotFoundError(
			"Exception while getting account: " + err.Error()))
	}
	if account == nil {
		return result.Failure[dto.AccountRead](domain.NewNotFoundError("Account not found"))
	}
	return result.Success[dto.AccountRead, domain.NotFoundError](*account)
}
