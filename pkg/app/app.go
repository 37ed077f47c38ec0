// Package app is the composition root: it builds the unit of work and the
// dispatcher with every workflow handler registered.
package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/dispatch"
	"github.com/amirasaad/ledger/pkg/dto"
	accounthandler "github.com/amirasaad/ledger/pkg/handler/account"
	"github.com/amirasaad/ledger/pkg/handler/banking"
	transactionhandler "github.com/amirasaad/ledger/pkg/handler/transaction"
	vaulthandler "github.com/amirasaad/ledger/pkg/handler/vault"
	"github.com/amirasaad/ledger/pkg/repository"
)

// NewDispatcher wires all command and query handlers onto a dispatcher backed
// by the given unit of work.
func NewDispatcher(uow repository.UnitOfWork, logger *slog.Logger) *dispatch.Dispatcher {
	d := dispatch.New(logger)

	// Banking workflows.
	dispatch.RegisterCommand[commands.CreateBankAccount, bool](d, banking.NewCreateBankAccountHandler(uow, logger))
	dispatch.RegisterCommand[commands.DeleteBankAccount, bool](d, banking.NewDeleteBankAccountHandler(uow, logger))
	dispatch.RegisterCommand[commands.AddMoney, bool](d, banking.NewAddMoneyHandler(uow, logger))
	dispatch.RegisterCommand[commands.WithdrawMoney, bool](d, banking.NewWithdrawMoneyHandler(uow, logger))
	dispatch.RegisterCommand[commands.TransferFunds, bool](d, banking.NewTransferFundsHandler(uow, logger))
	dispatch.RegisterQuery[commands.GetTransactionHistory, banking.TransactionHistory](d, banking.NewGetTransactionHistoryHandler(uow, logger))

	// Administrative account workflows.
	dispatch.RegisterCommand[commands.CreateAccount, bool](d, accounthandler.NewCreateHandler(uow, logger))
	dispatch.RegisterCommand[commands.UpdateAccount, bool](d, accounthandler.NewUpdateHandler(uow, logger))
	dispatch.RegisterCommand[commands.DeleteAccount, bool](d, accounthandler.NewDeleteHandler(uow, logger))
	dispatch.RegisterQuery[commands.GetAccountByID, dto.AccountRead](d, accounthandler.NewGetHandler(uow, logger))

	// Administrative vault workflows.
	dispatch.RegisterCommand[commands.CreateVault, bool](d, vaulthandler.NewCreateHandler(uow, logger))
	dispatch.RegisterCommand[commands.UpdateVault, bool](d, vaulthandler.NewUpdateHandler(uow, logger))
	dispatch.RegisterCommand[commands.DeleteVault, bool](d, vaulthandler.NewDeleteHandler(uow, logger))
	dispatch.RegisterQuery[commands.GetVaultByID, dto.VaultRead](d, vaulthandler.NewGetHandler(uow, logger))

	// Transaction workflows.
	dispatch.RegisterCommand[commands.CreateTransaction, bool](d, transactionhandler.NewCreateHandler(uow, logger))
	dispatch.RegisterQuery[commands.GetTransactionByID, dto.TransactionRead](d, transactionhandler.NewGetHandler(uow, logger))
	dispatch.RegisterQuery[commands.GetTransactionsByAccountID, []dto.TransactionRead](d, transactionhandler.NewListByAccountHandler(uow, logger))

	return d
}
