package banking_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/handler/banking"
	"github.com/amirasaad/ledger/pkg/result"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// openAccount runs the CreateBankAccount workflow and returns the new
// account's ID via the customer link it created.
func openAccount(t *testing.T, store *testutils.Store, uow *testutils.UoW, customerID uuid.UUID) uuid.UUID {
	t.Helper()
	r := banking.NewCreateBankAccountHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.CreateBankAccount{CustomerID: customerID, Type: account.TypeCurrent},
	)
	require.True(t, r.IsSuccess())
	links := store.CustomerAccountsFor(customerID)
	require.Len(t, links, 1)
	return links[0].AccountID
}

func requireFailure(t *testing.T, r result.Result[bool, domain.ValidationError], message string) {
	t.Helper()
	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, message, e.Message)
}

func TestCreateBankAccountPersistsAccountVaultAndLink(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	customerID := uuid.New()

	accountID := openAccount(t, store, uow, customerID)

	assert.Equal(t, 1, store.AccountCount())
	vault := store.VaultByAccount(accountID)
	require.NotNil(t, vault)
	assert.True(t, vault.CurrentBalance.IsZero())
	assert.Equal(t, "GBP", vault.Currency)
}

func TestCreateBankAccountRollsBackWhenVaultWriteFails(t *testing.T) {
	store := testutils.NewStore()
	store.FailVaultAddOnCall = 1
	uow := testutils.NewUoW(store)

	r := banking.NewCreateBankAccountHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.CreateBankAccount{CustomerID: uuid.New(), Type: account.TypeSavings},
	)

	requireFailure(t, r, "Failed to create vault")
	assert.Equal(t, 0, store.AccountCount(), "account write must not survive the failed vault write")
}

func TestCreateBankAccountRollsBackWhenLinkWriteFails(t *testing.T) {
	store := testutils.NewStore()
	store.FailCustomerAddOnCall = 1
	uow := testutils.NewUoW(store)
	customerID := uuid.New()

	r := banking.NewCreateBankAccountHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.CreateBankAccount{CustomerID: customerID, Type: account.TypeSavings},
	)

	requireFailure(t, r, "Failed to create customer account")
	assert.Equal(t, 0, store.AccountCount())
	assert.Empty(t, store.CustomerAccountsFor(customerID))
}

func TestAddThenWithdrawMoney(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	customerID := uuid.New()
	accountID := openAccount(t, store, uow, customerID)
	ctx := context.Background()

	deposit := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(ctx, commands.AddMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(100),
		Currency:   "GBP",
	})
	require.True(t, deposit.IsSuccess())

	withdraw := banking.NewWithdrawMoneyHandler(uow, discardLogger()).Handle(ctx, commands.WithdrawMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(40),
		Currency:   "GBP",
	})
	require.True(t, withdraw.IsSuccess())

	vault := store.VaultByAccount(accountID)
	require.NotNil(t, vault)
	assert.True(t, vault.CurrentBalance.Equal(decimal.NewFromInt(60)),
		"balance is %s, want 60", vault.CurrentBalance)

	link := store.CustomerAccountsFor(customerID)[0]
	rows := store.TransactionsFor(link.ID)
	require.Len(t, rows, 2)
	assert.Equal(t, "Deposit", rows[0].Type)
	assert.Equal(t, "Money Deposited", rows[0].Description)
	assert.Equal(t, "Withdrawal", rows[1].Type)
	assert.Equal(t, "Money Withdrawn", rows[1].Description)
}

func TestWithdrawMoneyAllowsNegativeBalance(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	customerID := uuid.New()
	accountID := openAccount(t, store, uow, customerID)

	r := banking.NewWithdrawMoneyHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.WithdrawMoney{CustomerID: customerID, Amount: decimal.NewFromInt(25), Currency: "GBP"},
	)

	require.True(t, r.IsSuccess())
	vault := store.VaultByAccount(accountID)
	require.NotNil(t, vault)
	assert.True(t, vault.CurrentBalance.Equal(decimal.NewFromInt(-25)))
}

func TestAddMoneyFailsWhenCustomerHasNoAccounts(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)

	r := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.AddMoney{CustomerID: uuid.New(), Amount: decimal.NewFromInt(10), Currency: "GBP"},
	)

	requireFailure(t, r, "Failed to add money")
}

func TestWithdrawMoneyFailsWhenCustomerHasNoAccounts(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)

	r := banking.NewWithdrawMoneyHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.WithdrawMoney{CustomerID: uuid.New(), Amount: decimal.NewFromInt(10), Currency: "GBP"},
	)

	requireFailure(t, r, "Failed to withdraw money")
}

func TestAddMoneyRollsBackWhenTransactionWriteFails(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	customerID := uuid.New()
	accountID := openAccount(t, store, uow, customerID)
	store.FailTransactionAddOnCall = 1

	r := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.AddMoney{CustomerID: customerID, Amount: decimal.NewFromInt(100), Currency: "GBP"},
	)

	requireFailure(t, r, "Failed to add transaction")
	vault := store.VaultByAccount(accountID)
	require.NotNil(t, vault)
	assert.True(t, vault.CurrentBalance.IsZero(), "vault update must roll back with the failed transaction write")
	assert.Equal(t, 0, store.TransactionCount())
}

func TestAddMoneyReportsFaultFromStore(t *testing.T) {
	store := testutils.NewStore()
	store.Fault = assert.AnError
	uow := testutils.NewUoW(store)

	r := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.AddMoney{CustomerID: uuid.New(), Amount: decimal.NewFromInt(10), Currency: "GBP"},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Exception while adding money: "+assert.AnError.Error(), e.Message)
}

func TestTransferFundsMovesBalancesAndWritesBothRows(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	ctx := context.Background()
	sourceCustomer := uuid.New()
	destCustomer := uuid.New()
	sourceAccountID := openAccount(t, store, uow, sourceCustomer)
	destAccountID := openAccount(t, store, uow, destCustomer)

	seed := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(ctx, commands.AddMoney{
		CustomerID: sourceCustomer,
		Amount:     decimal.NewFromInt(100),
		Currency:   "GBP",
	})
	require.True(t, seed.IsSuccess())

	r := banking.NewTransferFundsHandler(uow, discardLogger()).Handle(ctx, commands.TransferFunds{
		CustomerID:           sourceCustomer,
		DestinationAccountID: destAccountID,
		Amount:               decimal.NewFromInt(25),
		Currency:             "GBP",
	})
	require.True(t, r.IsSuccess())

	sourceVault := store.VaultByAccount(sourceAccountID)
	destVault := store.VaultByAccount(destAccountID)
	require.NotNil(t, sourceVault)
	require.NotNil(t, destVault)
	assert.True(t, sourceVault.CurrentBalance.Equal(decimal.NewFromInt(75)))
	assert.True(t, destVault.CurrentBalance.Equal(decimal.NewFromInt(25)))

	sourceLink := store.CustomerAccountsFor(sourceCustomer)[0]
	destLink := store.CustomerAccountsFor(destCustomer)[0]
	sourceRows := store.TransactionsFor(sourceLink.ID)
	require.Len(t, sourceRows, 2)
	assert.Equal(t, "TransferSent", sourceRows[1].Type)
	assert.Equal(t, "Money Sent", sourceRows[1].Description)
	destRows := store.TransactionsFor(destLink.ID)
	require.Len(t, destRows, 1)
	assert.Equal(t, "TransferReceived", destRows[0].Type)
	assert.Equal(t, "Money Received", destRows[0].Description)
}

func TestTransferFundsRollsBackDebitWhenCreditFails(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	ctx := context.Background()
	sourceCustomer := uuid.New()
	destCustomer := uuid.New()
	sourceAccountID := openAccount(t, store, uow, sourceCustomer)
	destAccountID := openAccount(t, store, uow, destCustomer)

	seed := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(ctx, commands.AddMoney{
		CustomerID: sourceCustomer,
		Amount:     decimal.NewFromInt(100),
		Currency:   "GBP",
	})
	require.True(t, seed.IsSuccess())
	before := store.TransactionCount()

	// The seeding deposit was vault update call 1; the transfer's debit is
	// call 2 and its credit call 3.
	store.FailVaultUpdateOnCall = 3

	r := banking.NewTransferFundsHandler(uow, discardLogger()).Handle(ctx, commands.TransferFunds{
		CustomerID:           sourceCustomer,
		DestinationAccountID: destAccountID,
		Amount:               decimal.NewFromInt(25),
		Currency:             "GBP",
	})

	requireFailure(t, r, "Failed to transfer funds")
	sourceVault := store.VaultByAccount(sourceAccountID)
	destVault := store.VaultByAccount(destAccountID)
	require.NotNil(t, sourceVault)
	require.NotNil(t, destVault)
	assert.True(t, sourceVault.CurrentBalance.Equal(decimal.NewFromInt(100)),
		"debit must not survive the failed credit")
	assert.True(t, destVault.CurrentBalance.IsZero())
	assert.Equal(t, before, store.TransactionCount())
}

func TestTransferFundsReportsFaultWhenDestinationVaultMissing(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	sourceCustomer := uuid.New()
	openAccount(t, store, uow, sourceCustomer)

	r := banking.NewTransferFundsHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.TransferFunds{
			CustomerID:           sourceCustomer,
			DestinationAccountID: uuid.New(),
			Amount:               decimal.NewFromInt(5),
			Currency:             "GBP",
		},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Contains(t, e.Message, "Exception while transferring funds: ")
}

func TestDeleteBankAccountRemovesEverything(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	ctx := context.Background()
	customerID := uuid.New()
	openAccount(t, store, uow, customerID)

	deposit := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(ctx, commands.AddMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(50),
		Currency:   "GBP",
	})
	require.True(t, deposit.IsSuccess())

	r := banking.NewDeleteBankAccountHandler(uow, discardLogger()).Handle(ctx, commands.DeleteBankAccount{
		CustomerID: customerID,
	})

	require.True(t, r.IsSuccess())
	assert.Equal(t, 0, store.AccountCount())
	assert.Equal(t, 0, store.TransactionCount())
	assert.Empty(t, store.CustomerAccountsFor(customerID))
}

func TestDeleteBankAccountRollsBackWholeCascadeOnFailure(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	ctx := context.Background()
	customerID := uuid.New()
	accountID := openAccount(t, store, uow, customerID)

	deposit := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(ctx, commands.AddMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(50),
		Currency:   "GBP",
	})
	require.True(t, deposit.IsSuccess())

	store.FailAccountDeleteOnCall = 1

	r := banking.NewDeleteBankAccountHandler(uow, discardLogger()).Handle(ctx, commands.DeleteBankAccount{
		CustomerID: customerID,
	})

	requireFailure(t, r, "Failed to delete account")
	assert.Equal(t, 1, store.AccountCount())
	assert.NotNil(t, store.VaultByAccount(accountID), "vault deletion must roll back")
	assert.Equal(t, 1, store.TransactionCount(), "transaction deletions must roll back")
	assert.Len(t, store.CustomerAccountsFor(customerID), 1)
}

func TestGetTransactionHistoryGroupsByAccount(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	ctx := context.Background()
	customerID := uuid.New()
	accountID := openAccount(t, store, uow, customerID)

	deposit := banking.NewAddMoneyHandler(uow, discardLogger()).Handle(ctx, commands.AddMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(100),
		Currency:   "GBP",
	})
	require.True(t, deposit.IsSuccess())
	withdraw := banking.NewWithdrawMoneyHandler(uow, discardLogger()).Handle(ctx, commands.WithdrawMoney{
		CustomerID: customerID,
		Amount:     decimal.NewFromInt(40),
		Currency:   "GBP",
	})
	require.True(t, withdraw.IsSuccess())

	r := banking.NewGetTransactionHistoryHandler(uow, discardLogger()).Handle(ctx, commands.GetTransactionHistory{
		CustomerID: customerID,
	})

	history, ok := r.Ok()
	require.True(t, ok)
	require.Len(t, history, 1)
	rows := history[accountID]
	require.Len(t, rows, 2)
	assert.Equal(t, "Money Deposited", rows[0].Description)
	assert.Equal(t, "Money Withdrawn", rows[1].Description)
}

func TestGetTransactionHistoryNotFoundForUnknownCustomer(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)

	r := banking.NewGetTransactionHistoryHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.GetTransactionHistory{CustomerID: uuid.New()},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Transaction history not found", e.Message)
}
