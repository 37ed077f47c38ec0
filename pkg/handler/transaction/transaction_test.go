package transaction_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/commands"
	txdomain "github.com/amirasaad/ledger/pkg/domain/transaction"
	txhandler "github.com/amirasaad/ledger/pkg/handler/transaction"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func appendRow(t *testing.T, uow *testutils.UoW, customerAccountID uuid.UUID, txType txdomain.Type) uuid.UUID {
	t.Helper()
	id := uuid.New()
	r := txhandler.NewCreateHandler(uow, discardLogger()).Handle(context.Background(), commands.CreateTransaction{
		ID:                 id,
		CustomerAccountID:  customerAccountID,
		Details:            txdomain.NewDetails(txType, decimal.NewFromInt(5), "GBP"),
		TransactionDateUTC: time.Now().UTC(),
	})
	require.True(t, r.IsSuccess())
	return id
}

func TestCreateThenGetTransaction(t *testing.T) {
	uow := testutils.NewUoW(testutils.NewStore())
	linkID := uuid.New()

	id := appendRow(t, uow, linkID, txdomain.TypeInterest)

	got := txhandler.NewGetHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.GetTransactionByID{ID: id},
	)
	row, ok := got.Ok()
	require.True(t, ok)
	assert.Equal(t, linkID, row.CustomerAccountID)
	assert.Equal(t, "Interest", row.Type)
	assert.Equal(t, "Interest Added", row.Description)
}

func TestListByAccountReturnsRowsInCreationOrder(t *testing.T) {
	uow := testutils.NewUoW(testutils.NewStore())
	linkID := uuid.New()

	appendRow(t, uow, linkID, txdomain.TypeCredit)
	appendRow(t, uow, linkID, txdomain.TypeDebit)
	appendRow(t, uow, uuid.New(), txdomain.TypeCharge)

	got := txhandler.NewListByAccountHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.GetTransactionsByAccountID{CustomerAccountID: linkID},
	)
	rows, ok := got.Ok()
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "Credit", rows[0].Type)
	assert.Equal(t, "Debit", rows[1].Type)
}

func TestGetMissingTransactionNotFound(t *testing.T) {
	uow := testutils.NewUoW(testutils.NewStore())

	r := txhandler.NewGetHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.GetTransactionByID{ID: uuid.New()},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Transaction not found", e.Message)
}

func TestListByAccountEmptyNotFound(t *testing.T) {
	uow := testutils.NewUoW(testutils.NewStore())

	r := txhandler.NewListByAccountHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.GetTransactionsByAccountID{CustomerAccountID: uuid.New()},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Transactions not found", e.Message)
}

func TestListByAccountFault(t *testing.T) {
	store := testutils.NewStore()
	store.Fault = assert.AnError
	uow := testutils.NewUoW(store)

	r := txhandler.NewListByAccountHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.GetTransactionsByAccountID{CustomerAccountID: uuid.New()},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Exception while getting transactions", e.Message)
}
