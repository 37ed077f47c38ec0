package vault_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/pkg/commands"
	vaulthandler "github.com/amirasaad/ledger/pkg/handler/vault"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCreateVaultStartsAtZeroGBP(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	ctx := context.Background()
	id := uuid.New()
	accountID := uuid.New()

	created := vaulthandler.NewCreateHandler(uow, discardLogger()).Handle(ctx, commands.CreateVault{
		ID:        id,
		AccountID: accountID,
	})
	require.True(t, created.IsSuccess())

	got := vaulthandler.NewGetHandler(uow, discardLogger()).Handle(ctx, commands.GetVaultByID{ID: id})
	row, ok := got.Ok()
	require.True(t, ok)
	assert.Equal(t, accountID, row.AccountID)
	assert.True(t, row.CurrentBalance.IsZero())
	assert.Equal(t, "GBP", row.Currency)
}

func TestUpdateVaultReplacesBalance(t *testing.T) {
	store := testutils.NewStore()
	uow := testutils.NewUoW(store)
	ctx := context.Background()
	id := uuid.New()

	created := vaulthandler.NewCreateHandler(uow, discardLogger()).Handle(ctx, commands.CreateVault{
		ID:        id,
		AccountID: uuid.New(),
	})
	require.True(t, created.IsSuccess())

	updated := vaulthandler.NewUpdateHandler(uow, discardLogger()).Handle(ctx, commands.UpdateVault{
		ID:       id,
		Amount:   decimal.RequireFromString("12.50"),
		Currency: "EUR",
	})
	require.True(t, updated.IsSuccess())

	got := vaulthandler.NewGetHandler(uow, discardLogger()).Handle(ctx, commands.GetVaultByID{ID: id})
	row, ok := got.Ok()
	require.True(t, ok)
	assert.True(t, row.CurrentBalance.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "EUR", row.Currency)
}

func TestUpdateMissingVaultFails(t *testing.T) {
	uow := testutils.NewUoW(testutils.NewStore())

	r := vaulthandler.NewUpdateHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.UpdateVault{ID: uuid.New(), Amount: decimal.NewFromInt(1), Currency: "GBP"},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Failed to update vault", e.Message)
}

func TestDeleteMissingVaultFails(t *testing.T) {
	uow := testutils.NewUoW(testutils.NewStore())

	r := vaulthandler.NewDeleteHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.DeleteVault{ID: uuid.New()},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Failed to delete vault", e.Message)
}

func TestGetMissingVaultNotFound(t *testing.T) {
	uow := testutils.NewUoW(testutils.NewStore())

	r := vaulthandler.NewGetHandler(uow, discardLogger()).Handle(
		context.Background(),
		commands.GetVaultByID{ID: uuid.New()},
	)

	e, isErr := r.Err()
	require.True(t, isErr)
	assert.Equal(t, "Vault not found", e.Message)
}
