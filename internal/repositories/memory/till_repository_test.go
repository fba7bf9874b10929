package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/ahmedhedefa/cashier-ca-web/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTill(t *testing.T, name string, disabled ...string) domain.Till {
	t.Helper()
	flags := map[string]bool{}
	for _, n := range disabled {
		flags[n] = false
	}
	set, err := domain.DefaultCatalog().WithToggles(flags)
	require.NoError(t, err)
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Till{
		TillID:        uuid.NewString(),
		Name:          name,
		Denominations: set,
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: "op", LastUpdatedAt: now, LastUpdatedBy: "op", Version: 1},
	}
}

func TestTillRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTillRepository()
	till := newTill(t, "Front", "$100 bill")

	require.NoError(t, repo.SaveTill(ctx, till))

	got, err := repo.FindTillByID(ctx, till.TillID)
	require.NoError(t, err)
	assert.Equal(t, till, *got)

	// Mutating the returned copy must not leak into the store.
	got.Denominations[0].Enabled = true
	again, err := repo.FindTillByID(ctx, till.TillID)
	require.NoError(t, err)
	assert.Equal(t, []string{"$100 bill"}, again.Denominations.Disabled())
}

func TestTillRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTillRepository()

	require.NoError(t, repo.SaveTill(ctx, newTill(t, "Front")))
	err := repo.SaveTill(ctx, newTill(t, "front"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestTillRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTillRepository()

	_, err := repo.FindTillByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteTill(ctx, uuid.NewString()), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateTill(ctx, newTill(t, "ghost")), apperrors.ErrNotFound)
}

func TestTillRepository_ListSortedByName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTillRepository()

	empty, err := repo.ListTills(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"Patio", "Bar", "Front"} {
		require.NoError(t, repo.SaveTill(ctx, newTill(t, name)))
	}

	tills, err := repo.ListTills(ctx)
	require.NoError(t, err)
	require.Len(t, tills, 3)
	assert.Equal(t, "Bar", tills[0].Name)
	assert.Equal(t, "Front", tills[1].Name)
	assert.Equal(t, "Patio", tills[2].Name)
}

func TestTillRepository_UpdateChecksVersion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTillRepository()
	till := newTill(t, "Front")
	require.NoError(t, repo.SaveTill(ctx, till))

	set, err := till.Denominations.WithToggles(map[string]bool{"Nickel (5¢)": false})
	require.NoError(t, err)
	till.Denominations = set
	till.LastUpdatedBy = "op-2"
	till.Version = 2
	require.NoError(t, repo.UpdateTill(ctx, till))

	got, err := repo.FindTillByID(ctx, till.TillID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nickel (5¢)"}, got.Denominations.Disabled())
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, "op-2", got.LastUpdatedBy)
	assert.Equal(t, "Front", got.Name)

	// Replaying the same version is a stale write.
	assert.ErrorIs(t, repo.UpdateTill(ctx, till), apperrors.ErrNotFound)
}

func TestTillRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTillRepository()
	till := newTill(t, "Front")
	require.NoError(t, repo.SaveTill(ctx, till))

	require.NoError(t, repo.DeleteTill(ctx, till.TillID))
	_, err := repo.FindTillByID(ctx, till.TillID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTillRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTillRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		till := newTill(t, uuid.NewString())
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.SaveTill(ctx, till)
			_, _ = repo.ListTills(ctx)
		}()
	}
	wg.Wait()

	tills, err := repo.ListTills(ctx)
	require.NoError(t, err)
	assert.Len(t, tills, 20)
}
