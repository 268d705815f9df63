package customers

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *database.Database) {
	t.Helper()
	db, err := database.NewDatabase(config.Database{
		Driver:   config.DatabaseDriverSQLite,
		Path:     filepath.Join(t.TempDir(), "customers.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.EnsureSchema(context.Background()))

	return NewRepository(db.DB), db
}

func customer(email, phone, cpf string) entities.Customer {
	return entities.Customer{Email: &email, Phone: &phone, NationalID: &cpf}
}

func TestRepository_CreateAndList(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, customer("a@a.com", "1", "111"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "a@a.com", *customers[0].Email)
	assert.Equal(t, "1", *customers[0].Phone)
	assert.Equal(t, "111", *customers[0].NationalID)
}

func TestRepository_Create_DuplicateCPF(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, customer("a@a.com", "1", "111"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, customer("b@b.com", "2", "111"))
	assert.ErrorIs(t, err, database.ErrDuplicate)

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1, "no second row may be inserted")
	assert.Equal(t, "a@a.com", *customers[0].Email)
}

func TestRepository_Create_ConcurrentDuplicateCPF(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	const writers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		duplicates int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, customer("race@a.com", "0", "777"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, database.ErrDuplicate):
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, writers-1, duplicates)
}

func TestRepository_Update(t *testing.T) {
	t.Run("replaces all fields", func(t *testing.T) {
		repo, _ := setupTestDB(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, customer("a@a.com", "1", "111"))
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, customer("new@a.com", "9", "999"))
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "new@a.com", *customers[0].Email)
		assert.Equal(t, "999", *customers[0].NationalID)
	})

	t.Run("rejects a CPF owned by another customer", func(t *testing.T) {
		repo, _ := setupTestDB(t)
		ctx := context.Background()

		_, err := repo.Create(ctx, customer("a@a.com", "1", "111"))
		require.NoError(t, err)
		second, err := repo.Create(ctx, customer("b@b.com", "2", "222"))
		require.NoError(t, err)

		_, err = repo.Update(ctx, second.ID, customer("b@b.com", "2", "111"))
		assert.ErrorIs(t, err, database.ErrDuplicate)

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "222", *customers[1].NationalID, "row must not be overwritten")
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		repo, _ := setupTestDB(t)

		_, err := repo.Update(context.Background(), 5, customer("a@a.com", "1", "111"))

		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("missing id is a no-op", func(t *testing.T) {
		repo, _ := setupTestDB(t)
		assert.NoError(t, repo.Delete(context.Background(), 123))
	})

	t.Run("rejects customer referenced by a loan", func(t *testing.T) {
		repo, db := setupTestDB(t)
		ctx := context.Background()

		c, err := repo.Create(ctx, customer("a@a.com", "1", "111"))
		require.NoError(t, err)
		book := entities.Book{}
		require.NoError(t, db.DB.Create(&book).Error)
		require.NoError(t, db.DB.Create(&entities.Loan{BookID: book.ID, CustomerID: c.ID}).Error)

		err = repo.Delete(ctx, c.ID)
		assert.ErrorIs(t, err, database.ErrReference)

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, customers, 1)
	})
}
