package sqlite

import (
	"context"
	"testing"

	"ctf/internal/domain/entity"
	domainerrors "ctf/internal/domain/errors"
	"ctf/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_DuplicateDoesNotAbortTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewUserRepository(db).Create(ctx, &entity.User{Username: "admin", PasswordHash: "h"}))

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		users := f.NewUserRepository()

		dupErr := users.Create(ctx, &entity.User{Username: "admin", PasswordHash: "h2"})
		require.True(t, errors.Is(dupErr, domainerrors.ErrUserAlreadyExists))

		return users.Create(ctx, &entity.User{Username: "test", PasswordHash: "h3"})
	})
	require.NoError(t, err)

	count, err := NewUserRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewQuestionRepository().Create(ctx, newQuestion("Rolled Back", "Misc", "Easy", 10)); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	count, err := NewQuestionRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.NewUserRepository().Create(ctx, &entity.User{Username: "panicky", PasswordHash: "h"})
			panic("unexpected")
		})
	})

	count, err := NewUserRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
