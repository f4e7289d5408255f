//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/infra/repository"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/tests/common/builder"
	repositorymock "github.com/djsutherland/chips-with-friends/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Use Tests
// =============================================================================

func TestUseRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockUseWriteQueries, sqlc.DBTX, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: use created",
			setupMock: func(mock *repositorymock.MockUseWriteQueries, tx sqlc.DBTX, id uuid.UUID) {
				mock.EXPECT().CreateCardUse(ctx, tx, gomock.Any()).Return(sqlc.CardUses{ID: id}, nil)
			},
			expectedError: false,
		},
		{
			name: "error: card no longer exists",
			setupMock: func(mock *repositorymock.MockUseWriteQueries, tx sqlc.DBTX, id uuid.UUID) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateCardUse(ctx, tx, gomock.Any()).Return(sqlc.CardUses{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockUseWriteQueries, tx sqlc.DBTX, id uuid.UUID) {
				mock.EXPECT().CreateCardUse(ctx, tx, gomock.Any()).Return(sqlc.CardUses{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUseWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUseRepository(mockQueries, mockDB)

			domainUse, err := builder.NewUseBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB, domainUse.ID())

			useID, actualError := repo.Create(ctx, mockDB, domainUse)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, useID)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainUse.ID(), useID)
			}
		})
	}
}

// =============================================================================
// Confirm Use Tests
// =============================================================================

func TestUseRepository_Confirm(t *testing.T) {
	ctx := context.Background()
	useID := uuid.New()

	t.Run("success: one row confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUseRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			ConfirmCardUse(ctx, mockDB, sqlc.ConfirmCardUseParams{ID: useID, RedeemedFree: true}).
			Return(int64(1), nil)

		affected, err := repo.Confirm(ctx, mockDB, useID, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("success: missing use reports zero rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUseRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			ConfirmCardUse(ctx, mockDB, gomock.Any()).
			Return(int64(0), nil)

		affected, err := repo.Confirm(ctx, mockDB, useID, false)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUseRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			ConfirmCardUse(ctx, mockDB, gomock.Any()).
			Return(int64(0), errors.New("database connection error"))

		_, err := repo.Confirm(ctx, mockDB, useID, false)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Delete Use Tests
// =============================================================================

func TestUseRepository_Delete(t *testing.T) {
	ctx := context.Background()
	useID := uuid.New()

	t.Run("success: row deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUseRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteCardUse(ctx, mockDB, useID).Return(int64(1), nil)

		affected, err := repo.Delete(ctx, mockDB, useID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUseRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteCardUse(ctx, mockDB, useID).Return(int64(0), errors.New("database connection error"))

		_, err := repo.Delete(ctx, mockDB, useID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
