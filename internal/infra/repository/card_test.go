//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/infra/repository"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/tests/common/builder"
	repositorymock "github.com/djsutherland/chips-with-friends/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Card Tests
// =============================================================================

func TestCardRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCardWriteQueries, *card.Card, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: card created successfully",
			setupMock: func(mock *repositorymock.MockCardWriteQueries, c *card.Card, tx sqlc.DBTX) {
				mock.EXPECT().CreateCard(ctx, tx, gomock.Any()).Return(sqlc.Cards{ID: c.ID()}, nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCardWriteQueries, c *card.Card, tx sqlc.DBTX) {
				mock.EXPECT().CreateCard(ctx, tx, gomock.Any()).Return(sqlc.Cards{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate barcode",
			setupMock: func(mock *repositorymock.MockCardWriteQueries, c *card.Card, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateCard(ctx, tx, gomock.Any()).Return(sqlc.Cards{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCardWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCardRepository(mockQueries, mockDB)

			domainCard, err := builder.NewCardBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainCard, mockDB)

			cardID, actualError := repo.Create(ctx, mockDB, domainCard)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, cardID, "cardID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainCard.ID(), cardID)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
