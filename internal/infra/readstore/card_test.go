//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/infra/readstore"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	readstoremock "github.com/djsutherland/chips-with-friends/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// FindByID Tests
// =============================================================================

func TestCardReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockCardViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: card found",
			setupMock: func(mock *readstoremock.MockCardViewQueries, id uuid.UUID) {
				row := sqlc.Cards{
					ID:          id,
					Barcode:     "CHIP-0001",
					Registrant:  "Alice",
					Phone:       pgtype.Text{String: "555-0100", Valid: true},
					WorstStatus: 2,
					CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
					UpdatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
				}
				mock.EXPECT().GetCardByID(ctx, gomock.Any(), id).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: card not found",
			setupMock: func(mock *readstoremock.MockCardViewQueries, id uuid.UUID) {
				mock.EXPECT().GetCardByID(ctx, gomock.Any(), id).Return(sqlc.Cards{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *readstoremock.MockCardViewQueries, id uuid.UUID) {
				mock.EXPECT().GetCardByID(ctx, gomock.Any(), id).Return(sqlc.Cards{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockCardViewQueries(ctrl)
			store := readstore.NewCardReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, cardID)

			view, err := store.FindByID(ctx, cardID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				require.NotNil(t, view)
				assert.Equal(t, cardID, view.ID)
				assert.Equal(t, "medium", view.WorstStatus, "numeric status is rendered as its name")
				require.NotNil(t, view.Phone)
				assert.Equal(t, "555-0100", *view.Phone)
			}
		})
	}
}

// =============================================================================
// ListWithUseCounts Tests
// =============================================================================

func TestCardReadStore_ListWithUseCounts(t *testing.T) {
	ctx := context.Background()
	monthStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)

	t.Run("success: rows mapped with counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockCardViewQueries(ctrl)
		store := readstore.NewCardReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ListCardsWithUseCountsRow{
			{ID: uuid.New(), Barcode: "CHIP-0001", Registrant: "Alice", WorstStatus: 3, MonthUses: 4, TotalUses: 17},
			{ID: uuid.New(), Barcode: "CHIP-0002", Registrant: "Bob", Phone: pgtype.Text{}, WorstStatus: 0, MonthUses: 0, TotalUses: 0},
		}
		mockQueries.EXPECT().ListCardsWithUseCounts(ctx, gomock.Any(), gomock.Any()).Return(rows, nil)

		items, err := store.ListWithUseCounts(ctx, monthStart, monthEnd)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "hot", items[0].WorstStatus)
		assert.Equal(t, 4, items[0].MonthUses)
		assert.Equal(t, 17, items[0].TotalUses)
		assert.Nil(t, items[1].Phone, "missing phone maps to nil")
		assert.Equal(t, 0, items[1].MonthUses, "unused cards still appear")
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockCardViewQueries(ctrl)
		store := readstore.NewCardReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListCardsWithUseCounts(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListWithUseCounts(ctx, monthStart, monthEnd)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// UsageInWindow Tests
// =============================================================================

func TestCardReadStore_UsageInWindow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockCardViewQueries(ctrl)
	store := readstore.NewCardReadStore(mockQueries, &mockDBTX{})

	cardID := uuid.New()
	rows := []sqlc.CountUsesPerCardInWindowRow{
		{ID: cardID, WorstStatus: 1, UseCount: 5},
	}
	mockQueries.EXPECT().CountUsesPerCardInWindow(ctx, gomock.Any(), gomock.Any()).Return(rows, nil)

	views, err := store.UsageInWindow(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, cardID, views[0].CardID)
	assert.Equal(t, int16(1), views[0].WorstStatus)
	assert.Equal(t, 5, views[0].UseCount)
}
