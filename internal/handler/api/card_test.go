//go:build unit

package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/djsutherland/chips-with-friends/internal/domain/user"
	"github.com/djsutherland/chips-with-friends/internal/handler/api"
	resdto "github.com/djsutherland/chips-with-friends/internal/handler/dto/response"
	"github.com/djsutherland/chips-with-friends/internal/usecase/commands"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"
	"github.com/djsutherland/chips-with-friends/tests/common/builder"
	"github.com/djsutherland/chips-with-friends/tests/common/httptest"
	"github.com/djsutherland/chips-with-friends/tests/common/testutil"
	commandsmock "github.com/djsutherland/chips-with-friends/tests/mock/commands"
	queriesmock "github.com/djsutherland/chips-with-friends/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CardHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockCardCommands
	mockQueries    *queriesmock.MockCardQueries
	mockUseQueries *queriesmock.MockUseQueries
	handler        *api.CardHandler
}

func (s *CardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCardCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCardQueries(s.mockCtrl)
	s.mockUseQueries = queriesmock.NewMockUseQueries(s.mockCtrl)
	s.handler = api.NewCardHandler(s.mockCommands, s.mockQueries, s.mockUseQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		// Mock authenticated user
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	// Setup routes
	s.router.POST("/cards", authMiddleware, s.handler.Register)
	s.router.GET("/cards", authMiddleware, s.handler.List)
	s.router.GET("/cards/:id", authMiddleware, s.handler.Get)
	s.router.GET("/cards/:id/uses", authMiddleware, s.handler.ListUses)
}

func (s *CardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCardHandlerSuite(t *testing.T) {
	suite.Run(t, new(CardHandlerTestSuite))
}

type testCaseCard struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *CardHandlerTestSuite) TestRegister() {
	url := "/cards"

	reqBody := builder.NewCardBuilder().BuildRegisterRequestDTO()
	returnView := builder.NewCardBuilder().BuildViewQuery()
	expectedResult := &commands.RegisterCardResult{CardID: returnView.ID}

	// Validation boundary cases
	bound := []testCaseCard{
		{name: "barcode length OK (512 chars)", mutate: testutil.Field("barcode", strings.Repeat("7", 512)), expectCode: http.StatusCreated},
		{name: "barcode length invalid (513 chars)", mutate: testutil.Field("barcode", strings.Repeat("7", 513)), expectCode: http.StatusBadRequest},
		{name: "registrant length OK (100 chars)", mutate: testutil.Field("registrant", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "registrant length invalid (101 chars)", mutate: testutil.Field("registrant", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "phone omitted OK", mutate: testutil.Field("phone", nil), expectCode: http.StatusCreated},
		{name: "phone length invalid (33 chars)", mutate: testutil.Field("phone", strings.Repeat("5", 33)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseCard{
		{name: "missing field: barcode (required)", mutate: testutil.Field("barcode", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: registrant (required)", mutate: testutil.Field("registrant", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the stored card", func() {
		s.mockCommands.EXPECT().RegisterCard(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetCard(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Barcode, response.Barcode)
		s.Equal(returnView.Registrant, response.Registrant)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range append(bound, missing...) {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().RegisterCard(gomock.Any(), gomock.Any()).
						Return(expectedResult, nil)
					s.mockQueries.EXPECT().GetCard(gomock.Any(), returnView.ID).
						Return(returnView, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 409 Conflict when the barcode is already registered", func() {
		s.mockCommands.EXPECT().RegisterCard(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateBarcode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Barcode already registered")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *CardHandlerTestSuite) TestList() {
	url := "/cards"

	s.Run("success: returns cards with usage totals", func() {
		items := []*queries.CardListItem{
			builder.NewCardBuilder().BuildListItem(2, 14, 1),
			builder.NewCardBuilder().WithBarcode("CHIP-0002").BuildListItem(0, 0, 3),
		}
		s.mockQueries.EXPECT().ListCards(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.CardListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].Barcode, response[0].Barcode)
		s.Equal(items[0].UsesLeft, response[0].UsesLeft)
		s.Equal(items[1].MonthUses, response[1].MonthUses)
	})

	s.Run("success: returns empty array when no cards exist", func() {
		s.mockQueries.EXPECT().ListCards(gomock.Any()).Return([]*queries.CardListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.CardListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListCards(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list cards")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CardHandlerTestSuite) TestGet() {
	returnView := builder.NewCardBuilder().BuildViewQuery()
	url := "/cards/" + returnView.ID.String()

	s.Run("success: returns the card", func() {
		s.mockQueries.EXPECT().GetCard(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.WorstStatus, response.WorstStatus)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cards/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when the card does not exist", func() {
		s.mockQueries.EXPECT().GetCard(gomock.Any(), returnView.ID).
			Return(nil, queries.ErrCardNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Card not found")
	})
}

// ================================================================================
// TestListUses
// ================================================================================

func (s *CardHandlerTestSuite) TestListUses() {
	cardID := uuid.New()
	base := fmt.Sprintf("/cards/%s/uses", cardID)

	s.Run("success: returns uses inside the range", func() {
		views := []*queries.UseView{
			builder.NewUseBuilder().WithCardID(cardID).BuildViewQuery(),
			builder.NewUseBuilder().WithCardID(cardID).AsConfirmed().BuildViewQuery(),
		}
		s.mockUseQueries.EXPECT().
			ListUsesForCard(gomock.Any(), cardID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, start, end time.Time) ([]*queries.UseView, error) {
				// Day bounds are widened to whole days, both ends inclusive
				s.Equal(1, start.Day())
				s.Equal(0, start.Hour())
				s.Equal(23, end.Hour())
				return views, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2026-03-01&to=2026-03-15", nil, "bearer-token")

		var response []*resdto.UseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(cardID.String(), response[0].CardID)
	})

	s.Run("error: 400 when the range parameters are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid range")
	})

	s.Run("error: 400 when start is after end", func() {
		s.mockUseQueries.EXPECT().
			ListUsesForCard(gomock.Any(), cardID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2026-03-15&to=2026-03-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Range start is after end")
	})
}
