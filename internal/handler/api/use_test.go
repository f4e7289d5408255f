//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

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

type UseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUseCommands
	mockQueries  *queriesmock.MockUseQueries
	handler      *api.UseHandler
	actorID      uuid.UUID
}

func (s *UseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUseQueries(s.mockCtrl)
	s.handler = api.NewUseHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		// Mock authenticated user
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	// Setup routes
	s.router.POST("/uses/pick", authMiddleware, s.handler.Pick)
	s.router.POST("/uses/specific", authMiddleware, s.handler.RecordSpecific)
	s.router.POST("/uses/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.DELETE("/uses/:id", authMiddleware, s.handler.Cancel)
	s.router.GET("/uses/:id", authMiddleware, s.handler.Get)
	s.router.GET("/uses", authMiddleware, s.handler.ListMine)
}

func (s *UseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUseHandlerSuite(t *testing.T) {
	suite.Run(t, new(UseHandlerTestSuite))
}

// ================================================================================
// TestPick
// ================================================================================

func (s *UseHandlerTestSuite) TestPick() {
	url := "/uses/pick"

	s.Run("success: returns 201 Created with the chosen card", func() {
		snap := builder.NewCardBuilder().BuildSnapshot()
		expectedResult := &commands.PickResult{UseID: uuid.New(), Card: snap}

		s.mockCommands.EXPECT().PickCard(gomock.Any(), s.actorID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PickResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.UseID.String(), response.UseID)
		s.Equal(snap.Barcode, response.Barcode)
		s.Equal(snap.WorstStatus, response.WorstStatus)
	})

	s.Run("error: 409 Conflict when every card is excluded today", func() {
		s.mockCommands.EXPECT().PickCard(gomock.Any(), s.actorID).
			Return(nil, commands.ErrNoEligibleCard).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No card is eligible right now")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on command failure", func() {
		s.mockCommands.EXPECT().PickCard(gomock.Any(), s.actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Pick failed")
	})
}

// ================================================================================
// TestRecordSpecific
// ================================================================================

func (s *UseHandlerTestSuite) TestRecordSpecific() {
	url := "/uses/specific"

	reqBody := builder.NewUseBuilder().BuildSpecificRequestDTO()
	snap := builder.NewCardBuilder().BuildSnapshot()
	expectedResult := &commands.PickResult{UseID: uuid.New(), Card: snap}

	s.Run("success: returns 201 Created for an explicit card", func() {
		s.mockCommands.EXPECT().RecordSpecificUse(gomock.Any(), gomock.Any(), s.actorID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PickResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.UseID.String(), response.UseID)
	})

	s.Run("error: 400 when card_id is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("card_id", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "card not found",
				commandsError:  commands.ErrCardNotFoundUse,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Card not found",
			},
			{
				name:           "timestamp in the future",
				commandsError:  commands.ErrSpecificInFuture,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Use timestamp is in the future",
			},
			{
				name:           "generic failure",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Record use failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RecordSpecificUse(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *UseHandlerTestSuite) TestConfirm() {
	useID := uuid.New()
	url := "/uses/" + useID.String() + "/confirm"
	reqBody := map[string]any{"redeemed_free": true}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			ConfirmUse(gomock.Any(), useID, s.actorID, user.RoleMember.String(), true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/uses/not-a-uuid/confirm", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when the use does not exist", func() {
		s.mockCommands.EXPECT().
			ConfirmUse(gomock.Any(), useID, s.actorID, user.RoleMember.String(), true).
			Return(commands.ErrUseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Use not found")
	})

	s.Run("error: 403 when the use belongs to someone else", func() {
		s.mockCommands.EXPECT().
			ConfirmUse(gomock.Any(), useID, s.actorID, user.RoleMember.String(), true).
			Return(commands.ErrUseNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *UseHandlerTestSuite) TestCancel() {
	useID := uuid.New()
	url := "/uses/" + useID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			CancelUse(gomock.Any(), useID, s.actorID, user.RoleMember.String()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the use does not exist", func() {
		s.mockCommands.EXPECT().
			CancelUse(gomock.Any(), useID, s.actorID, user.RoleMember.String()).
			Return(commands.ErrUseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Use not found")
	})

	s.Run("error: 403 when the use belongs to someone else", func() {
		s.mockCommands.EXPECT().
			CancelUse(gomock.Any(), useID, s.actorID, user.RoleMember.String()).
			Return(commands.ErrUseNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *UseHandlerTestSuite) TestGet() {
	returnView := builder.NewUseBuilder().BuildDetailView()
	url := "/uses/" + returnView.ID.String()

	s.Run("success: returns the use with card and user", func() {
		s.mockQueries.EXPECT().
			GetUse(gomock.Any(), returnView.ID, s.actorID, user.RoleMember.String()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UseDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.Barcode, response.Barcode)
		s.Equal(returnView.UserEmail, response.UserEmail)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "use not found",
				queriesError:   queries.ErrUseNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Use not found",
			},
			{
				name:           "access denied",
				queriesError:   queries.ErrUseAccess,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to load use",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().
					GetUse(gomock.Any(), returnView.ID, s.actorID, user.RoleMember.String()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *UseHandlerTestSuite) TestListMine() {
	url := "/uses"

	s.Run("success: returns history with pending count", func() {
		history := &queries.UseHistory{
			Uses: []*queries.UseListItem{
				builder.NewUseBuilder().WithUserID(s.actorID).BuildListItem(),
				builder.NewUseBuilder().WithUserID(s.actorID).AsConfirmed().BuildListItem(),
			},
			PendingCount: 1,
		}
		s.mockQueries.EXPECT().ListMyUses(gomock.Any(), s.actorID, 0, "").
			Return(history, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UseHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Uses, 2)
		s.Equal(1, response.PendingCount)
		s.Empty(response.NextCursor)
	})

	s.Run("success: passes limit and cursor through and returns the next cursor", func() {
		history := &queries.UseHistory{
			Uses:         []*queries.UseListItem{builder.NewUseBuilder().WithUserID(s.actorID).BuildListItem()},
			PendingCount: 0,
			NextCursor:   "djE6MTcwOTI4MDAwMDAwMDAwMA",
		}
		s.mockQueries.EXPECT().ListMyUses(gomock.Any(), s.actorID, 1, "opaque-cursor").
			Return(history, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1&after=opaque-cursor", nil, "bearer-token")

		var response resdto.UseHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(history.NextCursor, response.NextCursor)
	})

	s.Run("error: 400 when the limit is out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=201", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on an undecodable cursor", func() {
		s.mockQueries.EXPECT().ListMyUses(gomock.Any(), s.actorID, 0, "not-a-cursor").
			Return(nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=not-a-cursor", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
