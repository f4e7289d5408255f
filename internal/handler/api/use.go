package api

import (
	"errors"
	"net/http"

	reqdto "github.com/djsutherland/chips-with-friends/internal/handler/dto/request"
	resdto "github.com/djsutherland/chips-with-friends/internal/handler/dto/response"
	"github.com/djsutherland/chips-with-friends/internal/handler/httperr"
	"github.com/djsutherland/chips-with-friends/internal/handler/middleware"
	"github.com/djsutherland/chips-with-friends/internal/usecase/commands"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UseHandler struct {
	cmds commands.UseCommands
	q    queries.UseQueries
}

func NewUseHandler(cmds commands.UseCommands, q queries.UseQueries) *UseHandler {
	return &UseHandler{cmds: cmds, q: q}
}

// @Summary Pick a card
// @Description Choose the best card to use right now and record a pending use for it
// @Tags uses
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.PickResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /uses/pick [post]
func (h *UseHandler) Pick(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.PickCard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, commands.ErrNoEligibleCard) {
			httperr.AbortWithError(c, http.StatusConflict, err, "No card is eligible right now", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Pick failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPickResult(result))
}

// @Summary Record a specific card use
// @Description Record a use for an explicitly chosen card, bypassing selection
// @Tags uses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SpecificUseRequest true "Specific use request"
// @Success 201 {object} resdto.PickResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /uses/specific [post]
func (h *UseHandler) RecordSpecific(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.SpecificUseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.RecordSpecificUse(c.Request.Context(), commands.RecordSpecificUseRequest{
		CardID:       req.CardID,
		UsedAt:       req.UsedAt,
		Confirmed:    req.Confirmed,
		RedeemedFree: req.RedeemedFree,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCardNotFoundUse):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Card not found", nil)
		case errors.Is(err, commands.ErrSpecificInFuture):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Use timestamp is in the future", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Record use failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPickResult(result))
}

// @Summary Confirm use
// @Description Confirm a pending use, optionally marking that a free reward was redeemed
// @Tags uses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Use ID"
// @Param request body reqdto.ConfirmUseRequest true "Confirm use request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /uses/{id}/confirm [post]
func (h *UseHandler) Confirm(c *gin.Context) {
	id, actorID, role, ok := h.useActor(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmUseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	err := h.cmds.ConfirmUse(c.Request.Context(), id, actorID, role, req.RedeemedFree)
	if err != nil {
		h.abortUseWriteError(c, err, "Confirm use failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel use
// @Description Cancel a use so it never counts toward any total
// @Tags uses
// @Security BearerAuth
// @Param id path string true "Use ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /uses/{id} [delete]
func (h *UseHandler) Cancel(c *gin.Context) {
	id, actorID, role, ok := h.useActor(c)
	if !ok {
		return
	}

	err := h.cmds.CancelUse(c.Request.Context(), id, actorID, role)
	if err != nil {
		h.abortUseWriteError(c, err, "Cancel use failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get use
// @Description Get one use with its card and user
// @Tags uses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Use ID"
// @Success 200 {object} resdto.UseDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /uses/{id} [get]
func (h *UseHandler) Get(c *gin.Context) {
	id, actorID, role, ok := h.useActor(c)
	if !ok {
		return
	}

	view, err := h.q.GetUse(c.Request.Context(), id, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Use not found", nil)
		case errors.Is(err, queries.ErrUseAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load use", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUseDetailView(view))
}

// @Summary List my uses
// @Description List the caller's use history with the pending confirmation count
// @Tags uses
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.UseHistoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /uses [get]
func (h *UseHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var q reqdto.ListUsesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	history, err := h.q.ListMyUses(c.Request.Context(), userID, q.Limit, q.After)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list uses", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUseHistory(history))
}

func (h *UseHandler) useActor(c *gin.Context) (uuid.UUID, uuid.UUID, string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, "", false
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return id, actorID, role.String(), true
}

func (h *UseHandler) abortUseWriteError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrUseNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Use not found", nil)
	case errors.Is(err, commands.ErrUseNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
