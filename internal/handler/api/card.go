package api

import (
	"errors"
	"net/http"

	"github.com/djsutherland/chips-with-friends/internal/domain/usage"
	reqdto "github.com/djsutherland/chips-with-friends/internal/handler/dto/request"
	resdto "github.com/djsutherland/chips-with-friends/internal/handler/dto/response"
	"github.com/djsutherland/chips-with-friends/internal/handler/httperr"
	"github.com/djsutherland/chips-with-friends/internal/usecase/commands"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardHandler struct {
	cmds commands.CardCommands
	q    queries.CardQueries
	uses queries.UseQueries
}

func NewCardHandler(cmds commands.CardCommands, q queries.CardQueries, uses queries.UseQueries) *CardHandler {
	return &CardHandler{cmds: cmds, q: q, uses: uses}
}

// @Summary Register card
// @Description Register a new barcode card for the group
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterCardRequest true "Register card request"
// @Success 201 {object} resdto.CardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cards [post]
func (h *CardHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.RegisterCard(c.Request.Context(), commands.RegisterCardRequest{
		Barcode:    req.Barcode,
		Registrant: req.Registrant,
		Phone:      req.Phone,
	})
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateBarcode) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Barcode already registered", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Register card failed", nil)
		return
	}

	view, err := h.q.GetCard(c.Request.Context(), result.CardID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load card", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCardView(view))
}

// @Summary List cards
// @Description List all cards with current month usage totals
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CardListItemResponse
// @Failure 401 {object} map[string]string
// @Router /cards [get]
func (h *CardHandler) List(c *gin.Context) {
	items, err := h.q.ListCards(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list cards", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardList(items))
}

// @Summary Get card
// @Description Get a card by ID
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 200 {object} resdto.CardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cards/{id} [get]
func (h *CardHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetCard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCardNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Card not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load card", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardView(view))
}

// @Summary List card uses
// @Description List a card's uses inside an inclusive day range
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.UseResponse
// @Failure 400 {object} map[string]string
// @Router /cards/{id}/uses [get]
func (h *CardHandler) ListUses(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var query reqdto.CardUsesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid range", nil)
		return
	}

	// Whole-day bounds: range end extends to the last instant of its day
	start := usage.DayWindow(query.From).Start
	end := usage.DayWindow(query.To).End

	views, err := h.uses.ListUsesForCard(c.Request.Context(), id, start, end)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidWindow) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Range start is after end", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list uses", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUseViews(views))
}
