package api

import (
	"net/http"

	reqdto "shift-booking/internal/handler/dto/request"
	resdto "shift-booking/internal/handler/dto/response"
	"shift-booking/internal/usecase/commands"
	"shift-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	commands commands.ShiftCommands
	queries  queries.ShiftQueries
}

func NewShiftHandler(shiftCommands commands.ShiftCommands, shiftQueries queries.ShiftQueries) *ShiftHandler {
	return &ShiftHandler{
		commands: shiftCommands,
		queries:  shiftQueries,
	}
}

// @Summary List shifts
// @Description List shifts with their current status, optionally filtered by area and booking state
// @Tags shifts
// @Produce json
// @Param area query string false "Area" Enums(Helsinki, Tampere, Turku)
// @Param booked query bool false "Booking state"
// @Success 200 {array} resdto.ShiftResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shifts [get]
func (h *ShiftHandler) List(c *gin.Context) {
	var query reqdto.ListShiftsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithInvalidInput(c, err, "Invalid query parameters")
		return
	}

	views, err := h.queries.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromShiftViews(views))
}

// @Summary Get shift
// @Description Get one shift with its current status
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} resdto.ShiftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	var uri reqdto.ShiftURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithInvalidInput(c, err, "Invalid shift ID format")
		return
	}

	view, err := h.queries.Get(c.Request.Context(), uri.ShiftID())
	if err != nil {
		abortWithShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromShiftView(view))
}

// @Summary Shift overview
// @Description Shifts grouped by area, then by local calendar day
// @Tags shifts
// @Produce json
// @Param area query string false "Area" Enums(Helsinki, Tampere, Turku)
// @Success 200 {array} resdto.AreaScheduleResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shifts/overview [get]
func (h *ShiftHandler) Overview(c *gin.Context) {
	var query reqdto.OverviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithInvalidInput(c, err, "Invalid query parameters")
		return
	}

	views, err := h.queries.Overview(c.Request.Context(), query.AreaFilter())
	if err != nil {
		abortWithShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAreaSchedules(views))
}

// @Summary Booked shifts
// @Description Booked shifts grouped by day with total hours per day
// @Tags shifts
// @Produce json
// @Success 200 {object} resdto.BookedScheduleResponse
// @Router /api/shifts/booked [get]
func (h *ShiftHandler) Booked(c *gin.Context) {
	view, err := h.queries.Booked(c.Request.Context())
	if err != nil {
		abortWithShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookedSchedule(view))
}

// @Summary Book shift
// @Description Book a shift that has not started and does not overlap another booked shift in its area
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} resdto.ShiftMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/shifts/{id}/book [post]
func (h *ShiftHandler) Book(c *gin.Context) {
	var uri reqdto.ShiftURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithInvalidInput(c, err, "Invalid shift ID format")
		return
	}

	booked, err := h.commands.Book(c.Request.Context(), uri.ShiftID())
	if err != nil {
		abortWithShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMutatedShift(booked, "Shift booked successfully"))
}

// @Summary Cancel shift
// @Description Cancel a booked shift that has not started
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} resdto.ShiftMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/shifts/{id}/cancel [post]
func (h *ShiftHandler) Cancel(c *gin.Context) {
	var uri reqdto.ShiftURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithInvalidInput(c, err, "Invalid shift ID format")
		return
	}

	cancelled, err := h.commands.Cancel(c.Request.Context(), uri.ShiftID())
	if err != nil {
		abortWithShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMutatedShift(cancelled, "Shift cancelled successfully"))
}
