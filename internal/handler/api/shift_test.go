//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/handler/api"
	resdto "shift-booking/internal/handler/dto/response"
	"shift-booking/internal/pkg/errs"
	"shift-booking/internal/usecase/commands"
	"shift-booking/internal/usecase/queries"
	"shift-booking/tests/common/builder"
	"shift-booking/tests/common/httptest"
	commandsmock "shift-booking/tests/mock/commands"
	queriesmock "shift-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShiftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockShiftCommands
	mockQueries  *queriesmock.MockShiftQueries
	handler      *api.ShiftHandler
}

func (s *ShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShiftCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockShiftQueries(s.mockCtrl)
	s.handler = api.NewShiftHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/shifts", s.handler.List)
	s.router.GET("/api/shifts/overview", s.handler.Overview)
	s.router.GET("/api/shifts/booked", s.handler.Booked)
	s.router.GET("/api/shifts/:id", s.handler.Get)
	s.router.POST("/api/shifts/:id/book", s.handler.Book)
	s.router.POST("/api/shifts/:id/cancel", s.handler.Cancel)
}

func (s *ShiftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShiftHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *ShiftHandlerTestSuite) TestList() {
	view := builder.NewShiftBuilder().BuildView()

	s.Run("success: no filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), shift.Filter{}).Return([]*queries.ShiftView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts", nil)

		var body []resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.Equal(view.StartTime, body[0].StartTime)
		s.Equal("available", body[0].Status)
	})

	s.Run("success: area and booked filter", func() {
		area := shift.AreaTurku
		booked := false
		s.mockQueries.EXPECT().List(gomock.Any(), shift.Filter{Area: &area, Booked: &booked}).Return([]*queries.ShiftView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts?area=Turku&booked=false", nil)

		var body []resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	invalid := []struct {
		name  string
		query string
	}{
		{"unknown area", "?area=Oulu"},
		{"lowercase area", "?area=helsinki"},
		{"non-boolean booked", "?booked=yes"},
	}
	for _, tc := range invalid {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts"+tc.query, nil)

			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidInput, false)
		})
	}

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection reset"), queries.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts", nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, api.CodeInternal, false)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ShiftHandlerTestSuite) TestGet() {
	view := builder.NewShiftBuilder().AsBooked().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts/"+view.ID.String(), nil)

		var body resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("booked", body.Status)
		s.InDelta(4.0, body.DurationHours, 1e-9)
	})

	s.Run("error: 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, queries.ErrShiftNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts/"+id.String(), nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, api.CodeNotFound, false)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts/12345", nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidInput, false)
	})
}

// ================================================================================
// TestBook / TestCancel
// ================================================================================

func (s *ShiftHandlerTestSuite) TestBook() {
	booked := builder.NewShiftBuilder().AsBooked().BuildDomain()
	path := fmt.Sprintf("/api/shifts/%s/book", booked.ID())

	s.Run("success: 200 with the booked shift", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), booked.ID()).Return(booked, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil)

		var body resdto.ShiftMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Shift booked successfully", body.Message)
		s.True(body.Shift.Booked)
		s.Equal("booked", body.Shift.Status)
	})

	errorCases := []struct {
		name      string
		err       error
		status    int
		code      string
		retryable bool
	}{
		{"not found", commands.ErrShiftNotFound, http.StatusNotFound, api.CodeNotFound, false},
		{"already booked", shift.ErrAlreadyBooked, http.StatusConflict, api.CodeAlreadyBooked, false},
		{"started", shift.ErrShiftStarted, http.StatusUnprocessableEntity, api.CodeShiftStarted, false},
		{"overlap", fmt.Errorf("%w: %s", shift.ErrOverlap, uuid.New()), http.StatusConflict, api.CodeOverlap, false},
		{"lost race twice", errs.Wrapf(commands.ErrBookingConflict, "book shift %s", booked.ID()), http.StatusConflict, api.CodeConflict, true},
		{"database failure", errs.Mark(errors.New("disk full"), commands.ErrDatabaseOperationFailed), http.StatusInternalServerError, api.CodeInternal, false},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Book(gomock.Any(), booked.ID()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil)

			httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code, tc.retryable)
		})
	}

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shifts/abc/book", nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidInput, false)
	})
}

func (s *ShiftHandlerTestSuite) TestCancel() {
	open := builder.NewShiftBuilder().BuildDomain()
	path := fmt.Sprintf("/api/shifts/%s/cancel", open.ID())

	s.Run("success: 200 with the open shift", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), open.ID()).Return(open, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil)

		var body resdto.ShiftMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Shift cancelled successfully", body.Message)
		s.False(body.Shift.Booked)
		s.Equal("available", body.Shift.Status)
	})

	s.Run("error: 409 when not booked", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), open.ID()).Return(nil, shift.ErrNotBooked)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, api.CodeNotBooked, false)
	})

	s.Run("error: 422 when started", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), open.ID()).Return(nil, shift.ErrShiftStarted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, api.CodeShiftStarted, false)
	})
}

// ================================================================================
// TestOverview / TestBooked
// ================================================================================

func (s *ShiftHandlerTestSuite) TestOverview() {
	view := builder.NewShiftBuilder().BuildView()
	schedule := []queries.AreaScheduleView{{
		Area: "Helsinki",
		Days: []queries.DayScheduleView{{Date: "2026-03-06", Shifts: []*queries.ShiftView{view}}},
	}}

	s.Run("success: all areas", func() {
		s.mockQueries.EXPECT().Overview(gomock.Any(), (*shift.Area)(nil)).Return(schedule, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts/overview", nil)

		var body []resdto.AreaScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("2026-03-06", body[0].Days[0].Date)
		s.Equal(view.ID, body[0].Days[0].Shifts[0].ID)
	})

	s.Run("success: one area", func() {
		area := shift.AreaHelsinki
		s.mockQueries.EXPECT().Overview(gomock.Any(), &area).Return(schedule, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts/overview?area=Helsinki", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for unknown area", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts/overview?area=Espoo", nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidInput, false)
	})
}

func (s *ShiftHandlerTestSuite) TestBooked() {
	view := builder.NewShiftBuilder().AsBooked().BuildView()

	s.Run("success: grouped days with hours", func() {
		s.mockQueries.EXPECT().Booked(gomock.Any()).Return(&queries.BookedScheduleView{
			Days:       []queries.BookedDayView{{Key: queries.DayKeyTomorrow, Shifts: []*queries.ShiftView{view}, TotalHours: 4}},
			HasExpired: true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shifts/booked", nil)

		var body resdto.BookedScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.HasExpired)
		s.Require().Len(body.Days, 1)
		s.Equal("Tomorrow", body.Days[0].Key)
		s.InDelta(4.0, body.Days[0].TotalHours, 1e-9)
	})
}
