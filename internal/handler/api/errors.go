package api

import (
	"net/http"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/handler/httperr"
	"shift-booking/internal/pkg/errs"
	"shift-booking/internal/usecase/commands"
	"shift-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyBooked = "ALREADY_BOOKED"
	CodeNotBooked     = "NOT_BOOKED"
	CodeShiftStarted  = "SHIFT_STARTED"
	CodeOverlap       = "OVERLAP"
	CodeConflict      = "CONFLICT"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternal      = "INTERNAL"
)

type errorMapping struct {
	target    error
	status    int
	code      string
	message   string
	retryable bool
}

var shiftErrorMappings = []errorMapping{
	{commands.ErrShiftNotFound, http.StatusNotFound, CodeNotFound, "Shift not found", false},
	{queries.ErrShiftNotFound, http.StatusNotFound, CodeNotFound, "Shift not found", false},
	{shift.ErrShiftStarted, http.StatusUnprocessableEntity, CodeShiftStarted, "Cannot book or cancel a shift that has already started", false},
	{shift.ErrAlreadyBooked, http.StatusConflict, CodeAlreadyBooked, "This shift is already booked", false},
	{shift.ErrNotBooked, http.StatusConflict, CodeNotBooked, "This shift is already cancelled or not booked", false},
	{shift.ErrOverlap, http.StatusConflict, CodeOverlap, "Cannot book this shift as it overlaps with another booked shift", false},
	{commands.ErrBookingConflict, http.StatusConflict, CodeConflict, "The shift was changed by another request, please try again", true},
}

func abortWithShiftError(c *gin.Context, err error) {
	for _, m := range shiftErrorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, &httperr.Detail{Code: m.code, Retryable: m.retryable})
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", &httperr.Detail{Code: CodeInternal})
}

func abortWithInvalidInput(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, &httperr.Detail{Code: CodeInvalidInput})
}
