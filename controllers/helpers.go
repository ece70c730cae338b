package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"campus-backend/services"
	"campus-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseRecordID accepts a record id as either a JSON number or a string
// ("5" / 5); the frontend sends whatever it scraped off the DOM.
func parseRecordID(v interface{}) (uint, error) {
	switch id := v.(type) {
	case float64:
		if id < 1 || id != float64(uint(id)) {
			return 0, fmt.Errorf("invalid id %v", v)
		}
		return uint(id), nil
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
		if err != nil || n == 0 {
			return 0, fmt.Errorf("invalid id %q", id)
		}
		return uint(n), nil
	default:
		return 0, fmt.Errorf("invalid id %v", v)
	}
}

// respondServiceError maps service sentinels onto HTTP statuses with
// machine-readable codes. Anything unmapped is an internal failure
// scoped to this one request.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidTimeFormat):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidTimeFormat",
			"times must be HH:MM and dates YYYY-MM-DD")
	case errors.Is(err, services.ErrInvalidTimeRange):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidTimeRange",
			"end time must be greater than start time")
	case errors.Is(err, services.ErrInvalidArrivalWindow):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidArrivalWindow",
			"expected arrival time must be between start and end time")
	case errors.Is(err, services.ErrRoomConflict):
		utils.JSONError(c, http.StatusConflict, "error.roomConflict",
			"Room already booked")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound",
			"record not found")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "error.forbidden",
			"you do not own this record")
	case errors.Is(err, services.ErrAlreadyRejected):
		utils.JSONError(c, http.StatusConflict, "error.alreadyRejected",
			"a rejected booking cannot confirm arrival")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidStatus",
			"status must be approved or rejected")
	case errors.Is(err, services.ErrInvalidRating):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRating",
			"ratings must be between 1 and 5")
	case errors.Is(err, services.ErrInvalidWeek):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidWeek",
			"week must look like 2024-W05")
	case errors.Is(err, services.ErrMissingField):
		utils.JSONError(c, http.StatusBadRequest, "error.missingField",
			err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "error.internal",
			"internal error")
	}
}

func respondInvalidPayload(c *gin.Context, err error) {
	msg := "invalid payload"
	if err != nil {
		msg = "invalid payload: " + err.Error()
	}
	utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", msg)
}
