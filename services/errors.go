package services

import "errors"

// Sentinel errors returned by the store services. Controllers map these
// to HTTP statuses with errors.Is; anything else is an internal failure.
var (
	ErrInvalidTimeRange     = errors.New("invalid_time_range")
	ErrInvalidArrivalWindow = errors.New("invalid_arrival_window")
	ErrRoomConflict         = errors.New("room_conflict")
	ErrNotFound             = errors.New("not_found")
	ErrForbidden            = errors.New("forbidden")
	ErrAlreadyRejected      = errors.New("already_rejected")
	ErrInvalidStatus        = errors.New("invalid_status")
	ErrInvalidRating        = errors.New("invalid_rating")
	ErrInvalidWeek          = errors.New("invalid_week")
	ErrMissingField         = errors.New("missing_field")
)
