package booking

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrValidation   = errors.New("validation error")
)
