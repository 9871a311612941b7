package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPickupDate = errors.New("selected pickup date is invalid")
)
